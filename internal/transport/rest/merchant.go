package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/merchant"
	"github.com/heartmarshall/tringgo-backend/internal/service/verification"
)

type merchantService interface {
	GetProfile(ctx context.Context) (*domain.MerchantProfile, error)
	UpdateProfile(ctx context.Context, input merchant.UpdateProfileInput) (*domain.MerchantProfile, error)
}

type verificationService interface {
	Submit(ctx context.Context) (*domain.VerificationRequest, error)
	MyStatus(ctx context.Context) (*verification.Status, error)
	ListForAdmin(ctx context.Context, status *domain.VerificationStatus) ([]domain.VerificationListing, error)
	Decide(ctx context.Context, requestID uuid.UUID, input verification.DecideInput) (*domain.VerificationRequest, error)
}

// MerchantHandler serves the merchant's own profile and verification,
// and the admin review queue.
type MerchantHandler struct {
	merchants     merchantService
	verifications verificationService
	log           *slog.Logger
}

// NewMerchantHandler creates a MerchantHandler.
func NewMerchantHandler(merchants merchantService, verifications verificationService, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		merchants:     merchants,
		verifications: verifications,
		log:           logger.With("handler", "merchant"),
	}
}

// GetProfile handles GET /merchant/profile.
func (h *MerchantHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	m, err := h.merchants.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeMerchant(w, r, m)
}

type updateMerchantRequest struct {
	ShopName        *string    `json:"shop_name"`
	BusinessType    *string    `json:"business_type"`
	BusinessAreaID  *uuid.UUID `json:"business_area_id"`
	Address         *string    `json:"address"`
	Phone           *string    `json:"phone"`
	OpeningTime     *string    `json:"opening_time"`
	ClosingTime     *string    `json:"closing_time"`
	YearsInBusiness *int       `json:"years_in_business"`
	Description     *string    `json:"description"`
}

// UpdateProfile handles PATCH /merchant/profile.
func (h *MerchantHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateMerchantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	m, err := h.merchants.UpdateProfile(r.Context(), merchant.UpdateProfileInput(req))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeMerchant(w, r, m)
}

func (h *MerchantHandler) writeMerchant(w http.ResponseWriter, r *http.Request, m *domain.MerchantProfile) {
	resp, err := toMerchant(r.Context(), m)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitVerification handles POST /merchant/verification.
func (h *MerchantHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	req, err := h.verifications.Submit(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVerification(req))
}

type verificationStatusResponse struct {
	State      string                `json:"state"`
	IsVerified bool                  `json:"is_verified"`
	Request    *verificationResponse `json:"request"`
}

// VerificationStatus handles GET /merchant/verification.
func (h *MerchantHandler) VerificationStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.verifications.MyStatus(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, verificationStatusResponse{
		State:      st.State.String(),
		IsVerified: st.Merchant.IsVerified,
		Request:    toVerification(st.Request),
	})
}

type verificationListingResponse struct {
	verificationResponse
	Merchant merchantResponse `json:"merchant"`
}

// ListVerificationRequests handles GET /admin/verification-requests?status=.
func (h *MerchantHandler) ListVerificationRequests(w http.ResponseWriter, r *http.Request) {
	var status *domain.VerificationStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.VerificationStatus(v)
		if !s.IsValid() {
			respondError(w, r, h.log, domain.NewValidationError("status", "must be PENDING, APPROVED or REJECTED"))
			return
		}
		status = &s
	}

	listings, err := h.verifications.ListForAdmin(r.Context(), status)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	merchants := make([]domain.MerchantProfile, len(listings))
	for i := range listings {
		merchants[i] = listings[i].Merchant
	}
	rendered, err := toMerchants(r.Context(), merchants)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]verificationListingResponse, len(listings))
	for i := range listings {
		out[i] = verificationListingResponse{
			verificationResponse: *toVerification(&listings[i].Request),
			Merchant:             rendered[i],
		}
	}
	writeJSON(w, http.StatusOK, out)
}

type decisionRequest struct {
	Action    string `json:"action"`
	AdminNote string `json:"admin_note"`
}

// Decide handles POST /admin/verification-requests/{id}/decision.
func (h *MerchantHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req decisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	updated, err := h.verifications.Decide(r.Context(), id, verification.DecideInput{
		Action: domain.DecisionAction(req.Action),
		Note:   req.AdminNote,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVerification(updated))
}
