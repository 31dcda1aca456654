package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/account"
	"github.com/heartmarshall/tringgo-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	LoginWithGoogle(ctx context.Context, input auth.GoogleLoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

type accountService interface {
	Me(ctx context.Context) (*account.Me, error)
	UpdateTravelerProfile(ctx context.Context, input account.UpdateTravelerInput) (*domain.TravelerProfile, error)
}

// AuthHandler serves signup, login and the caller's own account.
type AuthHandler struct {
	auth     authService
	accounts accountService
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc authService, accounts accountService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, accounts: accounts, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Role            string `json:"role"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	AreaID          string `json:"area_id"`
	YearsInArea     int    `json:"years_in_area"`
	ShopName        string `json:"shop_name"`
	BusinessType    string `json:"business_type"`
	BusinessAreaID  string `json:"business_area_id"`
	YearsInBusiness int    `json:"years_in_business"`
	Description     string `json:"description"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         toUser(result.User),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	areaID, err := optionalUUID("area_id", req.AreaID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	businessAreaID, err := optionalUUID("business_area_id", req.BusinessAreaID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Register(r.Context(), auth.RegisterInput{
		Role:            domain.UserRole(req.Role),
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		AreaID:          areaID,
		YearsInArea:     req.YearsInArea,
		ShopName:        req.ShopName,
		BusinessType:    req.BusinessType,
		BusinessAreaID:  businessAreaID,
		YearsInBusiness: req.YearsInBusiness,
		Description:     req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Login(r.Context(), auth.LoginInput{
		Login:    req.UsernameOrEmail,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// GoogleLogin handles POST /auth/google-login.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.auth.LoginWithGoogle(r.Context(), auth.GoogleLoginInput{IDToken: req.IDToken})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.auth.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /auth/logout. The Auth middleware has already
// resolved the caller.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type meResponse struct {
	User     userResponse         `json:"user"`
	Traveler *areaProfileResponse `json:"traveler_profile,omitempty"`
	Admin    *areaProfileResponse `json:"admin_profile,omitempty"`
	Merchant *merchantResponse    `json:"merchant_profile,omitempty"`
}

// Me handles GET /me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	me, err := h.accounts.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := meResponse{User: toUser(me.User)}
	switch {
	case me.Traveler != nil:
		p, err := toAreaProfile(r.Context(), me.Traveler.AreaID, me.Traveler.YearsInArea)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		resp.Traveler = &p
	case me.Admin != nil:
		p, err := toAreaProfile(r.Context(), me.Admin.AreaID, me.Admin.YearsInArea)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		resp.Admin = &p
	case me.Merchant != nil:
		m, err := toMerchant(r.Context(), me.Merchant)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		resp.Merchant = &m
	}

	writeJSON(w, http.StatusOK, resp)
}

type travelerProfileRequest struct {
	AreaID      *uuid.UUID `json:"area_id"`
	YearsInArea *int       `json:"years_in_area"`
}

// UpdateTravelerProfile handles PATCH /me/traveler-profile.
func (h *AuthHandler) UpdateTravelerProfile(w http.ResponseWriter, r *http.Request) {
	var req travelerProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.accounts.UpdateTravelerProfile(r.Context(), account.UpdateTravelerInput{
		AreaID:      req.AreaID,
		YearsInArea: req.YearsInArea,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp, err := toAreaProfile(r.Context(), p.AreaID, p.YearsInArea)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
