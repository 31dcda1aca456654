package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tringgo-backend/internal/service/dashboard"
)

type dashboardService interface {
	Traveler(ctx context.Context) (*dashboard.Traveler, error)
	Merchant(ctx context.Context) (*dashboard.Merchant, error)
	Admin(ctx context.Context) (*dashboard.Admin, error)
}

// DashboardHandler serves the per-role landing views.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type loginEntry struct {
	Method    string    `json:"method"`
	LoginTime time.Time `json:"login_time"`
}

type travelerDashboardResponse struct {
	User    userResponse `json:"user"`
	Profile struct {
		Area            string `json:"area"`
		YearsInArea     int    `json:"years_in_area"`
		ProfileComplete bool   `json:"profile_complete"`
	} `json:"profile"`
	Suggestion   string       `json:"suggestion"`
	LoginHistory []loginEntry `json:"login_history"`
}

// Traveler handles GET /dashboard/traveler.
func (h *DashboardHandler) Traveler(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Traveler(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := travelerDashboardResponse{
		User:         toUser(&d.User),
		Suggestion:   d.Suggestion,
		LoginHistory: make([]loginEntry, len(d.RecentLogins)),
	}
	resp.Profile.Area = d.AreaName
	resp.Profile.YearsInArea = d.YearsInArea
	resp.Profile.ProfileComplete = d.ProfileComplete
	for i, l := range d.RecentLogins {
		resp.LoginHistory[i] = loginEntry{Method: l.Method.String(), LoginTime: l.CreatedAt}
	}
	writeJSON(w, http.StatusOK, resp)
}

type merchantDashboardResponse struct {
	Profile struct {
		ShopName        string `json:"shop_name"`
		BusinessArea    string `json:"business_area"`
		IsVerified      bool   `json:"is_verified"`
		YearsInBusiness int    `json:"years_in_business"`
		Status          string `json:"status"`
		State           string `json:"verification_state"`
	} `json:"profile"`
	Message string `json:"message"`
}

// Merchant handles GET /dashboard/merchant.
func (h *DashboardHandler) Merchant(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Merchant(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var resp merchantDashboardResponse
	resp.Profile.ShopName = d.Profile.ShopName
	resp.Profile.BusinessArea = d.BusinessAreaName
	resp.Profile.IsVerified = d.Profile.IsVerified
	resp.Profile.YearsInBusiness = d.Profile.YearsInBusiness
	resp.Profile.Status = d.Status
	resp.Profile.State = d.State.String()
	resp.Message = d.Message
	writeJSON(w, http.StatusOK, resp)
}

type adminDashboardResponse struct {
	Area  *areaResponse `json:"area"`
	Stats struct {
		TotalUsers          int `json:"total_users"`
		Travelers           int `json:"travelers"`
		Merchants           int `json:"merchants"`
		UnverifiedMerchants int `json:"unverified_merchants"`
	} `json:"stats"`
	Message string `json:"message"`
}

// Admin handles GET /dashboard/admin.
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Admin(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var resp adminDashboardResponse
	if d.Area != nil {
		a := toArea(*d.Area)
		resp.Area = &a
	}
	resp.Stats.TotalUsers = d.Stats.TotalUsers
	resp.Stats.Travelers = d.Stats.Travelers
	resp.Stats.Merchants = d.Stats.Merchants
	resp.Stats.UnverifiedMerchants = d.Stats.UnverifiedMerchants
	resp.Message = d.Message
	writeJSON(w, http.StatusOK, resp)
}
