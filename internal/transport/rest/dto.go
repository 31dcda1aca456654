package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/transport/dataloader"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type areaProfileResponse struct {
	AreaID      *uuid.UUID `json:"area_id"`
	AreaName    string     `json:"area_name"`
	YearsInArea int        `json:"years_in_area"`
}

func toAreaProfile(ctx context.Context, areaID *uuid.UUID, years int) (areaProfileResponse, error) {
	name, err := dataloader.AreaName(ctx, areaID)
	if err != nil {
		return areaProfileResponse{}, err
	}
	return areaProfileResponse{AreaID: areaID, AreaName: name, YearsInArea: years}, nil
}

type areaResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func toArea(a domain.Area) areaResponse {
	return areaResponse{ID: a.ID, Name: a.Name, Description: a.Description}
}

type placeResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	CategoryLabel string     `json:"category_label"`
	AreaID        *uuid.UUID `json:"area_id"`
	AreaName      string     `json:"area_name"`
	Address       string     `json:"address"`
	IsPopular     bool       `json:"is_popular"`
	OpeningTime   *string    `json:"opening_time"`
	ClosingTime   *string    `json:"closing_time"`
	ImageURL      string     `json:"image_url,omitempty"`
	AverageRating *float64   `json:"average_rating"`
	ReviewCount   int        `json:"review_count"`
	MerchantID    *uuid.UUID `json:"merchant_id,omitempty"`
}

func toPlace(p domain.Place) placeResponse {
	return placeResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category.String(),
		CategoryLabel: p.Category.DisplayName(),
		AreaID:        p.AreaID,
		AreaName:      p.AreaName,
		Address:       p.Address,
		IsPopular:     p.IsPopular,
		OpeningTime:   p.OpeningTime,
		ClosingTime:   p.ClosingTime,
		ImageURL:      p.ImageURL,
		AverageRating: p.Rating(),
		ReviewCount:   p.ReviewCount,
		MerchantID:    p.OwnerMerchantID,
	}
}

type serviceResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	AreaID    *uuid.UUID `json:"area_id"`
	AreaName  string     `json:"area_name"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	OpenHours string     `json:"open_hours"`
	Notes     string     `json:"notes"`
	IsActive  bool       `json:"is_active"`
}

func toService(s domain.Service) serviceResponse {
	return serviceResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category.String(),
		AreaID:    s.AreaID,
		AreaName:  s.AreaName,
		Address:   s.Address,
		Phone:     s.Phone,
		OpenHours: s.OpenHours,
		Notes:     s.Notes,
		IsActive:  s.IsActive,
	}
}

type merchantResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	ShopName         string     `json:"shop_name"`
	BusinessType     string     `json:"business_type"`
	BusinessAreaID   *uuid.UUID `json:"business_area_id"`
	BusinessAreaName string     `json:"business_area_name"`
	Address          string     `json:"address"`
	Phone            string     `json:"phone"`
	OpeningTime      *string    `json:"opening_time"`
	ClosingTime      *string    `json:"closing_time"`
	YearsInBusiness  int        `json:"years_in_business"`
	Description      string     `json:"description"`
	IsVerified       bool       `json:"is_verified"`
}

func toMerchant(ctx context.Context, m *domain.MerchantProfile) (merchantResponse, error) {
	areaName, err := dataloader.AreaName(ctx, m.BusinessAreaID)
	if err != nil {
		return merchantResponse{}, err
	}
	return merchantWithArea(m, areaName), nil
}

// toMerchants renders a merchant list, resolving every business area in
// a single batch.
func toMerchants(ctx context.Context, ms []domain.MerchantProfile) ([]merchantResponse, error) {
	ids := make([]*uuid.UUID, len(ms))
	for i := range ms {
		ids[i] = ms[i].BusinessAreaID
	}
	names, err := dataloader.AreaNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]merchantResponse, len(ms))
	for i := range ms {
		out[i] = merchantWithArea(&ms[i], names[i])
	}
	return out, nil
}

func merchantWithArea(m *domain.MerchantProfile, areaName string) merchantResponse {
	return merchantResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		ShopName:         m.ShopName,
		BusinessType:     m.BusinessType,
		BusinessAreaID:   m.BusinessAreaID,
		BusinessAreaName: areaName,
		Address:          m.Address,
		Phone:            m.Phone,
		OpeningTime:      m.OpeningTime,
		ClosingTime:      m.ClosingTime,
		YearsInBusiness:  m.YearsInBusiness,
		Description:      m.Description,
		IsVerified:       m.IsVerified,
	}
}

type verificationResponse struct {
	ID         uuid.UUID  `json:"id"`
	MerchantID uuid.UUID  `json:"merchant_id"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewedBy *uuid.UUID `json:"reviewed_by"`
	AdminNote  string     `json:"admin_note"`
}

func toVerification(v *domain.VerificationRequest) *verificationResponse {
	if v == nil {
		return nil
	}
	return &verificationResponse{
		ID:         v.ID,
		MerchantID: v.MerchantID,
		Status:     v.Status.String(),
		CreatedAt:  v.CreatedAt,
		ReviewedAt: v.ReviewedAt,
		ReviewedBy: v.ReviewedBy,
		AdminNote:  v.AdminNote,
	}
}

type reviewResponse struct {
	ID         uuid.UUID `json:"id"`
	TravelerID uuid.UUID `json:"traveler_id"`
	PlaceID    uuid.UUID `json:"place_id"`
	PlaceName  string    `json:"place_name"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func toReview(rv domain.Review) reviewResponse {
	return reviewResponse(rv)
}

type chatThreadResponse struct {
	ID          uuid.UUID `json:"id"`
	OtherUserID uuid.UUID `json:"other_user_id"`
	RequestedBy uuid.UUID `json:"requested_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toChatThread(th domain.ChatThread, viewer uuid.UUID) chatThreadResponse {
	return chatThreadResponse{
		ID:          th.ID,
		OtherUserID: th.Other(viewer),
		RequestedBy: th.RequestedBy,
		Status:      th.Status.String(),
		CreatedAt:   th.CreatedAt,
		UpdatedAt:   th.UpdatedAt,
	}
}

type chatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
