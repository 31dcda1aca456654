// Package dashboard assembles the per-role landing views.
package dashboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const recentLoginLimit = 5

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetTravelerProfile(ctx context.Context, userID uuid.UUID) (*domain.TravelerProfile, error)
	GetAdminProfile(ctx context.Context, userID uuid.UUID) (*domain.AdminProfile, error)
	ListLoginLogs(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LoginLog, error)
	Count(ctx context.Context, role *domain.UserRole) (int, error)
}

type merchantRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	CountUnverified(ctx context.Context) (int, error)
}

type requestRepo interface {
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.VerificationRequest, error)
}

type areaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error)
}

// Service builds dashboards.
type Service struct {
	log       *slog.Logger
	users     userRepo
	merchants merchantRepo
	requests  requestRepo
	areas     areaRepo
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, users userRepo, merchants merchantRepo, requests requestRepo, areas areaRepo) *Service {
	return &Service{
		log:       logger.With("service", "dashboard"),
		users:     users,
		merchants: merchants,
		requests:  requests,
		areas:     areas,
	}
}
