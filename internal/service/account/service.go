// Package account serves the signed-in user's own account: the profile view,
// traveler profile edits and admin area assignment.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	GetTravelerProfile(ctx context.Context, userID uuid.UUID) (*domain.TravelerProfile, error)
	UpsertTravelerProfile(ctx context.Context, p domain.TravelerProfile) (*domain.TravelerProfile, error)
	GetAdminProfile(ctx context.Context, userID uuid.UUID) (*domain.AdminProfile, error)
	UpsertAdminProfile(ctx context.Context, p domain.AdminProfile) (*domain.AdminProfile, error)
}

type merchantRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
}

type areaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error)
	GetByName(ctx context.Context, name string) (*domain.Area, error)
}

// Service implements account operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	merchants merchantRepo
	areas     areaRepo
}

// NewService creates a new account service.
func NewService(logger *slog.Logger, users userRepo, merchants merchantRepo, areas areaRepo) *Service {
	return &Service{
		log:       logger.With("service", "account"),
		users:     users,
		merchants: merchants,
		areas:     areas,
	}
}
