// Package merchant manages merchant business profiles and keeps each
// merchant's directory Place in step with its profile.
package merchant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type merchantRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	Update(ctx context.Context, m domain.MerchantProfile) (*domain.MerchantProfile, error)
	List(ctx context.Context, f domain.MerchantFilter) ([]domain.MerchantProfile, error)
}

type placeRepo interface {
	UpsertForMerchant(ctx context.Context, merchantID uuid.UUID, proj domain.PlaceProjection) (uuid.UUID, error)
}

type areaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements merchant profile operations.
type Service struct {
	log       *slog.Logger
	merchants merchantRepo
	places    placeRepo
	areas     areaRepo
	tx        txManager
}

// NewService creates a new merchant service.
func NewService(logger *slog.Logger, merchants merchantRepo, places placeRepo, areas areaRepo, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "merchant"),
		merchants: merchants,
		places:    places,
		areas:     areas,
		tx:        tx,
	}
}
