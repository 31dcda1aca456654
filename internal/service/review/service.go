// Package review manages traveler reviews and keeps place ratings in sync.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Update(ctx context.Context, rv domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTraveler(ctx context.Context, travelerID uuid.UUID) ([]domain.Review, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error)
	RatingsForPlace(ctx context.Context, placeID uuid.UUID) ([]int, error)
}

type placeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
	SetRating(ctx context.Context, id uuid.UUID, s domain.RatingSummary) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements review operations.
type Service struct {
	log     *slog.Logger
	reviews reviewRepo
	places  placeRepo
	tx      txManager
}

// NewService creates a new review service.
func NewService(logger *slog.Logger, reviews reviewRepo, places placeRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "review"),
		reviews: reviews,
		places:  places,
		tx:      tx,
	}
}
