// Package savedplace manages a traveler's bookmarked places.
package savedplace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type savedRepo interface {
	List(ctx context.Context, travelerID uuid.UUID) ([]domain.SavedPlace, error)
	Add(ctx context.Context, travelerID uuid.UUID, placeID uuid.UUID) error
	Remove(ctx context.Context, travelerID uuid.UUID, placeID uuid.UUID) (bool, error)
}

type placeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
}

// Service implements saved place operations.
type Service struct {
	log    *slog.Logger
	saved  savedRepo
	places placeRepo
}

// NewService creates a new saved place service.
func NewService(logger *slog.Logger, saved savedRepo, places placeRepo) *Service {
	return &Service{
		log:    logger.With("service", "savedplace"),
		saved:  saved,
		places: places,
	}
}

// List returns the caller's saved places, most recent first.
func (s *Service) List(ctx context.Context) ([]domain.SavedPlace, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return nil, err
	}

	saved, err := s.saved.List(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("savedplace.List: %w", err)
	}
	return saved, nil
}

// Add bookmarks a place. Saving an already saved place is a no-op.
func (s *Service) Add(ctx context.Context, placeID uuid.UUID) error {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return err
	}
	if placeID == uuid.Nil {
		return domain.NewValidationError("place_id", "required")
	}

	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return fmt.Errorf("savedplace.Add: %w", err)
	}
	if err := s.saved.Add(ctx, caller.UserID, placeID); err != nil {
		return fmt.Errorf("savedplace.Add: %w", err)
	}
	return nil
}

// Remove deletes a bookmark. Returns ErrNotFound if the place was not saved.
func (s *Service) Remove(ctx context.Context, placeID uuid.UUID) error {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return err
	}

	removed, err := s.saved.Remove(ctx, caller.UserID, placeID)
	if err != nil {
		return fmt.Errorf("savedplace.Remove: %w", err)
	}
	if !removed {
		return fmt.Errorf("savedplace.Remove: %w", domain.ErrNotFound)
	}
	return nil
}
