package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Create adds a review by the calling traveler and refreshes the place rating.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Review, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Text = strings.TrimSpace(input.Text)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Review
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.places.LockForUpdate(txCtx, input.PlaceID); err != nil {
			return fmt.Errorf("lock place: %w", err)
		}

		created, err = s.reviews.Create(txCtx, domain.Review{
			ID:         uuid.New(),
			TravelerID: caller.UserID,
			PlaceID:    input.PlaceID,
			Rating:     input.Rating,
			Title:      input.Title,
			Text:       input.Text,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		return s.recompute(txCtx, input.PlaceID)
	})
	if err != nil {
		return nil, fmt.Errorf("review.Create: %w", err)
	}

	s.log.InfoContext(ctx, "review created",
		slog.String("review_id", created.ID.String()),
		slog.String("place_id", input.PlaceID.String()))
	return created, nil
}

// Update edits one of the caller's reviews.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Review, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Review
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.owned(txCtx, caller, id)
		if err != nil {
			return err
		}
		if err := s.places.LockForUpdate(txCtx, current.PlaceID); err != nil {
			return fmt.Errorf("lock place: %w", err)
		}

		updated, err = s.reviews.Update(txCtx, input.apply(*current))
		if err != nil {
			return fmt.Errorf("update review: %w", err)
		}
		return s.recompute(txCtx, current.PlaceID)
	})
	if err != nil {
		return nil, fmt.Errorf("review.Update: %w", err)
	}
	return updated, nil
}

// Delete removes one of the caller's reviews.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.owned(txCtx, caller, id)
		if err != nil {
			return err
		}
		if err := s.places.LockForUpdate(txCtx, current.PlaceID); err != nil {
			return fmt.Errorf("lock place: %w", err)
		}
		if err := s.reviews.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete review: %w", err)
		}
		return s.recompute(txCtx, current.PlaceID)
	})
	if err != nil {
		return fmt.Errorf("review.Delete: %w", err)
	}
	return nil
}

// ListMine returns the caller's reviews, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.Review, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByTraveler(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("review.ListMine: %w", err)
	}
	return reviews, nil
}

// ListForPlace returns the public reviews of a place.
func (s *Service) ListForPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error) {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return nil, fmt.Errorf("review.ListForPlace: %w", err)
	}

	reviews, err := s.reviews.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("review.ListForPlace: %w", err)
	}
	return reviews, nil
}

// owned loads a review and checks the caller wrote it. Someone else's
// review is reported as not found.
func (s *Service) owned(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if rv.TravelerID != caller.UserID {
		return nil, domain.ErrNotFound
	}
	return rv, nil
}

// recompute stores the average and count of all ratings for a place. The
// caller must hold the place row lock so concurrent writers see each
// other's reviews.
func (s *Service) recompute(ctx context.Context, placeID uuid.UUID) error {
	ratings, err := s.reviews.RatingsForPlace(ctx, placeID)
	if err != nil {
		return fmt.Errorf("ratings for place: %w", err)
	}
	if err := s.places.SetRating(ctx, placeID, domain.SummarizeRatings(ratings)); err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}
