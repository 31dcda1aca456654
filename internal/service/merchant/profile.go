package merchant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// GetProfile returns the caller's merchant profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.MerchantProfile, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleMerchant)
	if err != nil {
		return nil, err
	}

	m, err := s.merchants.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("merchant.GetProfile: %w", err)
	}
	return m, nil
}

// UpdateProfile applies a partial update to the caller's profile and
// re-projects it onto the merchant's directory Place in the same
// transaction. Once verified, changing an identity field fails with
// ErrIdentityLocked and nothing is written.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.MerchantProfile, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleMerchant)
	if err != nil {
		return nil, err
	}

	// Step 1: Validate input
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the business area
	if input.BusinessAreaID != nil {
		if _, err := s.areas.GetByID(ctx, *input.BusinessAreaID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("business_area_id", "Invalid business_area_id.")
			}
			return nil, fmt.Errorf("merchant.UpdateProfile get area: %w", err)
		}
	}

	update := input.toUpdate()

	// Step 3: Lock, check, write profile and place together
	var saved *domain.MerchantProfile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.merchants.LockByUserID(txCtx, caller.UserID)
		if err != nil {
			return fmt.Errorf("lock merchant: %w", err)
		}

		if current.IsVerified {
			if changed := current.ChangedIdentityFields(update); len(changed) > 0 {
				return fmt.Errorf("%w: %s", domain.ErrIdentityLocked, strings.Join(changed, ", "))
			}
		}

		saved, err = s.merchants.Update(txCtx, current.Apply(update))
		if err != nil {
			return fmt.Errorf("update merchant: %w", err)
		}

		if _, err := s.places.UpsertForMerchant(txCtx, saved.ID, saved.Projection()); err != nil {
			return fmt.Errorf("sync place: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("merchant.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "merchant profile updated",
		slog.String("merchant_id", saved.ID.String()))
	return saved, nil
}

// Explore lists merchants, optionally limited to one business area.
// It is public and includes unverified merchants unless VerifiedOnly is set.
func (s *Service) Explore(ctx context.Context, input ExploreInput) ([]domain.MerchantProfile, error) {
	list, err := s.merchants.List(ctx, domain.MerchantFilter{
		AreaID:       input.AreaID,
		VerifiedOnly: input.VerifiedOnly,
		Limit:        input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("merchant.Explore: %w", err)
	}
	return list, nil
}
