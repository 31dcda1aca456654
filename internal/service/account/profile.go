package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Me returns the caller's account and role profile.
func (s *Service) Me(ctx context.Context) (*Me, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("account.Me: %w", err)
	}

	me := &Me{User: user}
	switch user.Role {
	case domain.UserRoleTraveler:
		me.Traveler, err = s.travelerProfile(ctx, user.ID)
	case domain.UserRoleAdmin:
		me.Admin, err = s.users.GetAdminProfile(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			me.Admin, err = &domain.AdminProfile{UserID: user.ID}, nil
		}
	case domain.UserRoleMerchant:
		me.Merchant, err = s.merchants.GetByUserID(ctx, user.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("account.Me profile: %w", err)
	}
	return me, nil
}

// UpdateTravelerProfile sets the traveler's home area and years lived there.
// Nil fields keep their current value.
func (s *Service) UpdateTravelerProfile(ctx context.Context, input UpdateTravelerInput) (*domain.TravelerProfile, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.AreaID != nil {
		if _, err := s.areas.GetByID(ctx, *input.AreaID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("area_id", "Invalid area_id.")
			}
			return nil, fmt.Errorf("account.UpdateTravelerProfile get area: %w", err)
		}
	}

	profile, err := s.travelerProfile(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateTravelerProfile: %w", err)
	}
	if input.AreaID != nil {
		area := *input.AreaID
		profile.AreaID = &area
	}
	if input.YearsInArea != nil {
		profile.YearsInArea = *input.YearsInArea
	}

	updated, err := s.users.UpsertTravelerProfile(ctx, *profile)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateTravelerProfile: %w", err)
	}

	s.log.InfoContext(ctx, "traveler profile updated",
		slog.String("user_id", caller.UserID.String()),
		slog.Bool("complete", updated.IsComplete()))
	return updated, nil
}

// AssignAdminArea binds an admin account to the named area. It is an
// operator action and does not check the caller.
// Returns ErrAreaHasAdmin if another admin already manages the area.
func (s *Service) AssignAdminArea(ctx context.Context, login, areaName string) (*domain.AdminProfile, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("account.AssignAdminArea get user: %w", err)
	}
	if user.Role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("username", "user is not an admin")
	}

	area, err := s.areas.GetByName(ctx, areaName)
	if err != nil {
		return nil, fmt.Errorf("account.AssignAdminArea get area: %w", err)
	}

	profile, err := s.users.GetAdminProfile(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		profile, err = &domain.AdminProfile{UserID: user.ID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account.AssignAdminArea get profile: %w", err)
	}
	profile.AreaID = &area.ID

	updated, err := s.users.UpsertAdminProfile(ctx, *profile)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("account.AssignAdminArea: %w", domain.ErrAreaHasAdmin)
		}
		return nil, fmt.Errorf("account.AssignAdminArea: %w", err)
	}

	s.log.InfoContext(ctx, "admin area assigned",
		slog.String("user_id", user.ID.String()),
		slog.String("area", area.Name))
	return updated, nil
}

// travelerProfile returns the stored profile or an empty one.
func (s *Service) travelerProfile(ctx context.Context, userID uuid.UUID) (*domain.TravelerProfile, error) {
	p, err := s.users.GetTravelerProfile(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.TravelerProfile{UserID: userID}, nil
	}
	return p, err
}
