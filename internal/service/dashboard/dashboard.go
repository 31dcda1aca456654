package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Traveler returns the caller's traveler dashboard.
func (s *Service) Traveler(ctx context.Context) (*Traveler, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleTraveler)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Traveler get user: %w", err)
	}

	profile, err := s.users.GetTravelerProfile(ctx, caller.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		profile = &domain.TravelerProfile{UserID: caller.UserID}
	case err != nil:
		return nil, fmt.Errorf("dashboard.Traveler get profile: %w", err)
	}

	logins, err := s.users.ListLoginLogs(ctx, caller.UserID, recentLoginLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Traveler list logins: %w", err)
	}

	areaName, err := s.areaName(ctx, profile.AreaID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Traveler: %w", err)
	}

	d := &Traveler{
		User:            *user,
		AreaName:        areaName,
		YearsInArea:     profile.YearsInArea,
		ProfileComplete: profile.IsComplete(),
		RecentLogins:    logins,
		Suggestion:      suggestIncomplete,
	}
	if d.ProfileComplete {
		d.Suggestion = suggestComplete
	}
	return d, nil
}

// Merchant returns the caller's merchant dashboard.
func (s *Service) Merchant(ctx context.Context) (*Merchant, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleMerchant)
	if err != nil {
		return nil, err
	}

	m, err := s.merchants.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Merchant: %w", err)
	}

	req, err := s.requests.GetByMerchantID(ctx, m.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("dashboard.Merchant get request: %w", err)
	}

	areaName, err := s.areaName(ctx, m.BusinessAreaID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Merchant: %w", err)
	}

	status := statusPending
	if m.IsVerified {
		status = statusVerified
	}
	return &Merchant{
		Profile:          *m,
		BusinessAreaName: areaName,
		State:            domain.StateOf(m, req),
		Status:           status,
		Message:          m.ShopName + " - " + status,
	}, nil
}

// Admin returns the admin dashboard with global counts.
func (s *Service) Admin(ctx context.Context) (*Admin, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	d := &Admin{}

	profile, err := s.users.GetAdminProfile(ctx, caller.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("dashboard.Admin get profile: %w", err)
	case profile.AreaID != nil:
		d.Area, err = s.areas.GetByID(ctx, *profile.AreaID)
		if err != nil {
			return nil, fmt.Errorf("dashboard.Admin get area: %w", err)
		}
	}

	traveler, merchant := domain.UserRoleTraveler, domain.UserRoleMerchant

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Stats.TotalUsers, err = s.users.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		d.Stats.Travelers, err = s.users.Count(gctx, &traveler)
		return err
	})
	g.Go(func() (err error) {
		d.Stats.Merchants, err = s.users.Count(gctx, &merchant)
		return err
	})
	g.Go(func() (err error) {
		d.Stats.UnverifiedMerchants, err = s.merchants.CountUnverified(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Admin counts: %w", err)
	}

	d.Message = fmt.Sprintf("Managing %d users", d.Stats.TotalUsers)
	return d, nil
}

func (s *Service) areaName(ctx context.Context, id *uuid.UUID) (string, error) {
	if id == nil {
		return areaNotSet, nil
	}
	area, err := s.areas.GetByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return areaNotSet, nil
	}
	if err != nil {
		return "", fmt.Errorf("get area: %w", err)
	}
	return area.Name, nil
}
