package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/auth"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Register creates an account of the requested role together with its
// profile. A merchant signup also lists the shop in the directory.
// Returns ErrAlreadyExists if the username or email is taken and
// ErrAreaHasAdmin if an admin already manages the requested area.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.Role = domain.UserRole(strings.ToUpper(strings.TrimSpace(string(input.Role))))

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve area references
	if err := s.checkArea(ctx, "area_id", input.AreaID); err != nil {
		return nil, err
	}
	if err := s.checkArea(ctx, "business_area_id", input.BusinessAreaID); err != nil {
		return nil, err
	}

	// Step 3: Hash password
	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create user and role profile in a transaction.
	// Username and email uniqueness are enforced by DB constraints.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         input.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if err := s.createProfile(txCtx, user, input, now); err != nil {
			return err
		}

		createdUser = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()),
		slog.String("role", createdUser.Role.String()))

	return result, nil
}

func (s *Service) createProfile(ctx context.Context, user *domain.User, input RegisterInput, now time.Time) error {
	switch user.Role {
	case domain.UserRoleTraveler:
		if _, err := s.users.UpsertTravelerProfile(ctx, domain.TravelerProfile{
			UserID:      user.ID,
			AreaID:      input.AreaID,
			YearsInArea: input.YearsInArea,
		}); err != nil {
			return fmt.Errorf("create traveler profile: %w", err)
		}

	case domain.UserRoleMerchant:
		shopName := strings.TrimSpace(input.ShopName)
		if shopName == "" {
			shopName = user.Username
		}
		merchant, err := s.merchants.Create(ctx, domain.MerchantProfile{
			ID:              uuid.New(),
			UserID:          user.ID,
			ShopName:        shopName,
			BusinessType:    strings.TrimSpace(input.BusinessType),
			BusinessAreaID:  input.BusinessAreaID,
			YearsInBusiness: input.YearsInBusiness,
			Description:     input.Description,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create merchant profile: %w", err)
		}
		if _, err := s.places.UpsertForMerchant(ctx, merchant.ID, merchant.Projection()); err != nil {
			return fmt.Errorf("create merchant place: %w", err)
		}

	case domain.UserRoleAdmin:
		_, err := s.users.UpsertAdminProfile(ctx, domain.AdminProfile{
			UserID:      user.ID,
			AreaID:      input.AreaID,
			YearsInArea: input.YearsInArea,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrAreaHasAdmin
		}
		if err != nil {
			return fmt.Errorf("create admin profile: %w", err)
		}
	}
	return nil
}

// checkArea reports a field error when id is set but names no area.
func (s *Service) checkArea(ctx context.Context, field string, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.areas.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError(field, "Invalid "+field+".")
		}
		return fmt.Errorf("auth.Register get area: %w", err)
	}
	return nil
}
