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
	"github.com/heartmarshall/tringgo-backend/pkg/ctxutil"
)

// ErrGoogleDisabled is returned when no Google client id is configured.
var ErrGoogleDisabled = fmt.Errorf("%w: google sign-in is not configured", domain.ErrForbidden)

// LoginWithGoogle signs a user in with a Google ID token.
// A known Google account logs into its linked user. Otherwise an account with
// the same email gets the Google account linked, and failing that a new
// TRAVELER is created.
func (s *Service) LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (*AuthResult, error) {
	input.IDToken = strings.TrimSpace(input.IDToken)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.google == nil {
		return nil, ErrGoogleDisabled
	}

	identity, err := s.google.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidIdentityToken) {
			return nil, domain.NewValidationError("id_token", "invalid token")
		}
		return nil, fmt.Errorf("auth.LoginWithGoogle verify: %w", err)
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))

	user, event, err := s.resolveGoogleUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	ip, userAgent := ctxutil.ClientInfoFromCtx(ctx)
	if err := s.users.CreateLoginLog(ctx, domain.LoginLog{
		ID:        uuid.New(),
		UserID:    user.ID,
		Method:    domain.LoginMethodGoogle,
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle log: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, event,
		slog.String("user_id", user.ID.String()),
		slog.String("provider", "google"))

	return result, nil
}

// resolveGoogleUser finds or creates the user behind identity and returns a
// log message describing which path was taken.
func (s *Service) resolveGoogleUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, string, error) {
	am, err := s.authMethods.GetByProvider(ctx, domain.LoginMethodGoogle, identity.ProviderID)
	switch {
	case err == nil:
		user, err := s.users.GetByID(ctx, am.UserID)
		if err != nil {
			return nil, "", fmt.Errorf("auth.LoginWithGoogle get user: %w", err)
		}
		return user, "user logged in via google", nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, "", fmt.Errorf("auth.LoginWithGoogle get auth method: %w", err)
	}

	existing, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("auth.LoginWithGoogle get user by email: %w", err)
	}
	if existing != nil {
		if err := s.linkGoogle(ctx, existing, identity); err != nil {
			return nil, "", err
		}
		return existing, "google linked to existing account", nil
	}

	user, err := s.registerGoogleUser(ctx, identity)
	if err != nil {
		return nil, "", err
	}
	return user, "user registered via google", nil
}

// linkGoogle attaches the Google account to user. A concurrent link of the
// same account is fine; a user already linked to another Google account is
// a conflict.
func (s *Service) linkGoogle(ctx context.Context, user *domain.User, identity *auth.OAuthIdentity) error {
	_, err := s.authMethods.Create(ctx, domain.AuthMethod{
		UserID:     user.ID,
		Provider:   domain.LoginMethodGoogle,
		ProviderID: identity.ProviderID,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("auth.LoginWithGoogle link: %w", err)
	}

	am, lookupErr := s.authMethods.GetByProvider(ctx, domain.LoginMethodGoogle, identity.ProviderID)
	if lookupErr != nil || am.UserID != user.ID {
		return fmt.Errorf("%w: account is linked to another google account", domain.ErrConflict)
	}
	return nil
}

// registerGoogleUser creates a TRAVELER, its empty profile and the Google
// link in one transaction.
func (s *Service) registerGoogleUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	var created *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, domain.User{
			ID:        uuid.New(),
			Username:  googleUsername(identity),
			Email:     identity.Email,
			Role:      domain.UserRoleTraveler,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.users.UpsertTravelerProfile(txCtx, domain.TravelerProfile{UserID: user.ID}); err != nil {
			return fmt.Errorf("create traveler profile: %w", err)
		}

		if _, err := s.authMethods.Create(txCtx, domain.AuthMethod{
			UserID:     user.ID,
			Provider:   domain.LoginMethodGoogle,
			ProviderID: identity.ProviderID,
		}); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		created = user
		return nil
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("auth.LoginWithGoogle register: %w", err)
	}

	// A concurrent sign-in with the same Google account may have won.
	am, lookupErr := s.authMethods.GetByProvider(ctx, domain.LoginMethodGoogle, identity.ProviderID)
	if lookupErr != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle register: %w", err)
	}
	user, lookupErr := s.users.GetByID(ctx, am.UserID)
	if lookupErr != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle register: %w", lookupErr)
	}
	return user, nil
}

// googleUsername derives a username from the email's local part and the
// tail of the Google subject id.
func googleUsername(identity *auth.OAuthIdentity) string {
	local := identity.Email
	if at := strings.IndexByte(local, '@'); at > 0 {
		local = local[:at]
	}
	sub := identity.ProviderID
	if len(sub) > 6 {
		sub = sub[len(sub)-6:]
	}
	return local + "-" + sub
}
