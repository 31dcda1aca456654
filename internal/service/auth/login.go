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

// Login authenticates a user by username or email and password, records
// the login and issues a token pair.
// Returns ErrUnauthorized if the account is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Login = strings.TrimSpace(input.Login)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by username or email
	user, err := s.users.GetByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	if err := auth.CheckPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Record the login
	ip, userAgent := ctxutil.ClientInfoFromCtx(ctx)
	if err := s.users.CreateLoginLog(ctx, domain.LoginLog{
		ID:        uuid.New(),
		UserID:    user.ID,
		Method:    domain.LoginMethodPassword,
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("auth.Login log: %w", err)
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
