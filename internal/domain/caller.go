package domain

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/pkg/ctxutil"
)

// Caller is the authenticated identity attached to a request context.
type Caller struct {
	UserID uuid.UUID
	Role   UserRole
}

// CallerFromCtx returns the caller, or ErrUnauthorized for anonymous requests.
func CallerFromCtx(ctx context.Context) (Caller, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Caller{}, ErrUnauthorized
	}
	return Caller{UserID: id, Role: UserRole(ctxutil.RoleFromCtx(ctx))}, nil
}

// RequireRole returns the caller if it has one of roles. Anonymous callers
// get ErrUnauthorized, callers with another role get ErrForbiddenRole.
func RequireRole(ctx context.Context, roles ...UserRole) (Caller, error) {
	c, err := CallerFromCtx(ctx)
	if err != nil {
		return Caller{}, err
	}
	if !slices.Contains(roles, c.Role) {
		return Caller{}, ErrForbiddenRole
	}
	return c, nil
}
