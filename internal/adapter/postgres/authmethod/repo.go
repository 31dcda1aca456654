// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new auth method repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, user_id, provider, provider_id, created_at`

const getByProviderSQL = `
SELECT ` + columns + `
FROM auth_methods
WHERE provider = $1 AND provider_id = $2`

const createSQL = `
INSERT INTO auth_methods (id, user_id, provider, provider_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + columns

type row struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Provider   string    `db:"provider"`
	ProviderID string    `db:"provider_id"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.AuthMethod {
	return &domain.AuthMethod{
		ID:         r.ID,
		UserID:     r.UserID,
		Provider:   domain.LoginMethod(r.Provider),
		ProviderID: r.ProviderID,
		CreatedAt:  r.CreatedAt,
	}
}

// GetByProvider returns the link for a provider account.
func (r *Repo) GetByProvider(ctx context.Context, provider domain.LoginMethod, providerID string) (*domain.AuthMethod, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getByProviderSQL, string(provider), providerID)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", providerID)
	}
	return dst.toDomain(), nil
}

// Create links a user to a provider account. A provider account that is
// already linked, or a user that already has this provider, yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m domain.AuthMethod) (*domain.AuthMethod, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, createSQL,
		m.ID, m.UserID, string(m.Provider), m.ProviderID, m.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", m.ProviderID)
	}
	return dst.toDomain(), nil
}
