// Package area implements the Area repository using PostgreSQL.
package area

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides area persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new area repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
}

func (r row) toDomain() domain.Area {
	return domain.Area{ID: r.ID, Name: r.Name, Description: r.Description}
}

const columns = `id, name, description`

// GetByID returns an area by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT `+columns+` FROM areas WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "area", id)
	}
	a := dst.toDomain()
	return &a, nil
}

// GetByName returns an area by its exact, case-insensitive name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Area, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT `+columns+` FROM areas WHERE lower(name) = lower($1)`, name)
	if err != nil {
		return nil, postgres.MapError(err, "area", name)
	}
	a := dst.toDomain()
	return &a, nil
}

// GetByIDs returns the areas with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Area, error) {
	if len(ids) == 0 {
		return []domain.Area{}, nil
	}

	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+columns+` FROM areas WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, postgres.MapError(err, "area", fmt.Sprintf("%d ids", len(ids)))
	}
	return toDomainList(rows), nil
}

// List returns all areas ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Area, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+columns+` FROM areas ORDER BY name`)
	if err != nil {
		return nil, postgres.MapError(err, "area", "list")
	}
	return toDomainList(rows), nil
}

// Create inserts an area, or returns the existing one when upsert is set
// and the name is taken.
func (r *Repo) Create(ctx context.Context, a domain.Area, upsert bool) (*domain.Area, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query := `INSERT INTO areas (id, name, description) VALUES ($1, $2, $3) RETURNING ` + columns
	if upsert {
		query = `INSERT INTO areas (id, name, description) VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
			RETURNING ` + columns
	}

	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, a.ID, a.Name, a.Description)
	if err != nil {
		return nil, postgres.MapError(err, "area", a.Name)
	}
	out := dst.toDomain()
	return &out, nil
}

func toDomainList(rows []row) []domain.Area {
	out := make([]domain.Area, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}
