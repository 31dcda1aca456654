// Package localservice implements the public Service repository (hospitals,
// ATMs, police stations, ...) using PostgreSQL.
package localservice

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Repo provides service point persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new service repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var selectColumns = []string{
	"s.id", "s.name", "s.category", "s.area_id", "COALESCE(a.name, '') AS area_name",
	"s.address", "s.phone", "s.open_hours", "s.notes", "s.is_active", "s.created_at",
}

const createSQL = `
INSERT INTO services (id, name, category, area_id, address, phone, open_hours, notes, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateSQL = `
UPDATE services SET
    name = $2, category = $3, area_id = $4, address = $5, phone = $6,
    open_hours = $7, notes = $8, is_active = $9
WHERE id = $1`

type row struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Category  string     `db:"category"`
	AreaID    *uuid.UUID `db:"area_id"`
	AreaName  string     `db:"area_name"`
	Address   string     `db:"address"`
	Phone     string     `db:"phone"`
	OpenHours string     `db:"open_hours"`
	Notes     string     `db:"notes"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Service {
	return domain.Service{
		ID:        r.ID,
		Name:      r.Name,
		Category:  domain.ServiceCategory(r.Category),
		AreaID:    r.AreaID,
		AreaName:  r.AreaName,
		Address:   r.Address,
		Phone:     r.Phone,
		OpenHours: r.OpenHours,
		Notes:     r.Notes,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From("services s").
		LeftJoin("areas a ON a.id = s.area_id")
}

// Query returns services matching f ordered by name.
func (r *Repo) Query(ctx context.Context, f domain.ServiceFilter) ([]domain.Service, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	q := baseSelect().OrderBy("s.name", "s.id").Limit(uint64(limit))
	if f.Category != "" {
		q = q.Where(squirrel.Eq{"s.category": string(f.Category)})
	}
	if f.AreaID != nil {
		q = q.Where(squirrel.Eq{"s.area_id": *f.AreaID})
	}
	if f.AreaNameContains != "" {
		q = q.Where(postgres.ContainsFold("a.name", f.AreaNameContains))
	}
	if f.ActiveOnly {
		q = q.Where(squirrel.Eq{"s.is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "service", "query")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "service", "query")
	}

	out := make([]domain.Service, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns a service by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	sql, args, err := baseSelect().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "service", id)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "service", id)
	}
	s := dst.toDomain()
	return &s, nil
}

// Create inserts a service and returns it with its area resolved.
func (r *Repo) Create(ctx context.Context, s domain.Service) (*domain.Service, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		s.ID, s.Name, string(s.Category), s.AreaID, s.Address, s.Phone, s.OpenHours, s.Notes, s.IsActive)
	if err != nil {
		return nil, postgres.MapError(err, "service", s.Name)
	}
	return r.GetByID(ctx, s.ID)
}

// Update replaces every editable field of s.
func (r *Repo) Update(ctx context.Context, s domain.Service) (*domain.Service, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		s.ID, s.Name, string(s.Category), s.AreaID, s.Address, s.Phone, s.OpenHours, s.Notes, s.IsActive)
	if err != nil {
		return nil, postgres.MapError(err, "service", s.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "service", s.ID)
	}
	return r.GetByID(ctx, s.ID)
}
