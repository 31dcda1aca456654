// Package place implements the Place repository using PostgreSQL.
package place

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

// Repo provides place persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new place repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var selectColumns = []string{
	"p.id", "p.name", "p.description", "p.area_id", "COALESCE(a.name, '') AS area_name",
	"p.category", "p.address", "p.is_popular", "p.opening_time", "p.closing_time",
	"p.image_url", "p.average_rating", "p.review_count", "p.owner_merchant_id", "p.created_at",
}

const upsertForMerchantSQL = `
INSERT INTO places (id, name, area_id, category, opening_time, closing_time, owner_merchant_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (owner_merchant_id) DO UPDATE SET
    name = EXCLUDED.name,
    area_id = EXCLUDED.area_id,
    category = EXCLUDED.category,
    opening_time = EXCLUDED.opening_time,
    closing_time = EXCLUDED.closing_time
RETURNING id`

const createSQL = `
INSERT INTO places (id, name, description, area_id, category, address, is_popular, opening_time, closing_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

type row struct {
	ID              uuid.UUID  `db:"id"`
	Name            string     `db:"name"`
	Description     string     `db:"description"`
	AreaID          *uuid.UUID `db:"area_id"`
	AreaName        string     `db:"area_name"`
	Category        string     `db:"category"`
	Address         string     `db:"address"`
	IsPopular       bool       `db:"is_popular"`
	OpeningTime     *string    `db:"opening_time"`
	ClosingTime     *string    `db:"closing_time"`
	ImageURL        string     `db:"image_url"`
	AverageRating   float64    `db:"average_rating"`
	ReviewCount     int        `db:"review_count"`
	OwnerMerchantID *uuid.UUID `db:"owner_merchant_id"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Place {
	return domain.Place{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		AreaID:          r.AreaID,
		AreaName:        r.AreaName,
		Category:        domain.PlaceCategory(r.Category),
		Address:         r.Address,
		IsPopular:       r.IsPopular,
		OpeningTime:     r.OpeningTime,
		ClosingTime:     r.ClosingTime,
		ImageURL:        r.ImageURL,
		AverageRating:   r.AverageRating,
		ReviewCount:     r.ReviewCount,
		OwnerMerchantID: r.OwnerMerchantID,
		CreatedAt:       r.CreatedAt,
	}
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From("places p").
		LeftJoin("areas a ON a.id = p.area_id")
}

// Query returns places matching f. Rating order puts the best rated first;
// ties and name order are broken by name then id.
func (r *Repo) Query(ctx context.Context, f domain.PlaceFilter) ([]domain.Place, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	q := baseSelect().Limit(uint64(limit))
	if f.AreaID != nil {
		q = q.Where(squirrel.Eq{"p.area_id": *f.AreaID})
	}
	if f.AreaNameContains != "" {
		q = q.Where(postgres.ContainsFold("a.name", f.AreaNameContains))
	}
	if f.Category != "" {
		q = q.Where(squirrel.Eq{"p.category": string(f.Category)})
	}
	switch f.OrderBy {
	case domain.PlaceOrderRating:
		q = q.OrderBy("p.average_rating DESC NULLS LAST", "p.name", "p.id")
	default:
		q = q.OrderBy("p.name", "p.id")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "place", "query")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "place", "query")
	}
	return toDomainList(rows), nil
}

// GetByID returns a place by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id}, id)
}

// LockForUpdate takes a row lock on a place until the surrounding
// transaction ends. Rating writers serialize on it.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT id FROM places WHERE id = $1 FOR UPDATE`, id).
		Scan(&locked)
	if err != nil {
		return postgres.MapError(err, "place", id)
	}
	return nil
}

// GetByOwner returns the place projected from a merchant profile.
func (r *Repo) GetByOwner(ctx context.Context, merchantID uuid.UUID) (*domain.Place, error) {
	return r.getOne(ctx, squirrel.Eq{"p.owner_merchant_id": merchantID}, merchantID)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key uuid.UUID) (*domain.Place, error) {
	sql, args, err := baseSelect().Where(where).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "place", key)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "place", key)
	}
	p := dst.toDomain()
	return &p, nil
}

// UpsertForMerchant creates or refreshes the place owned by merchantID from
// the merchant's projection and returns the place id.
func (r *Repo) UpsertForMerchant(ctx context.Context, merchantID uuid.UUID, proj domain.PlaceProjection) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertForMerchantSQL,
		uuid.New(), proj.Name, proj.AreaID, string(proj.Category), proj.OpeningTime, proj.ClosingTime, merchantID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "place", merchantID)
	}
	return id, nil
}

// Create inserts an unowned directory place.
func (r *Repo) Create(ctx context.Context, p domain.Place) (uuid.UUID, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Category == "" {
		p.Category = domain.PlaceCategoryOther
	}

	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		p.ID, p.Name, p.Description, p.AreaID, string(p.Category), p.Address, p.IsPopular, p.OpeningTime, p.ClosingTime,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "place", p.Name)
	}
	return id, nil
}

// SetRating stores the recomputed rating aggregate of a place.
func (r *Repo) SetRating(ctx context.Context, id uuid.UUID, s domain.RatingSummary) error {
	return r.exec(ctx, id, `UPDATE places SET average_rating = $2, review_count = $3 WHERE id = $1`,
		id, s.Average, s.Count)
}

// SetImageURL stores the public URL of the place image.
func (r *Repo) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.exec(ctx, id, `UPDATE places SET image_url = $2 WHERE id = $1`, id, url)
}

func (r *Repo) exec(ctx context.Context, id uuid.UUID, sql string, args ...any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "place", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "place", id)
	}
	return nil
}

func toDomainList(rows []row) []domain.Place {
	out := make([]domain.Place, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}
