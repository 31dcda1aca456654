// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const selectSQL = `
SELECT r.id, r.traveler_id, r.place_id, p.name AS place_name, r.rating, r.title, r.text, r.created_at
FROM reviews r
JOIN places p ON p.id = r.place_id`

const createSQL = `
INSERT INTO reviews (id, traveler_id, place_id, rating, title, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const updateSQL = `UPDATE reviews SET rating = $2, title = $3, text = $4 WHERE id = $1`

type row struct {
	ID         uuid.UUID `db:"id"`
	TravelerID uuid.UUID `db:"traveler_id"`
	PlaceID    uuid.UUID `db:"place_id"`
	PlaceName  string    `db:"place_name"`
	Rating     int       `db:"rating"`
	Title      string    `db:"title"`
	Text       string    `db:"text"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Review {
	return domain.Review(r)
}

// Create inserts a review.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		rv.ID, rv.TravelerID, rv.PlaceID, rv.Rating, rv.Title, rv.Text, rv.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.PlaceID)
	}
	return r.GetByID(ctx, rv.ID)
}

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, selectSQL+` WHERE r.id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	rv := dst.toDomain()
	return &rv, nil
}

// Update rewrites the rating and text of a review.
func (r *Repo) Update(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL, rv.ID, rv.Rating, rv.Title, rv.Text)
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "review", rv.ID)
	}
	return r.GetByID(ctx, rv.ID)
}

// Delete removes a review.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "review", id)
	}
	return nil
}

// ListByTraveler returns a traveler's reviews, newest first.
func (r *Repo) ListByTraveler(ctx context.Context, travelerID uuid.UUID) ([]domain.Review, error) {
	return r.list(ctx, selectSQL+` WHERE r.traveler_id = $1 ORDER BY r.created_at DESC, r.id`, travelerID)
}

// ListByPlace returns the reviews of a place, newest first.
func (r *Repo) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error) {
	return r.list(ctx, selectSQL+` WHERE r.place_id = $1 ORDER BY r.created_at DESC, r.id`, placeID)
}

func (r *Repo) list(ctx context.Context, sql string, key uuid.UUID) ([]domain.Review, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, key); err != nil {
		return nil, postgres.MapError(err, "review", key)
	}
	out := make([]domain.Review, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// RatingsForPlace returns every star rating given to a place.
func (r *Repo) RatingsForPlace(ctx context.Context, placeID uuid.UUID) ([]int, error) {
	var ratings []int
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ratings,
		`SELECT rating FROM reviews WHERE place_id = $1`, placeID)
	if err != nil {
		return nil, postgres.MapError(err, "review", placeID)
	}
	return ratings, nil
}
