// Package savedplace implements traveler bookmarks using PostgreSQL.
package savedplace

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides saved place persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new saved place repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const listSQL = `
SELECT sp.traveler_id, sp.created_at AS saved_at,
       p.id, p.name, p.description, p.area_id, COALESCE(a.name, '') AS area_name, p.category,
       p.address, p.image_url, p.average_rating, p.review_count
FROM saved_places sp
JOIN places p ON p.id = sp.place_id
LEFT JOIN areas a ON a.id = p.area_id
WHERE sp.traveler_id = $1
ORDER BY sp.created_at DESC, p.id`

const addSQL = `
INSERT INTO saved_places (traveler_id, place_id)
VALUES ($1, $2)
ON CONFLICT (traveler_id, place_id) DO NOTHING`

type row struct {
	TravelerID    uuid.UUID  `db:"traveler_id"`
	SavedAt       time.Time  `db:"saved_at"`
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	AreaID        *uuid.UUID `db:"area_id"`
	AreaName      string     `db:"area_name"`
	Category      string     `db:"category"`
	Address       string     `db:"address"`
	ImageURL      string     `db:"image_url"`
	AverageRating float64    `db:"average_rating"`
	ReviewCount   int        `db:"review_count"`
}

// List returns the places saved by travelerID, most recent first.
func (r *Repo) List(ctx context.Context, travelerID uuid.UUID) ([]domain.SavedPlace, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, travelerID); err != nil {
		return nil, postgres.MapError(err, "saved_place", travelerID)
	}

	out := make([]domain.SavedPlace, len(rows))
	for i, row := range rows {
		out[i] = domain.SavedPlace{
			TravelerID: row.TravelerID,
			CreatedAt:  row.SavedAt,
			Place: domain.Place{
				ID:            row.ID,
				Name:          row.Name,
				Description:   row.Description,
				AreaID:        row.AreaID,
				AreaName:      row.AreaName,
				Category:      domain.PlaceCategory(row.Category),
				Address:       row.Address,
				ImageURL:      row.ImageURL,
				AverageRating: row.AverageRating,
				ReviewCount:   row.ReviewCount,
			},
		}
	}
	return out, nil
}

// Add bookmarks a place. Saving the same place twice is a no-op.
func (r *Repo) Add(ctx context.Context, travelerID, placeID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, addSQL, travelerID, placeID); err != nil {
		return postgres.MapError(err, "saved_place", placeID)
	}
	return nil
}

// Remove deletes a bookmark and reports whether one existed.
func (r *Repo) Remove(ctx context.Context, travelerID, placeID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM saved_places WHERE traveler_id = $1 AND place_id = $2`, travelerID, placeID)
	if err != nil {
		return false, postgres.MapError(err, "saved_place", placeID)
	}
	return tag.RowsAffected() > 0, nil
}
