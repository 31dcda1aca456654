// Package transcript implements the global chatbot transcript using PostgreSQL.
package transcript

import (
	"context"
	"slices"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides transcript persistence backed by PostgreSQL. Entries are
// append only.
type Repo struct {
	db postgres.Querier
}

// New creates a new transcript repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const appendSQL = `
INSERT INTO chatbot_messages (role, message)
VALUES ($1, $2)
RETURNING id, role, message, created_at`

// The id sequence is the append order, so it also orders entries created
// within the same clock tick.
const recentSQL = `
SELECT id, role, message, created_at
FROM chatbot_messages
ORDER BY id DESC
LIMIT $1`

type row struct {
	ID        int64     `db:"id"`
	Role      string    `db:"role"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.TranscriptEntry {
	return domain.TranscriptEntry{
		ID:        r.ID,
		Role:      domain.TranscriptRole(r.Role),
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

// Append stores one transcript entry.
func (r *Repo) Append(ctx context.Context, role domain.TranscriptRole, message string) (*domain.TranscriptEntry, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, appendSQL, string(role), message); err != nil {
		return nil, postgres.MapError(err, "transcript", role)
	}
	e := dst.toDomain()
	return &e, nil
}

// Recent returns the last limit entries in chronological order.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.TranscriptEntry, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, recentSQL, limit); err != nil {
		return nil, postgres.MapError(err, "transcript", "recent")
	}

	out := make([]domain.TranscriptEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	slices.Reverse(out)
	return out, nil
}
