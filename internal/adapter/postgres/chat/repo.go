// Package chat implements two-party chat threads and messages using PostgreSQL.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides chat persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new chat repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const threadColumns = `id, user_a, user_b, requested_by, status, created_at, updated_at`

// On conflict the no-op update makes RETURNING yield the existing row.
const openThreadSQL = `
INSERT INTO chat_threads (id, user_a, user_b, requested_by, status)
VALUES ($1, $2, $3, $4, 'pending')
ON CONFLICT (user_a, user_b) DO UPDATE SET updated_at = chat_threads.updated_at
RETURNING ` + threadColumns

const transitionSQL = `
UPDATE chat_threads SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2`

const listThreadsSQL = `
SELECT ` + threadColumns + `
FROM chat_threads
WHERE user_a = $1 OR user_b = $1
ORDER BY updated_at DESC, id`

const addMessageSQL = `
INSERT INTO chat_messages (id, thread_id, sender_id, text)
VALUES ($1, $2, $3, $4)
RETURNING id, thread_id, sender_id, text, is_read, created_at`

const listMessagesSQL = `
SELECT id, thread_id, sender_id, text, is_read, created_at
FROM chat_messages
WHERE thread_id = $1
ORDER BY created_at, id`

type threadRow struct {
	ID          uuid.UUID `db:"id"`
	UserA       uuid.UUID `db:"user_a"`
	UserB       uuid.UUID `db:"user_b"`
	RequestedBy uuid.UUID `db:"requested_by"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r threadRow) toDomain() domain.ChatThread {
	return domain.ChatThread{
		ID:          r.ID,
		UserA:       r.UserA,
		UserB:       r.UserB,
		RequestedBy: r.RequestedBy,
		Status:      domain.ChatThreadStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type messageRow struct {
	ID        uuid.UUID `db:"id"`
	ThreadID  uuid.UUID `db:"thread_id"`
	SenderID  uuid.UUID `db:"sender_id"`
	Text      string    `db:"text"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

// OpenThread returns the thread between requester and other, creating a
// pending one requested by requester when the pair has none.
func (r *Repo) OpenThread(ctx context.Context, requester, other uuid.UUID) (*domain.ChatThread, error) {
	a, b := domain.OrderedPair(requester, other)

	var dst threadRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, openThreadSQL, uuid.New(), a, b, requester)
	if err != nil {
		return nil, postgres.MapError(err, "chat_thread", other)
	}
	th := dst.toDomain()
	return &th, nil
}

// GetThread returns a thread by primary key.
func (r *Repo) GetThread(ctx context.Context, id uuid.UUID) (*domain.ChatThread, error) {
	var dst threadRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT `+threadColumns+` FROM chat_threads WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "chat_thread", id)
	}
	th := dst.toDomain()
	return &th, nil
}

// Transition moves a thread from one status to another. A thread no longer
// in from yields domain.ErrConflict.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, from, to domain.ChatThreadStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, transitionSQL, id, string(from), string(to))
	if err != nil {
		return postgres.MapError(err, "chat_thread", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat_thread %s: %w: not %s", id, domain.ErrConflict, from)
	}
	return nil
}

// ListThreads returns the threads userID takes part in, most recently active first.
func (r *Repo) ListThreads(ctx context.Context, userID uuid.UUID) ([]domain.ChatThread, error) {
	var rows []threadRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listThreadsSQL, userID); err != nil {
		return nil, postgres.MapError(err, "chat_thread", userID)
	}
	out := make([]domain.ChatThread, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// AddMessage stores a message and bumps the thread's activity time.
func (r *Repo) AddMessage(ctx context.Context, threadID, senderID uuid.UUID, text string) (*domain.ChatMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var dst messageRow
	if err := pgxscan.Get(ctx, q, &dst, addMessageSQL, uuid.New(), threadID, senderID, text); err != nil {
		return nil, postgres.MapError(err, "chat_message", threadID)
	}
	if _, err := q.Exec(ctx, `UPDATE chat_threads SET updated_at = now() WHERE id = $1`, threadID); err != nil {
		return nil, postgres.MapError(err, "chat_thread", threadID)
	}

	m := domain.ChatMessage(dst)
	return &m, nil
}

// ListMessages returns the messages of a thread in the order they were sent.
func (r *Repo) ListMessages(ctx context.Context, threadID uuid.UUID) ([]domain.ChatMessage, error) {
	var rows []messageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listMessagesSQL, threadID); err != nil {
		return nil, postgres.MapError(err, "chat_message", threadID)
	}
	out := make([]domain.ChatMessage, len(rows))
	for i, row := range rows {
		out[i] = domain.ChatMessage(row)
	}
	return out, nil
}
