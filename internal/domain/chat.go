package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatThread is a two-party conversation that starts as a pending request.
type ChatThread struct {
	ID          uuid.UUID
	UserA       uuid.UUID
	UserB       uuid.UUID
	RequestedBy uuid.UUID
	Status      ChatThreadStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasParticipant reports whether userID is one of the two parties.
func (t *ChatThread) HasParticipant(userID uuid.UUID) bool {
	return t.UserA == userID || t.UserB == userID
}

// Other returns the participant that is not userID.
func (t *ChatThread) Other(userID uuid.UUID) uuid.UUID {
	if t.UserA == userID {
		return t.UserB
	}
	return t.UserA
}

// OrderedPair returns the two ids sorted so a pair maps to one thread.
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}

// ChatMessage is one message in a thread.
type ChatMessage struct {
	ID        uuid.UUID
	ThreadID  uuid.UUID
	SenderID  uuid.UUID
	Text      string
	IsRead    bool
	CreatedAt time.Time
}
