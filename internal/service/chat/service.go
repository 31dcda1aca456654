// Package chat implements two-party chat threads: a request, a response
// and then free messaging while the thread is active.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const maxMessageLength = 2000

type chatRepo interface {
	OpenThread(ctx context.Context, requester uuid.UUID, other uuid.UUID) (*domain.ChatThread, error)
	GetThread(ctx context.Context, id uuid.UUID) (*domain.ChatThread, error)
	Transition(ctx context.Context, id uuid.UUID, from domain.ChatThreadStatus, to domain.ChatThreadStatus) error
	ListThreads(ctx context.Context, userID uuid.UUID) ([]domain.ChatThread, error)
	AddMessage(ctx context.Context, threadID uuid.UUID, senderID uuid.UUID, text string) (*domain.ChatMessage, error)
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]domain.ChatMessage, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements chat operations.
type Service struct {
	log   *slog.Logger
	chats chatRepo
	users userRepo
}

// NewService creates a new chat service.
func NewService(logger *slog.Logger, chats chatRepo, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "chat"),
		chats: chats,
		users: users,
	}
}
