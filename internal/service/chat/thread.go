package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Response answers a pending chat request.
type Response string

const (
	ResponseAccept Response = "accept"
	ResponseReject Response = "reject"
)

// Request opens a chat with another user. An existing thread for the pair
// is returned as is.
func (s *Service) Request(ctx context.Context, otherUserID uuid.UUID) (*domain.ChatThread, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if otherUserID == caller.UserID {
		return nil, domain.NewValidationError("user_id", "cannot start a chat with yourself")
	}

	if _, err := s.users.GetByID(ctx, otherUserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("user_id", "unknown user")
		}
		return nil, fmt.Errorf("chat.Request get user: %w", err)
	}

	th, err := s.chats.OpenThread(ctx, caller.UserID, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("chat.Request: %w", err)
	}

	s.log.InfoContext(ctx, "chat requested",
		slog.String("thread_id", th.ID.String()),
		slog.String("status", th.Status.String()))
	return th, nil
}

// Respond accepts or rejects a pending request. Only the invited party may
// respond.
func (s *Service) Respond(ctx context.Context, threadID uuid.UUID, resp Response) (*domain.ChatThread, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var to domain.ChatThreadStatus
	switch Response(strings.ToLower(strings.TrimSpace(string(resp)))) {
	case ResponseAccept:
		to = domain.ChatThreadActive
	case ResponseReject:
		to = domain.ChatThreadClosed
	default:
		return nil, domain.NewValidationError("action", "must be accept or reject")
	}

	th, err := s.participantThread(ctx, caller, threadID)
	if err != nil {
		return nil, err
	}
	if th.RequestedBy == caller.UserID {
		return nil, fmt.Errorf("%w: the requester cannot answer their own request", domain.ErrForbidden)
	}
	if th.Status != domain.ChatThreadPending {
		return nil, fmt.Errorf("%w: chat is %s", domain.ErrConflict, th.Status)
	}

	if err := s.chats.Transition(ctx, th.ID, domain.ChatThreadPending, to); err != nil {
		return nil, fmt.Errorf("chat.Respond: %w", err)
	}
	th.Status = to
	return th, nil
}

// ListThreads returns the caller's threads.
func (s *Service) ListThreads(ctx context.Context) ([]domain.ChatThread, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	threads, err := s.chats.ListThreads(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("chat.ListThreads: %w", err)
	}
	return threads, nil
}

// Messages returns a thread's messages oldest first.
func (s *Service) Messages(ctx context.Context, threadID uuid.UUID) ([]domain.ChatMessage, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.participantThread(ctx, caller, threadID); err != nil {
		return nil, err
	}

	msgs, err := s.chats.ListMessages(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("chat.Messages: %w", err)
	}
	return msgs, nil
}

// Send posts a message to an active thread.
func (s *Service) Send(ctx context.Context, threadID uuid.UUID, text string) (*domain.ChatMessage, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil, domain.NewValidationError("text", "required")
	case len(text) > maxMessageLength:
		return nil, domain.NewValidationError("text", "too long")
	}

	th, err := s.participantThread(ctx, caller, threadID)
	if err != nil {
		return nil, err
	}
	if th.Status != domain.ChatThreadActive {
		return nil, fmt.Errorf("%w: chat is %s", domain.ErrConflict, th.Status)
	}

	msg, err := s.chats.AddMessage(ctx, threadID, caller.UserID, text)
	if err != nil {
		return nil, fmt.Errorf("chat.Send: %w", err)
	}
	return msg, nil
}

func (s *Service) participantThread(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.ChatThread, error) {
	th, err := s.chats.GetThread(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("chat get thread: %w", err)
	}
	if !th.HasParticipant(caller.UserID) {
		return nil, fmt.Errorf("%w: not a participant", domain.ErrForbidden)
	}
	return th, nil
}
