// Package chatbot answers free-text directory questions with a fixed set of
// keyword intents and keeps a global transcript of every exchange.
package chatbot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type placeRepo interface {
	Query(ctx context.Context, f domain.PlaceFilter) ([]domain.Place, error)
}

type serviceRepo interface {
	Query(ctx context.Context, f domain.ServiceFilter) ([]domain.Service, error)
}

type transcriptRepo interface {
	Append(ctx context.Context, role domain.TranscriptRole, message string) (*domain.TranscriptEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.TranscriptEntry, error)
}

// Service runs one chatbot turn per Reply call.
type Service struct {
	log        *slog.Logger
	router     *Router
	transcript transcriptRepo
}

// NewService creates a new chatbot service.
func NewService(logger *slog.Logger, router *Router, transcript transcriptRepo) *Service {
	return &Service{
		log:        logger.With("service", "chatbot"),
		router:     router,
		transcript: transcript,
	}
}

// Reply answers message. The user message is stored before it is
// classified and the reply is stored after it is formatted, so every
// non-empty turn appends exactly two transcript entries. A failing
// directory lookup is logged and answered with the fallback reply.
// Errors are returned only when the transcript cannot be written.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return emptyMessageReply, nil
	}

	// Step 1: Persist the user message
	if _, err := s.transcript.Append(ctx, domain.TranscriptRoleUser, message); err != nil {
		return "", fmt.Errorf("chatbot.Reply save message: %w", err)
	}

	// Step 2: Classify and answer
	intent, reply, err := s.router.Route(ctx, strings.ToLower(message))
	if err != nil {
		s.log.ErrorContext(ctx, "chatbot lookup failed",
			slog.String("intent", intent),
			slog.String("error", err.Error()))
		reply = fallbackReply
	}

	// Step 3: Persist the reply
	if _, err := s.transcript.Append(ctx, domain.TranscriptRoleBot, reply); err != nil {
		return "", fmt.Errorf("chatbot.Reply save reply: %w", err)
	}

	s.log.DebugContext(ctx, "chatbot replied", slog.String("intent", intent))
	return reply, nil
}
