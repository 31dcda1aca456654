package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/chat"
	"github.com/heartmarshall/tringgo-backend/pkg/ctxutil"
)

type chatbotService interface {
	Reply(ctx context.Context, message string) (string, error)
}

type chatService interface {
	Request(ctx context.Context, otherUserID uuid.UUID) (*domain.ChatThread, error)
	Respond(ctx context.Context, threadID uuid.UUID, resp chat.Response) (*domain.ChatThread, error)
	ListThreads(ctx context.Context) ([]domain.ChatThread, error)
	Messages(ctx context.Context, threadID uuid.UUID) ([]domain.ChatMessage, error)
	Send(ctx context.Context, threadID uuid.UUID, text string) (*domain.ChatMessage, error)
}

// ChatHandler serves the directory chatbot and user to user chat.
type ChatHandler struct {
	bot   chatbotService
	chats chatService
	log   *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(bot chatbotService, chats chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{bot: bot, chats: chats, log: logger.With("handler", "chat")}
}

type chatbotRequest struct {
	Message string `json:"message"`
}

type chatbotResponse struct {
	Reply string `json:"reply"`
}

// Chatbot handles POST /chatbot/message.
func (h *ChatHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	reply, err := h.bot.Reply(r.Context(), req.Message)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, chatbotResponse{Reply: reply})
}

type chatRequestBody struct {
	UserID string `json:"user_id"`
}

// RequestChat handles POST /chat/requests.
func (h *ChatHandler) RequestChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequestBody
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	other, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("user_id", "must be a UUID"))
		return
	}

	th, err := h.chats.Request(r.Context(), other)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.thread(r, *th))
}

type respondRequest struct {
	Action string `json:"action"`
}

// Respond handles POST /chat/threads/{id}/respond.
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req respondRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	th, err := h.chats.Respond(r.Context(), id, chat.Response(req.Action))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.thread(r, *th))
}

// ListThreads handles GET /chat/threads.
func (h *ChatHandler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.chats.ListThreads(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(threads, func(th domain.ChatThread) chatThreadResponse {
		return h.thread(r, th)
	}))
}

// Messages handles GET /chat/threads/{id}/messages.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	msgs, err := h.chats.Messages(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(msgs, func(m domain.ChatMessage) chatMessageResponse {
		return chatMessageResponse(m)
	}))
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// Send handles POST /chat/threads/{id}/messages.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	msg, err := h.chats.Send(r.Context(), id, req.Text)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, chatMessageResponse(*msg))
}

func (h *ChatHandler) thread(r *http.Request, th domain.ChatThread) chatThreadResponse {
	viewer, _ := ctxutil.UserIDFromCtx(r.Context())
	return toChatThread(th, viewer)
}
