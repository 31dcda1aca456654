package chat

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ chatRepo = &chatRepoMock{}

type chatRepoMock struct {
	AddMessageFunc   func(ctx context.Context, threadID uuid.UUID, senderID uuid.UUID, text string) (*domain.ChatMessage, error)
	GetThreadFunc    func(ctx context.Context, id uuid.UUID) (*domain.ChatThread, error)
	ListMessagesFunc func(ctx context.Context, threadID uuid.UUID) ([]domain.ChatMessage, error)
	ListThreadsFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.ChatThread, error)
	OpenThreadFunc   func(ctx context.Context, requester uuid.UUID, other uuid.UUID) (*domain.ChatThread, error)
	TransitionFunc   func(ctx context.Context, id uuid.UUID, from domain.ChatThreadStatus, to domain.ChatThreadStatus) error

	calls struct {
		AddMessage []struct {
			Ctx      context.Context
			ThreadID uuid.UUID
			SenderID uuid.UUID
			Text     string
		}
		GetThread []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListMessages []struct {
			Ctx      context.Context
			ThreadID uuid.UUID
		}
		ListThreads []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		OpenThread []struct {
			Ctx       context.Context
			Requester uuid.UUID
			Other     uuid.UUID
		}
		Transition []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From domain.ChatThreadStatus
			To   domain.ChatThreadStatus
		}
	}
	lockAddMessage   sync.RWMutex
	lockGetThread    sync.RWMutex
	lockListMessages sync.RWMutex
	lockListThreads  sync.RWMutex
	lockOpenThread   sync.RWMutex
	lockTransition   sync.RWMutex
}

func (mock *chatRepoMock) AddMessage(ctx context.Context, threadID uuid.UUID, senderID uuid.UUID, text string) (*domain.ChatMessage, error) {
	if mock.AddMessageFunc == nil {
		panic("chatRepoMock.AddMessageFunc: method is nil but chatRepo.AddMessage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ThreadID uuid.UUID
		SenderID uuid.UUID
		Text     string
	}{Ctx: ctx, ThreadID: threadID, SenderID: senderID, Text: text}
	mock.lockAddMessage.Lock()
	mock.calls.AddMessage = append(mock.calls.AddMessage, callInfo)
	mock.lockAddMessage.Unlock()
	return mock.AddMessageFunc(ctx, threadID, senderID, text)
}

func (mock *chatRepoMock) AddMessageCalls() []struct {
	Ctx      context.Context
	ThreadID uuid.UUID
	SenderID uuid.UUID
	Text     string
} {
	mock.lockAddMessage.RLock()
	calls := mock.calls.AddMessage
	mock.lockAddMessage.RUnlock()
	return calls
}

func (mock *chatRepoMock) GetThread(ctx context.Context, id uuid.UUID) (*domain.ChatThread, error) {
	if mock.GetThreadFunc == nil {
		panic("chatRepoMock.GetThreadFunc: method is nil but chatRepo.GetThread was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetThread.Lock()
	mock.calls.GetThread = append(mock.calls.GetThread, callInfo)
	mock.lockGetThread.Unlock()
	return mock.GetThreadFunc(ctx, id)
}

func (mock *chatRepoMock) GetThreadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetThread.RLock()
	calls := mock.calls.GetThread
	mock.lockGetThread.RUnlock()
	return calls
}

func (mock *chatRepoMock) ListMessages(ctx context.Context, threadID uuid.UUID) ([]domain.ChatMessage, error) {
	if mock.ListMessagesFunc == nil {
		panic("chatRepoMock.ListMessagesFunc: method is nil but chatRepo.ListMessages was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ThreadID uuid.UUID
	}{Ctx: ctx, ThreadID: threadID}
	mock.lockListMessages.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, callInfo)
	mock.lockListMessages.Unlock()
	return mock.ListMessagesFunc(ctx, threadID)
}

func (mock *chatRepoMock) ListMessagesCalls() []struct {
	Ctx      context.Context
	ThreadID uuid.UUID
} {
	mock.lockListMessages.RLock()
	calls := mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}

func (mock *chatRepoMock) ListThreads(ctx context.Context, userID uuid.UUID) ([]domain.ChatThread, error) {
	if mock.ListThreadsFunc == nil {
		panic("chatRepoMock.ListThreadsFunc: method is nil but chatRepo.ListThreads was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListThreads.Lock()
	mock.calls.ListThreads = append(mock.calls.ListThreads, callInfo)
	mock.lockListThreads.Unlock()
	return mock.ListThreadsFunc(ctx, userID)
}

func (mock *chatRepoMock) ListThreadsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListThreads.RLock()
	calls := mock.calls.ListThreads
	mock.lockListThreads.RUnlock()
	return calls
}

func (mock *chatRepoMock) OpenThread(ctx context.Context, requester uuid.UUID, other uuid.UUID) (*domain.ChatThread, error) {
	if mock.OpenThreadFunc == nil {
		panic("chatRepoMock.OpenThreadFunc: method is nil but chatRepo.OpenThread was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Requester uuid.UUID
		Other     uuid.UUID
	}{Ctx: ctx, Requester: requester, Other: other}
	mock.lockOpenThread.Lock()
	mock.calls.OpenThread = append(mock.calls.OpenThread, callInfo)
	mock.lockOpenThread.Unlock()
	return mock.OpenThreadFunc(ctx, requester, other)
}

func (mock *chatRepoMock) OpenThreadCalls() []struct {
	Ctx       context.Context
	Requester uuid.UUID
	Other     uuid.UUID
} {
	mock.lockOpenThread.RLock()
	calls := mock.calls.OpenThread
	mock.lockOpenThread.RUnlock()
	return calls
}

func (mock *chatRepoMock) Transition(ctx context.Context, id uuid.UUID, from domain.ChatThreadStatus, to domain.ChatThreadStatus) error {
	if mock.TransitionFunc == nil {
		panic("chatRepoMock.TransitionFunc: method is nil but chatRepo.Transition was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From domain.ChatThreadStatus
		To   domain.ChatThreadStatus
	}{Ctx: ctx, ID: id, From: from, To: to}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, id, from, to)
}

func (mock *chatRepoMock) TransitionCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From domain.ChatThreadStatus
	To   domain.ChatThreadStatus
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}
