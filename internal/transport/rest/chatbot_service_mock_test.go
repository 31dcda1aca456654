package rest

import (
	"context"
	"sync"
)

var _ chatbotService = &chatbotServiceMock{}

type chatbotServiceMock struct {
	ReplyFunc func(ctx context.Context, message string) (string, error)

	calls struct {
		Reply []struct {
			Ctx     context.Context
			Message string
		}
	}
	lockReply sync.RWMutex
}

func (mock *chatbotServiceMock) Reply(ctx context.Context, message string) (string, error) {
	if mock.ReplyFunc == nil {
		panic("chatbotServiceMock.ReplyFunc: method is nil but chatbotService.Reply was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Message string
	}{Ctx: ctx, Message: message}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, message)
}

func (mock *chatbotServiceMock) ReplyCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}
