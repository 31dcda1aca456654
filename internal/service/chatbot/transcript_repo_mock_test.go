package chatbot

import (
	"context"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ transcriptRepo = &transcriptRepoMock{}

type transcriptRepoMock struct {
	AppendFunc func(ctx context.Context, role domain.TranscriptRole, message string) (*domain.TranscriptEntry, error)
	RecentFunc func(ctx context.Context, limit int) ([]domain.TranscriptEntry, error)

	calls struct {
		Append []struct {
			Ctx     context.Context
			Role    domain.TranscriptRole
			Message string
		}
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockAppend sync.RWMutex
	lockRecent sync.RWMutex
}

func (mock *transcriptRepoMock) Append(ctx context.Context, role domain.TranscriptRole, message string) (*domain.TranscriptEntry, error) {
	if mock.AppendFunc == nil {
		panic("transcriptRepoMock.AppendFunc: method is nil but transcriptRepo.Append was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Role    domain.TranscriptRole
		Message string
	}{Ctx: ctx, Role: role, Message: message}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, role, message)
}

func (mock *transcriptRepoMock) AppendCalls() []struct {
	Ctx     context.Context
	Role    domain.TranscriptRole
	Message string
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *transcriptRepoMock) Recent(ctx context.Context, limit int) ([]domain.TranscriptEntry, error) {
	if mock.RecentFunc == nil {
		panic("transcriptRepoMock.RecentFunc: method is nil but transcriptRepo.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *transcriptRepoMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
