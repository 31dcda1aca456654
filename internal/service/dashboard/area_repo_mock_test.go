package dashboard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ areaRepo = &areaRepoMock{}

type areaRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Area, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *areaRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error) {
	if mock.GetByIDFunc == nil {
		panic("areaRepoMock.GetByIDFunc: method is nil but areaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *areaRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
