package directory

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ serviceRepo = &serviceRepoMock{}

type serviceRepoMock struct {
	CreateFunc  func(ctx context.Context, s domain.Service) (*domain.Service, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	QueryFunc   func(ctx context.Context, f domain.ServiceFilter) ([]domain.Service, error)
	UpdateFunc  func(ctx context.Context, s domain.Service) (*domain.Service, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Service
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Query []struct {
			Ctx context.Context
			F   domain.ServiceFilter
		}
		Update []struct {
			Ctx context.Context
			S   domain.Service
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockQuery   sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *serviceRepoMock) Create(ctx context.Context, s domain.Service) (*domain.Service, error) {
	if mock.CreateFunc == nil {
		panic("serviceRepoMock.CreateFunc: method is nil but serviceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Service
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *serviceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Service
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *serviceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	if mock.GetByIDFunc == nil {
		panic("serviceRepoMock.GetByIDFunc: method is nil but serviceRepo.GetByID was just called")
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

func (mock *serviceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *serviceRepoMock) Query(ctx context.Context, f domain.ServiceFilter) ([]domain.Service, error) {
	if mock.QueryFunc == nil {
		panic("serviceRepoMock.QueryFunc: method is nil but serviceRepo.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ServiceFilter
	}{Ctx: ctx, F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, f)
}

func (mock *serviceRepoMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.ServiceFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *serviceRepoMock) Update(ctx context.Context, s domain.Service) (*domain.Service, error) {
	if mock.UpdateFunc == nil {
		panic("serviceRepoMock.UpdateFunc: method is nil but serviceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Service
	}{Ctx: ctx, S: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *serviceRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   domain.Service
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
