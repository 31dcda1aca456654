package directory

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ placeRepo = &placeRepoMock{}

type placeRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	QueryFunc       func(ctx context.Context, f domain.PlaceFilter) ([]domain.Place, error)
	SetImageURLFunc func(ctx context.Context, id uuid.UUID, url string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Query []struct {
			Ctx context.Context
			F   domain.PlaceFilter
		}
		SetImageURL []struct {
			Ctx context.Context
			ID  uuid.UUID
			URL string
		}
	}
	lockGetByID     sync.RWMutex
	lockQuery       sync.RWMutex
	lockSetImageURL sync.RWMutex
}

func (mock *placeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	if mock.GetByIDFunc == nil {
		panic("placeRepoMock.GetByIDFunc: method is nil but placeRepo.GetByID was just called")
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

func (mock *placeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *placeRepoMock) Query(ctx context.Context, f domain.PlaceFilter) ([]domain.Place, error) {
	if mock.QueryFunc == nil {
		panic("placeRepoMock.QueryFunc: method is nil but placeRepo.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PlaceFilter
	}{Ctx: ctx, F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, f)
}

func (mock *placeRepoMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.PlaceFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *placeRepoMock) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	if mock.SetImageURLFunc == nil {
		panic("placeRepoMock.SetImageURLFunc: method is nil but placeRepo.SetImageURL was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		URL string
	}{Ctx: ctx, ID: id, URL: url}
	mock.lockSetImageURL.Lock()
	mock.calls.SetImageURL = append(mock.calls.SetImageURL, callInfo)
	mock.lockSetImageURL.Unlock()
	return mock.SetImageURLFunc(ctx, id, url)
}

func (mock *placeRepoMock) SetImageURLCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	URL string
} {
	mock.lockSetImageURL.RLock()
	calls := mock.calls.SetImageURL
	mock.lockSetImageURL.RUnlock()
	return calls
}
