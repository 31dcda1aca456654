package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc          func(ctx context.Context, rv domain.Review) (*domain.Review, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByPlaceFunc     func(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error)
	ListByTravelerFunc  func(ctx context.Context, travelerID uuid.UUID) ([]domain.Review, error)
	RatingsForPlaceFunc func(ctx context.Context, placeID uuid.UUID) ([]int, error)
	UpdateFunc          func(ctx context.Context, rv domain.Review) (*domain.Review, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rv  domain.Review
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByPlace []struct {
			Ctx     context.Context
			PlaceID uuid.UUID
		}
		ListByTraveler []struct {
			Ctx        context.Context
			TravelerID uuid.UUID
		}
		RatingsForPlace []struct {
			Ctx     context.Context
			PlaceID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			Rv  domain.Review
		}
	}
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByPlace     sync.RWMutex
	lockListByTraveler  sync.RWMutex
	lockRatingsForPlace sync.RWMutex
	lockUpdate          sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rv  domain.Review
	}{Ctx: ctx, Rv: rv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rv)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rv  domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reviewRepoMock.DeleteFunc: method is nil but reviewRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reviewRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reviewRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if mock.GetByIDFunc == nil {
		panic("reviewRepoMock.GetByIDFunc: method is nil but reviewRepo.GetByID was just called")
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

func (mock *reviewRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error) {
	if mock.ListByPlaceFunc == nil {
		panic("reviewRepoMock.ListByPlaceFunc: method is nil but reviewRepo.ListByPlace was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlaceID uuid.UUID
	}{Ctx: ctx, PlaceID: placeID}
	mock.lockListByPlace.Lock()
	mock.calls.ListByPlace = append(mock.calls.ListByPlace, callInfo)
	mock.lockListByPlace.Unlock()
	return mock.ListByPlaceFunc(ctx, placeID)
}

func (mock *reviewRepoMock) ListByPlaceCalls() []struct {
	Ctx     context.Context
	PlaceID uuid.UUID
} {
	mock.lockListByPlace.RLock()
	calls := mock.calls.ListByPlace
	mock.lockListByPlace.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListByTraveler(ctx context.Context, travelerID uuid.UUID) ([]domain.Review, error) {
	if mock.ListByTravelerFunc == nil {
		panic("reviewRepoMock.ListByTravelerFunc: method is nil but reviewRepo.ListByTraveler was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TravelerID uuid.UUID
	}{Ctx: ctx, TravelerID: travelerID}
	mock.lockListByTraveler.Lock()
	mock.calls.ListByTraveler = append(mock.calls.ListByTraveler, callInfo)
	mock.lockListByTraveler.Unlock()
	return mock.ListByTravelerFunc(ctx, travelerID)
}

func (mock *reviewRepoMock) ListByTravelerCalls() []struct {
	Ctx        context.Context
	TravelerID uuid.UUID
} {
	mock.lockListByTraveler.RLock()
	calls := mock.calls.ListByTraveler
	mock.lockListByTraveler.RUnlock()
	return calls
}

func (mock *reviewRepoMock) RatingsForPlace(ctx context.Context, placeID uuid.UUID) ([]int, error) {
	if mock.RatingsForPlaceFunc == nil {
		panic("reviewRepoMock.RatingsForPlaceFunc: method is nil but reviewRepo.RatingsForPlace was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlaceID uuid.UUID
	}{Ctx: ctx, PlaceID: placeID}
	mock.lockRatingsForPlace.Lock()
	mock.calls.RatingsForPlace = append(mock.calls.RatingsForPlace, callInfo)
	mock.lockRatingsForPlace.Unlock()
	return mock.RatingsForPlaceFunc(ctx, placeID)
}

func (mock *reviewRepoMock) RatingsForPlaceCalls() []struct {
	Ctx     context.Context
	PlaceID uuid.UUID
} {
	mock.lockRatingsForPlace.RLock()
	calls := mock.calls.RatingsForPlace
	mock.lockRatingsForPlace.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Update(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	if mock.UpdateFunc == nil {
		panic("reviewRepoMock.UpdateFunc: method is nil but reviewRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rv  domain.Review
	}{Ctx: ctx, Rv: rv}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rv)
}

func (mock *reviewRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rv  domain.Review
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
