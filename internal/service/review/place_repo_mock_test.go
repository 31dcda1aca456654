package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ placeRepo = &placeRepoMock{}

type placeRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) error
	SetRatingFunc     func(ctx context.Context, id uuid.UUID, s domain.RatingSummary) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetRating []struct {
			Ctx context.Context
			ID  uuid.UUID
			S   domain.RatingSummary
		}
	}
	lockGetByID       sync.RWMutex
	lockLockForUpdate sync.RWMutex
	lockSetRating     sync.RWMutex
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

func (mock *placeRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("placeRepoMock.LockForUpdateFunc: method is nil but placeRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *placeRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *placeRepoMock) SetRating(ctx context.Context, id uuid.UUID, s domain.RatingSummary) error {
	if mock.SetRatingFunc == nil {
		panic("placeRepoMock.SetRatingFunc: method is nil but placeRepo.SetRating was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		S   domain.RatingSummary
	}{Ctx: ctx, ID: id, S: s}
	mock.lockSetRating.Lock()
	mock.calls.SetRating = append(mock.calls.SetRating, callInfo)
	mock.lockSetRating.Unlock()
	return mock.SetRatingFunc(ctx, id, s)
}

func (mock *placeRepoMock) SetRatingCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	S   domain.RatingSummary
} {
	mock.lockSetRating.RLock()
	calls := mock.calls.SetRating
	mock.lockSetRating.RUnlock()
	return calls
}
