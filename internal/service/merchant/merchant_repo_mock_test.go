package merchant

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ merchantRepo = &merchantRepoMock{}

type merchantRepoMock struct {
	GetByUserIDFunc  func(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	ListFunc         func(ctx context.Context, f domain.MerchantFilter) ([]domain.MerchantProfile, error)
	LockByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	UpdateFunc       func(ctx context.Context, m domain.MerchantProfile) (*domain.MerchantProfile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.MerchantFilter
		}
		LockByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			M   domain.MerchantProfile
		}
	}
	lockGetByUserID  sync.RWMutex
	lockList         sync.RWMutex
	lockLockByUserID sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *merchantRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("merchantRepoMock.GetByUserIDFunc: method is nil but merchantRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *merchantRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *merchantRepoMock) List(ctx context.Context, f domain.MerchantFilter) ([]domain.MerchantProfile, error) {
	if mock.ListFunc == nil {
		panic("merchantRepoMock.ListFunc: method is nil but merchantRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.MerchantFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *merchantRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.MerchantFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *merchantRepoMock) LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error) {
	if mock.LockByUserIDFunc == nil {
		panic("merchantRepoMock.LockByUserIDFunc: method is nil but merchantRepo.LockByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLockByUserID.Lock()
	mock.calls.LockByUserID = append(mock.calls.LockByUserID, callInfo)
	mock.lockLockByUserID.Unlock()
	return mock.LockByUserIDFunc(ctx, userID)
}

func (mock *merchantRepoMock) LockByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLockByUserID.RLock()
	calls := mock.calls.LockByUserID
	mock.lockLockByUserID.RUnlock()
	return calls
}

func (mock *merchantRepoMock) Update(ctx context.Context, m domain.MerchantProfile) (*domain.MerchantProfile, error) {
	if mock.UpdateFunc == nil {
		panic("merchantRepoMock.UpdateFunc: method is nil but merchantRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.MerchantProfile
	}{Ctx: ctx, M: m}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, m)
}

func (mock *merchantRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	M   domain.MerchantProfile
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
