package verification

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ merchantRepo = &merchantRepoMock{}

type merchantRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.MerchantProfile, error)
	GetByUserIDFunc  func(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	LockByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	SetVerifiedFunc  func(ctx context.Context, id uuid.UUID, verified bool, verifiedBy *uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		LockByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SetVerified []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Verified   bool
			VerifiedBy *uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockGetByUserID  sync.RWMutex
	lockLockByUserID sync.RWMutex
	lockSetVerified  sync.RWMutex
}

func (mock *merchantRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantProfile, error) {
	if mock.GetByIDFunc == nil {
		panic("merchantRepoMock.GetByIDFunc: method is nil but merchantRepo.GetByID was just called")
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

func (mock *merchantRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *merchantRepoMock) SetVerified(ctx context.Context, id uuid.UUID, verified bool, verifiedBy *uuid.UUID) error {
	if mock.SetVerifiedFunc == nil {
		panic("merchantRepoMock.SetVerifiedFunc: method is nil but merchantRepo.SetVerified was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Verified   bool
		VerifiedBy *uuid.UUID
	}{Ctx: ctx, ID: id, Verified: verified, VerifiedBy: verifiedBy}
	mock.lockSetVerified.Lock()
	mock.calls.SetVerified = append(mock.calls.SetVerified, callInfo)
	mock.lockSetVerified.Unlock()
	return mock.SetVerifiedFunc(ctx, id, verified, verifiedBy)
}

func (mock *merchantRepoMock) SetVerifiedCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Verified   bool
	VerifiedBy *uuid.UUID
} {
	mock.lockSetVerified.RLock()
	calls := mock.calls.SetVerified
	mock.lockSetVerified.RUnlock()
	return calls
}
