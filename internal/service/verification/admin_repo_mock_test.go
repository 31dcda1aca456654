package verification

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ adminRepo = &adminRepoMock{}

type adminRepoMock struct {
	GetAdminProfileFunc func(ctx context.Context, userID uuid.UUID) (*domain.AdminProfile, error)

	calls struct {
		GetAdminProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetAdminProfile sync.RWMutex
}

func (mock *adminRepoMock) GetAdminProfile(ctx context.Context, userID uuid.UUID) (*domain.AdminProfile, error) {
	if mock.GetAdminProfileFunc == nil {
		panic("adminRepoMock.GetAdminProfileFunc: method is nil but adminRepo.GetAdminProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetAdminProfile.Lock()
	mock.calls.GetAdminProfile = append(mock.calls.GetAdminProfile, callInfo)
	mock.lockGetAdminProfile.Unlock()
	return mock.GetAdminProfileFunc(ctx, userID)
}

func (mock *adminRepoMock) GetAdminProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetAdminProfile.RLock()
	calls := mock.calls.GetAdminProfile
	mock.lockGetAdminProfile.RUnlock()
	return calls
}
