package rest

import (
	"context"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/merchant"
	"sync"
)

var _ merchantService = &merchantServiceMock{}

type merchantServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (*domain.MerchantProfile, error)
	UpdateProfileFunc func(ctx context.Context, input merchant.UpdateProfileInput) (*domain.MerchantProfile, error)

	calls struct {
		GetProfile []struct{ Ctx context.Context }
		UpdateProfile []struct {
			Ctx   context.Context
			Input merchant.UpdateProfileInput
		}
	}
	lockGetProfile    sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *merchantServiceMock) GetProfile(ctx context.Context) (*domain.MerchantProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("merchantServiceMock.GetProfileFunc: method is nil but merchantService.GetProfile was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *merchantServiceMock) GetProfileCalls() []struct{ Ctx context.Context } {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *merchantServiceMock) UpdateProfile(ctx context.Context, input merchant.UpdateProfileInput) (*domain.MerchantProfile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("merchantServiceMock.UpdateProfileFunc: method is nil but merchantService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input merchant.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *merchantServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input merchant.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
