package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc                func(ctx context.Context, u domain.User) (*domain.User, error)
	CreateLoginLogFunc        func(ctx context.Context, l domain.LoginLog) error
	GetByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLoginFunc            func(ctx context.Context, login string) (*domain.User, error)
	UpsertAdminProfileFunc    func(ctx context.Context, p domain.AdminProfile) (*domain.AdminProfile, error)
	UpsertTravelerProfileFunc func(ctx context.Context, p domain.TravelerProfile) (*domain.TravelerProfile, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		CreateLoginLog []struct {
			Ctx context.Context
			L   domain.LoginLog
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByLogin []struct {
			Ctx   context.Context
			Login string
		}
		UpsertAdminProfile []struct {
			Ctx context.Context
			P   domain.AdminProfile
		}
		UpsertTravelerProfile []struct {
			Ctx context.Context
			P   domain.TravelerProfile
		}
	}
	lockCreate                sync.RWMutex
	lockCreateLoginLog        sync.RWMutex
	lockGetByEmail            sync.RWMutex
	lockGetByID               sync.RWMutex
	lockGetByLogin            sync.RWMutex
	lockUpsertAdminProfile    sync.RWMutex
	lockUpsertTravelerProfile sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) CreateLoginLog(ctx context.Context, l domain.LoginLog) error {
	if mock.CreateLoginLogFunc == nil {
		panic("userRepoMock.CreateLoginLogFunc: method is nil but userRepo.CreateLoginLog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.LoginLog
	}{Ctx: ctx, L: l}
	mock.lockCreateLoginLog.Lock()
	mock.calls.CreateLoginLog = append(mock.calls.CreateLoginLog, callInfo)
	mock.lockCreateLoginLog.Unlock()
	return mock.CreateLoginLogFunc(ctx, l)
}

func (mock *userRepoMock) CreateLoginLogCalls() []struct {
	Ctx context.Context
	L   domain.LoginLog
} {
	mock.lockCreateLoginLog.RLock()
	calls := mock.calls.CreateLoginLog
	mock.lockCreateLoginLog.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if mock.GetByLoginFunc == nil {
		panic("userRepoMock.GetByLoginFunc: method is nil but userRepo.GetByLogin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Login string
	}{Ctx: ctx, Login: login}
	mock.lockGetByLogin.Lock()
	mock.calls.GetByLogin = append(mock.calls.GetByLogin, callInfo)
	mock.lockGetByLogin.Unlock()
	return mock.GetByLoginFunc(ctx, login)
}

func (mock *userRepoMock) GetByLoginCalls() []struct {
	Ctx   context.Context
	Login string
} {
	mock.lockGetByLogin.RLock()
	calls := mock.calls.GetByLogin
	mock.lockGetByLogin.RUnlock()
	return calls
}

func (mock *userRepoMock) UpsertAdminProfile(ctx context.Context, p domain.AdminProfile) (*domain.AdminProfile, error) {
	if mock.UpsertAdminProfileFunc == nil {
		panic("userRepoMock.UpsertAdminProfileFunc: method is nil but userRepo.UpsertAdminProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.AdminProfile
	}{Ctx: ctx, P: p}
	mock.lockUpsertAdminProfile.Lock()
	mock.calls.UpsertAdminProfile = append(mock.calls.UpsertAdminProfile, callInfo)
	mock.lockUpsertAdminProfile.Unlock()
	return mock.UpsertAdminProfileFunc(ctx, p)
}

func (mock *userRepoMock) UpsertAdminProfileCalls() []struct {
	Ctx context.Context
	P   domain.AdminProfile
} {
	mock.lockUpsertAdminProfile.RLock()
	calls := mock.calls.UpsertAdminProfile
	mock.lockUpsertAdminProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) UpsertTravelerProfile(ctx context.Context, p domain.TravelerProfile) (*domain.TravelerProfile, error) {
	if mock.UpsertTravelerProfileFunc == nil {
		panic("userRepoMock.UpsertTravelerProfileFunc: method is nil but userRepo.UpsertTravelerProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.TravelerProfile
	}{Ctx: ctx, P: p}
	mock.lockUpsertTravelerProfile.Lock()
	mock.calls.UpsertTravelerProfile = append(mock.calls.UpsertTravelerProfile, callInfo)
	mock.lockUpsertTravelerProfile.Unlock()
	return mock.UpsertTravelerProfileFunc(ctx, p)
}

func (mock *userRepoMock) UpsertTravelerProfileCalls() []struct {
	Ctx context.Context
	P   domain.TravelerProfile
} {
	mock.lockUpsertTravelerProfile.RLock()
	calls := mock.calls.UpsertTravelerProfile
	mock.lockUpsertTravelerProfile.RUnlock()
	return calls
}
