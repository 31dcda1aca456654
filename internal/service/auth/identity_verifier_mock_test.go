package auth

import (
	"context"
	"github.com/heartmarshall/tringgo-backend/internal/auth"
	"sync"
)

var _ identityVerifier = &identityVerifierMock{}

type identityVerifierMock struct {
	VerifyIDTokenFunc func(ctx context.Context, idToken string) (*auth.OAuthIdentity, error)

	calls struct {
		VerifyIDToken []struct {
			Ctx     context.Context
			IDToken string
		}
	}
	lockVerifyIDToken sync.RWMutex
}

func (mock *identityVerifierMock) VerifyIDToken(ctx context.Context, idToken string) (*auth.OAuthIdentity, error) {
	if mock.VerifyIDTokenFunc == nil {
		panic("identityVerifierMock.VerifyIDTokenFunc: method is nil but identityVerifier.VerifyIDToken was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IDToken string
	}{Ctx: ctx, IDToken: idToken}
	mock.lockVerifyIDToken.Lock()
	mock.calls.VerifyIDToken = append(mock.calls.VerifyIDToken, callInfo)
	mock.lockVerifyIDToken.Unlock()
	return mock.VerifyIDTokenFunc(ctx, idToken)
}

func (mock *identityVerifierMock) VerifyIDTokenCalls() []struct {
	Ctx     context.Context
	IDToken string
} {
	mock.lockVerifyIDToken.RLock()
	calls := mock.calls.VerifyIDToken
	mock.lockVerifyIDToken.RUnlock()
	return calls
}
