package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"sync"
)

var _ placeRepo = &placeRepoMock{}

type placeRepoMock struct {
	UpsertForMerchantFunc func(ctx context.Context, merchantID uuid.UUID, proj domain.PlaceProjection) (uuid.UUID, error)

	calls struct {
		UpsertForMerchant []struct {
			Ctx        context.Context
			MerchantID uuid.UUID
			Proj       domain.PlaceProjection
		}
	}
	lockUpsertForMerchant sync.RWMutex
}

func (mock *placeRepoMock) UpsertForMerchant(ctx context.Context, merchantID uuid.UUID, proj domain.PlaceProjection) (uuid.UUID, error) {
	if mock.UpsertForMerchantFunc == nil {
		panic("placeRepoMock.UpsertForMerchantFunc: method is nil but placeRepo.UpsertForMerchant was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MerchantID uuid.UUID
		Proj       domain.PlaceProjection
	}{Ctx: ctx, MerchantID: merchantID, Proj: proj}
	mock.lockUpsertForMerchant.Lock()
	mock.calls.UpsertForMerchant = append(mock.calls.UpsertForMerchant, callInfo)
	mock.lockUpsertForMerchant.Unlock()
	return mock.UpsertForMerchantFunc(ctx, merchantID, proj)
}

func (mock *placeRepoMock) UpsertForMerchantCalls() []struct {
	Ctx        context.Context
	MerchantID uuid.UUID
	Proj       domain.PlaceProjection
} {
	mock.lockUpsertForMerchant.RLock()
	calls := mock.calls.UpsertForMerchant
	mock.lockUpsertForMerchant.RUnlock()
	return calls
}
