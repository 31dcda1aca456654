package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/directory"
	"sync"
)

var _ directoryService = &directoryServiceMock{}

type directoryServiceMock struct {
	CreateServiceFunc    func(ctx context.Context, input directory.CreateServiceInput) (*domain.Service, error)
	GetAreaFunc          func(ctx context.Context, id uuid.UUID) (*domain.Area, error)
	GetPlaceFunc         func(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	ListAreasFunc        func(ctx context.Context) ([]domain.Area, error)
	ListPlacesFunc       func(ctx context.Context, q directory.PlaceQuery) ([]domain.Place, error)
	ListServicesFunc     func(ctx context.Context, q directory.ServiceQuery) ([]domain.Service, error)
	UpdateServiceFunc    func(ctx context.Context, id uuid.UUID, input directory.UpdateServiceInput) (*domain.Service, error)
	UploadPlaceImageFunc func(ctx context.Context, placeID uuid.UUID, upload directory.ImageUpload) (*domain.Place, error)

	calls struct {
		CreateService []struct {
			Ctx   context.Context
			Input directory.CreateServiceInput
		}
		GetArea []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetPlace []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListAreas []struct{ Ctx context.Context }
		ListPlaces []struct {
			Ctx context.Context
			Q   directory.PlaceQuery
		}
		ListServices []struct {
			Ctx context.Context
			Q   directory.ServiceQuery
		}
		UpdateService []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input directory.UpdateServiceInput
		}
		UploadPlaceImage []struct {
			Ctx     context.Context
			PlaceID uuid.UUID
			Upload  directory.ImageUpload
		}
	}
	lockCreateService    sync.RWMutex
	lockGetArea          sync.RWMutex
	lockGetPlace         sync.RWMutex
	lockListAreas        sync.RWMutex
	lockListPlaces       sync.RWMutex
	lockListServices     sync.RWMutex
	lockUpdateService    sync.RWMutex
	lockUploadPlaceImage sync.RWMutex
}

func (mock *directoryServiceMock) CreateService(ctx context.Context, input directory.CreateServiceInput) (*domain.Service, error) {
	if mock.CreateServiceFunc == nil {
		panic("directoryServiceMock.CreateServiceFunc: method is nil but directoryService.CreateService was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input directory.CreateServiceInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateService.Lock()
	mock.calls.CreateService = append(mock.calls.CreateService, callInfo)
	mock.lockCreateService.Unlock()
	return mock.CreateServiceFunc(ctx, input)
}

func (mock *directoryServiceMock) CreateServiceCalls() []struct {
	Ctx   context.Context
	Input directory.CreateServiceInput
} {
	mock.lockCreateService.RLock()
	calls := mock.calls.CreateService
	mock.lockCreateService.RUnlock()
	return calls
}

func (mock *directoryServiceMock) GetArea(ctx context.Context, id uuid.UUID) (*domain.Area, error) {
	if mock.GetAreaFunc == nil {
		panic("directoryServiceMock.GetAreaFunc: method is nil but directoryService.GetArea was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetArea.Lock()
	mock.calls.GetArea = append(mock.calls.GetArea, callInfo)
	mock.lockGetArea.Unlock()
	return mock.GetAreaFunc(ctx, id)
}

func (mock *directoryServiceMock) GetAreaCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetArea.RLock()
	calls := mock.calls.GetArea
	mock.lockGetArea.RUnlock()
	return calls
}

func (mock *directoryServiceMock) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	if mock.GetPlaceFunc == nil {
		panic("directoryServiceMock.GetPlaceFunc: method is nil but directoryService.GetPlace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPlace.Lock()
	mock.calls.GetPlace = append(mock.calls.GetPlace, callInfo)
	mock.lockGetPlace.Unlock()
	return mock.GetPlaceFunc(ctx, id)
}

func (mock *directoryServiceMock) GetPlaceCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPlace.RLock()
	calls := mock.calls.GetPlace
	mock.lockGetPlace.RUnlock()
	return calls
}

func (mock *directoryServiceMock) ListAreas(ctx context.Context) ([]domain.Area, error) {
	if mock.ListAreasFunc == nil {
		panic("directoryServiceMock.ListAreasFunc: method is nil but directoryService.ListAreas was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListAreas.Lock()
	mock.calls.ListAreas = append(mock.calls.ListAreas, callInfo)
	mock.lockListAreas.Unlock()
	return mock.ListAreasFunc(ctx)
}

func (mock *directoryServiceMock) ListAreasCalls() []struct{ Ctx context.Context } {
	mock.lockListAreas.RLock()
	calls := mock.calls.ListAreas
	mock.lockListAreas.RUnlock()
	return calls
}

func (mock *directoryServiceMock) ListPlaces(ctx context.Context, q directory.PlaceQuery) ([]domain.Place, error) {
	if mock.ListPlacesFunc == nil {
		panic("directoryServiceMock.ListPlacesFunc: method is nil but directoryService.ListPlaces was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   directory.PlaceQuery
	}{Ctx: ctx, Q: q}
	mock.lockListPlaces.Lock()
	mock.calls.ListPlaces = append(mock.calls.ListPlaces, callInfo)
	mock.lockListPlaces.Unlock()
	return mock.ListPlacesFunc(ctx, q)
}

func (mock *directoryServiceMock) ListPlacesCalls() []struct {
	Ctx context.Context
	Q   directory.PlaceQuery
} {
	mock.lockListPlaces.RLock()
	calls := mock.calls.ListPlaces
	mock.lockListPlaces.RUnlock()
	return calls
}

func (mock *directoryServiceMock) ListServices(ctx context.Context, q directory.ServiceQuery) ([]domain.Service, error) {
	if mock.ListServicesFunc == nil {
		panic("directoryServiceMock.ListServicesFunc: method is nil but directoryService.ListServices was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   directory.ServiceQuery
	}{Ctx: ctx, Q: q}
	mock.lockListServices.Lock()
	mock.calls.ListServices = append(mock.calls.ListServices, callInfo)
	mock.lockListServices.Unlock()
	return mock.ListServicesFunc(ctx, q)
}

func (mock *directoryServiceMock) ListServicesCalls() []struct {
	Ctx context.Context
	Q   directory.ServiceQuery
} {
	mock.lockListServices.RLock()
	calls := mock.calls.ListServices
	mock.lockListServices.RUnlock()
	return calls
}

func (mock *directoryServiceMock) UpdateService(ctx context.Context, id uuid.UUID, input directory.UpdateServiceInput) (*domain.Service, error) {
	if mock.UpdateServiceFunc == nil {
		panic("directoryServiceMock.UpdateServiceFunc: method is nil but directoryService.UpdateService was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input directory.UpdateServiceInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateService.Lock()
	mock.calls.UpdateService = append(mock.calls.UpdateService, callInfo)
	mock.lockUpdateService.Unlock()
	return mock.UpdateServiceFunc(ctx, id, input)
}

func (mock *directoryServiceMock) UpdateServiceCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input directory.UpdateServiceInput
} {
	mock.lockUpdateService.RLock()
	calls := mock.calls.UpdateService
	mock.lockUpdateService.RUnlock()
	return calls
}

func (mock *directoryServiceMock) UploadPlaceImage(ctx context.Context, placeID uuid.UUID, upload directory.ImageUpload) (*domain.Place, error) {
	if mock.UploadPlaceImageFunc == nil {
		panic("directoryServiceMock.UploadPlaceImageFunc: method is nil but directoryService.UploadPlaceImage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlaceID uuid.UUID
		Upload  directory.ImageUpload
	}{Ctx: ctx, PlaceID: placeID, Upload: upload}
	mock.lockUploadPlaceImage.Lock()
	mock.calls.UploadPlaceImage = append(mock.calls.UploadPlaceImage, callInfo)
	mock.lockUploadPlaceImage.Unlock()
	return mock.UploadPlaceImageFunc(ctx, placeID, upload)
}

func (mock *directoryServiceMock) UploadPlaceImageCalls() []struct {
	Ctx     context.Context
	PlaceID uuid.UUID
	Upload  directory.ImageUpload
} {
	mock.lockUploadPlaceImage.RLock()
	calls := mock.calls.UploadPlaceImage
	mock.lockUploadPlaceImage.RUnlock()
	return calls
}
