// Package directory serves the read-mostly catalog of areas, places and
// public services, plus the admin and merchant writes against it.
package directory

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/tringgo-backend/internal/config"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type areaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Area, error)
	List(ctx context.Context) ([]domain.Area, error)
}

type placeRepo interface {
	Query(ctx context.Context, f domain.PlaceFilter) ([]domain.Place, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
}

type serviceRepo interface {
	Query(ctx context.Context, f domain.ServiceFilter) ([]domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	Create(ctx context.Context, s domain.Service) (*domain.Service, error)
	Update(ctx context.Context, s domain.Service) (*domain.Service, error)
}

type merchantRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
}

type imageStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// Service implements directory operations.
type Service struct {
	log       *slog.Logger
	areas     areaRepo
	places    placeRepo
	services  serviceRepo
	merchants merchantRepo
	images    imageStore
	areaCache *cache.Cache
	maxUpload int64
}

// NewService creates a new directory service. images may be nil, in which
// case uploads are rejected.
func NewService(
	logger *slog.Logger,
	areas areaRepo,
	places placeRepo,
	services serviceRepo,
	merchants merchantRepo,
	images imageStore,
	cacheCfg config.CacheConfig,
	maxUpload int64,
) *Service {
	return &Service{
		log:       logger.With("service", "directory"),
		areas:     areas,
		places:    places,
		services:  services,
		merchants: merchants,
		images:    images,
		areaCache: cache.New(cacheCfg.AreaTTL, cacheCfg.CleanupInterval),
		maxUpload: maxUpload,
	}
}
