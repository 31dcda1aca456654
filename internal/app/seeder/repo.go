// Package seeder loads a YAML directory dataset (areas, places and local
// services) into the database.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// AreaRepo is implemented by area.Repo.
type AreaRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Area, error)
	Create(ctx context.Context, a domain.Area, upsert bool) (*domain.Area, error)
}

// PlaceRepo is implemented by place.Repo.
type PlaceRepo interface {
	Query(ctx context.Context, f domain.PlaceFilter) ([]domain.Place, error)
	Create(ctx context.Context, p domain.Place) (uuid.UUID, error)
}

// ServiceRepo is implemented by localservice.Repo.
type ServiceRepo interface {
	Query(ctx context.Context, f domain.ServiceFilter) ([]domain.Service, error)
	Create(ctx context.Context, s domain.Service) (*domain.Service, error)
}
