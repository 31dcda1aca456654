package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// ListAreas returns all areas ordered by name.
func (s *Service) ListAreas(ctx context.Context) ([]domain.Area, error) {
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.ListAreas: %w", err)
	}
	return areas, nil
}

// GetArea returns one area. Hits are served from an in-process cache.
func (s *Service) GetArea(ctx context.Context, id uuid.UUID) (*domain.Area, error) {
	key := id.String()
	if cached, found := s.areaCache.Get(key); found {
		if area, ok := cached.(domain.Area); ok {
			return &area, nil
		}
	}

	area, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory.GetArea: %w", err)
	}
	s.areaCache.Set(key, *area, cache.DefaultExpiration)
	return area, nil
}
