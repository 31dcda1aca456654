package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// ListServices returns active services, optionally by area and category.
func (s *Service) ListServices(ctx context.Context, q ServiceQuery) ([]domain.Service, error) {
	if q.Category != "" && !q.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown service category")
	}

	services, err := s.services.Query(ctx, domain.ServiceFilter{
		AreaID:     q.AreaID,
		Category:   q.Category,
		ActiveOnly: true,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("directory.ListServices: %w", err)
	}
	return services, nil
}

// CreateService adds a public service. Admin only.
func (s *Service) CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkArea(ctx, input.AreaID); err != nil {
		return nil, err
	}

	created, err := s.services.Create(ctx, domain.Service{
		ID:        uuid.New(),
		Name:      input.Name,
		Category:  input.Category,
		AreaID:    input.AreaID,
		Address:   input.Address,
		Phone:     input.Phone,
		OpenHours: input.OpenHours,
		Notes:     input.Notes,
		IsActive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("directory.CreateService: %w", err)
	}

	s.log.InfoContext(ctx, "service created",
		slog.String("service_id", created.ID.String()),
		slog.String("admin_id", caller.UserID.String()))
	return created, nil
}

// UpdateService applies a partial update to a service. Admin only.
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*domain.Service, error) {
	if _, err := domain.RequireRole(ctx, domain.UserRoleAdmin); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkArea(ctx, input.AreaID); err != nil {
		return nil, err
	}

	current, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory.UpdateService: %w", err)
	}

	updated, err := s.services.Update(ctx, input.apply(*current))
	if err != nil {
		return nil, fmt.Errorf("directory.UpdateService: %w", err)
	}
	return updated, nil
}

func (s *Service) checkArea(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.GetArea(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("area_id", "Invalid area_id.")
		}
		return err
	}
	return nil
}
