package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// ListPlaces returns places matching q, by name or by rating.
func (s *Service) ListPlaces(ctx context.Context, q PlaceQuery) ([]domain.Place, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	f := domain.PlaceFilter{
		AreaID:           q.AreaID,
		AreaNameContains: q.Area,
		Category:         q.Category,
		Limit:            q.Limit,
	}
	if q.TopRated {
		f.OrderBy = domain.PlaceOrderRating
	}

	places, err := s.places.Query(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("directory.ListPlaces: %w", err)
	}
	return places, nil
}

// GetPlace returns one place.
func (s *Service) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory.GetPlace: %w", err)
	}
	return p, nil
}

// UploadPlaceImage stores an image for a place and records its URL. Only
// the merchant owning the place or an admin may upload.
func (s *Service) UploadPlaceImage(ctx context.Context, placeID uuid.UUID, upload ImageUpload) (*domain.Place, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleMerchant, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	// Step 1: Validate the upload
	if s.images == nil {
		return nil, domain.NewValidationError("image", "image uploads are not configured")
	}
	ext, ok := imageExtensions[upload.ContentType]
	if !ok {
		return nil, domain.NewValidationError("image", "must be a JPEG, PNG or WebP image")
	}
	if upload.Size <= 0 {
		return nil, domain.NewValidationError("image", "empty file")
	}
	if s.maxUpload > 0 && upload.Size > s.maxUpload {
		return nil, domain.NewValidationError("image", fmt.Sprintf("must be at most %d bytes", s.maxUpload))
	}

	// Step 2: Check ownership
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("directory.UploadPlaceImage: %w", err)
	}
	if caller.Role == domain.UserRoleMerchant {
		if err := s.checkOwner(ctx, caller, place); err != nil {
			return nil, err
		}
	}

	// Step 3: Store and link
	key := path.Join("places", placeID.String(), uuid.NewString()+ext)
	url, err := s.images.Put(ctx, key, upload.Body, upload.Size, upload.ContentType)
	if err != nil {
		return nil, fmt.Errorf("directory.UploadPlaceImage store: %w", err)
	}
	if err := s.places.SetImageURL(ctx, placeID, url); err != nil {
		return nil, fmt.Errorf("directory.UploadPlaceImage: %w", err)
	}
	place.ImageURL = url

	s.log.InfoContext(ctx, "place image uploaded",
		slog.String("place_id", placeID.String()),
		slog.String("user_id", caller.UserID.String()),
		slog.Int64("size", upload.Size))
	return place, nil
}

func (s *Service) checkOwner(ctx context.Context, caller domain.Caller, place *domain.Place) error {
	m, err := s.merchants.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("directory.UploadPlaceImage get merchant: %w", err)
	}
	if place.OwnerMerchantID == nil || *place.OwnerMerchantID != m.ID {
		return fmt.Errorf("%w: place is owned by another merchant", domain.ErrForbidden)
	}
	return nil
}
