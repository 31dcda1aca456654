package directory

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// PlaceQuery filters the place listing.
type PlaceQuery struct {
	AreaID   *uuid.UUID
	Area     string // case-insensitive substring of the area name
	Category domain.PlaceCategory
	TopRated bool
	Limit    int
}

// Validate validates the place query.
func (q PlaceQuery) Validate() error {
	if q.Category != "" && !q.Category.IsValid() {
		return domain.NewValidationError("category", "unknown place category")
	}
	if q.Limit < 0 {
		return domain.NewValidationError("limit", "must be >= 0")
	}
	return nil
}

// ServiceQuery filters the service listing.
type ServiceQuery struct {
	AreaID   *uuid.UUID
	Category domain.ServiceCategory
	Limit    int
}

// CreateServiceInput holds a new public service.
type CreateServiceInput struct {
	Name      string
	Category  domain.ServiceCategory
	AreaID    *uuid.UUID
	Address   string
	Phone     string
	OpenHours string
	Notes     string
}

func (i *CreateServiceInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = domain.ServiceCategory(strings.ToUpper(strings.TrimSpace(string(i.Category))))
}

// Validate validates the service input.
func (i CreateServiceInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown service category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateServiceInput is a partial service update. Nil fields are unchanged.
type UpdateServiceInput struct {
	Name      *string
	Category  *domain.ServiceCategory
	AreaID    *uuid.UUID
	Address   *string
	Phone     *string
	OpenHours *string
	Notes     *string
	IsActive  *bool
}

// Validate validates the service update.
func (i UpdateServiceInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown service category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateServiceInput) apply(s domain.Service) domain.Service {
	if i.Name != nil {
		s.Name = strings.TrimSpace(*i.Name)
	}
	if i.Category != nil {
		s.Category = *i.Category
	}
	if i.AreaID != nil {
		area := *i.AreaID
		s.AreaID = &area
	}
	if i.Address != nil {
		s.Address = *i.Address
	}
	if i.Phone != nil {
		s.Phone = *i.Phone
	}
	if i.OpenHours != nil {
		s.OpenHours = *i.OpenHours
	}
	if i.Notes != nil {
		s.Notes = *i.Notes
	}
	if i.IsActive != nil {
		s.IsActive = *i.IsActive
	}
	return s
}

// ImageUpload is a place image stream with its declared size and type.
type ImageUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}
