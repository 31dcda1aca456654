package auth

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// RegisterInput holds parameters for signup. Profile fields apply to the
// chosen role only: AreaID and YearsInArea to travelers and admins, the
// business fields to merchants.
type RegisterInput struct {
	Role     domain.UserRole
	Username string
	Email    string
	Password string

	AreaID      *uuid.UUID
	YearsInArea int

	ShopName        string
	BusinessType    string
	BusinessAreaID  *uuid.UUID
	YearsInBusiness int
	Description     string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be TRAVELER, MERCHANT or ADMIN"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if at := strings.IndexByte(i.Email, '@'); at <= 0 || at == len(i.Email)-1 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.YearsInArea < 0 {
		errs = append(errs, domain.FieldError{Field: "years_in_area", Message: "must be >= 0"})
	}
	if i.YearsInBusiness < 0 {
		errs = append(errs, domain.FieldError{Field: "years_in_business", Message: "must be >= 0"})
	}

	if i.Role == domain.UserRoleAdmin && i.AreaID == nil {
		errs = append(errs, domain.FieldError{Field: "area_id", Message: "required for admins"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds a username or email and a password.
type LoginInput struct {
	Login    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Login == "" {
		errs = append(errs, domain.FieldError{Field: "username_or_email", Message: "required"})
	} else if len(i.Login) > 254 {
		errs = append(errs, domain.FieldError{Field: "username_or_email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GoogleLoginInput holds a Google Sign-In ID token.
type GoogleLoginInput struct {
	IDToken string
}

// Validate validates the Google login input.
func (i GoogleLoginInput) Validate() error {
	if i.IDToken == "" {
		return domain.NewValidationError("id_token", "required")
	}
	if len(i.IDToken) > 4096 {
		return domain.NewValidationError("id_token", "too long")
	}
	return nil
}
