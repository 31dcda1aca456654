package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Workflow errors. Each one matches its parent sentinel with errors.Is so
// transports only need to know the six base kinds.
var (
	ErrForbiddenRole      = fmt.Errorf("%w: role not allowed", ErrForbidden)
	ErrForbiddenArea      = fmt.Errorf("%w: merchant is outside your area", ErrForbidden)
	ErrAdminNotConfigured = fmt.Errorf("%w: admin has no assigned area", ErrForbidden)
	ErrAlreadyVerified    = fmt.Errorf("%w: this business is already verified", ErrConflict)
	ErrDuplicateRequest   = fmt.Errorf("%w: verification request already pending", ErrConflict)
	ErrIdentityLocked     = fmt.Errorf("%w: identity fields are locked after verification", ErrConflict)
	ErrAreaHasAdmin       = fmt.Errorf("%w: this area already has an admin", ErrAlreadyExists)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
