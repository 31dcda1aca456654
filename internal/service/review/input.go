package review

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const (
	maxTitleLength = 200
	maxTextLength  = 5000
)

// CreateInput holds a new review.
type CreateInput struct {
	PlaceID uuid.UUID
	Rating  int
	Title   string
	Text    string
}

// Validate validates the review input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.PlaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "place_id", Message: "required"})
	}
	errs = append(errs, checkRating(i.Rating)...)
	errs = append(errs, checkText(i.Title, i.Text)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput is a partial review update.
type UpdateInput struct {
	Rating *int
	Title  *string
	Text   *string
}

// Validate validates the review update.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Rating != nil {
		errs = append(errs, checkRating(*i.Rating)...)
	}
	var title, text string
	if i.Title != nil {
		title = *i.Title
	}
	if i.Text != nil {
		text = *i.Text
	}
	errs = append(errs, checkText(title, text)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) apply(rv domain.Review) domain.Review {
	if i.Rating != nil {
		rv.Rating = *i.Rating
	}
	if i.Title != nil {
		rv.Title = strings.TrimSpace(*i.Title)
	}
	if i.Text != nil {
		rv.Text = strings.TrimSpace(*i.Text)
	}
	return rv
}

func checkRating(r int) []domain.FieldError {
	if r < 1 || r > 5 {
		return []domain.FieldError{{Field: "rating", Message: "must be between 1 and 5"}}
	}
	return nil
}

func checkText(title, text string) []domain.FieldError {
	var errs []domain.FieldError
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len(text) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	return errs
}
