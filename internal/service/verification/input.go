package verification

import (
	"strings"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// DecideInput is an admin's verdict on a pending request.
type DecideInput struct {
	Action domain.DecisionAction
	Note   string
}

// Validate validates the decision input.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError

	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be APPROVE or REJECT"})
	}
	if len(i.Note) > 2000 {
		errs = append(errs, domain.FieldError{Field: "admin_note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i *DecideInput) normalize() {
	i.Action = domain.DecisionAction(strings.ToUpper(strings.TrimSpace(string(i.Action))))
	i.Note = strings.TrimSpace(i.Note)
}

// Status is a merchant's view of its own verification.
type Status struct {
	Merchant *domain.MerchantProfile
	Request  *domain.VerificationRequest
	State    domain.VerificationState
}
