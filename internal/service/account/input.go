package account

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// UpdateTravelerInput is a partial traveler profile update.
type UpdateTravelerInput struct {
	AreaID      *uuid.UUID
	YearsInArea *int
}

// Validate validates the traveler profile update.
func (i UpdateTravelerInput) Validate() error {
	if i.YearsInArea != nil && *i.YearsInArea < 0 {
		return domain.NewValidationError("years_in_area", "must be >= 0")
	}
	if i.YearsInArea != nil && *i.YearsInArea > 150 {
		return domain.NewValidationError("years_in_area", "too large")
	}
	return nil
}

// Me is the caller's account with the profile that matches its role.
type Me struct {
	User     *domain.User
	Traveler *domain.TravelerProfile
	Admin    *domain.AdminProfile
	Merchant *domain.MerchantProfile
}
