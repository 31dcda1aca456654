package merchant

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// UpdateProfileInput is a partial merchant profile update. Nil fields are
// left unchanged; an empty opening or closing time clears it.
type UpdateProfileInput struct {
	ShopName        *string
	BusinessType    *string
	BusinessAreaID  *uuid.UUID
	Address         *string
	Phone           *string
	OpeningTime     *string
	ClosingTime     *string
	YearsInBusiness *int
	Description     *string
}

func (i *UpdateProfileInput) normalize() {
	for _, p := range []*string{i.ShopName, i.BusinessType, i.Address, i.Phone, i.OpeningTime, i.ClosingTime} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Validate validates the merchant update.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.ShopName != nil {
		if *i.ShopName == "" {
			errs = append(errs, domain.FieldError{Field: "shop_name", Message: "required"})
		} else if len(*i.ShopName) > 200 {
			errs = append(errs, domain.FieldError{Field: "shop_name", Message: "too long"})
		}
	}
	if i.BusinessType != nil && len(*i.BusinessType) > 100 {
		errs = append(errs, domain.FieldError{Field: "business_type", Message: "too long"})
	}
	if i.Phone != nil && len(*i.Phone) > 30 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	if i.OpeningTime != nil && *i.OpeningTime != "" && !clockRe.MatchString(*i.OpeningTime) {
		errs = append(errs, domain.FieldError{Field: "opening_time", Message: "must be HH:MM"})
	}
	if i.ClosingTime != nil && *i.ClosingTime != "" && !clockRe.MatchString(*i.ClosingTime) {
		errs = append(errs, domain.FieldError{Field: "closing_time", Message: "must be HH:MM"})
	}
	if i.YearsInBusiness != nil && *i.YearsInBusiness < 0 {
		errs = append(errs, domain.FieldError{Field: "years_in_business", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) toUpdate() domain.MerchantUpdate {
	return domain.MerchantUpdate{
		ShopName:        i.ShopName,
		BusinessType:    i.BusinessType,
		BusinessAreaID:  i.BusinessAreaID,
		Address:         i.Address,
		Phone:           i.Phone,
		OpeningTime:     i.OpeningTime,
		ClosingTime:     i.ClosingTime,
		YearsInBusiness: i.YearsInBusiness,
		Description:     i.Description,
	}
}

// ExploreInput filters the public merchant listing.
type ExploreInput struct {
	AreaID       *uuid.UUID
	VerifiedOnly bool
	Limit        int
}
