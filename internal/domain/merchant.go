package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MerchantProfile is the business profile owned by a MERCHANT account.
type MerchantProfile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ShopName        string
	BusinessType    string
	BusinessAreaID  *uuid.UUID
	Address         string
	Phone           string
	OpeningTime     *string
	ClosingTime     *string
	YearsInBusiness int
	Description     string
	IsVerified      bool
	VerifiedBy      *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MerchantUpdate is a partial update. Nil fields are left unchanged.
type MerchantUpdate struct {
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

// ChangedIdentityFields lists the identity fields whose value u would change.
// Setting a field to its current value is not a change.
func (m *MerchantProfile) ChangedIdentityFields(u MerchantUpdate) []string {
	var changed []string
	check := func(field string, next *string, cur string) {
		if next != nil && *next != cur {
			changed = append(changed, field)
		}
	}
	check("shop_name", u.ShopName, m.ShopName)
	check("business_type", u.BusinessType, m.BusinessType)
	check("address", u.Address, m.Address)
	check("phone", u.Phone, m.Phone)
	check("description", u.Description, m.Description)
	return changed
}

// Apply returns a copy of m with u applied.
func (m MerchantProfile) Apply(u MerchantUpdate) MerchantProfile {
	if u.ShopName != nil {
		m.ShopName = *u.ShopName
	}
	if u.BusinessType != nil {
		m.BusinessType = *u.BusinessType
	}
	if u.BusinessAreaID != nil {
		area := *u.BusinessAreaID
		m.BusinessAreaID = &area
	}
	if u.Address != nil {
		m.Address = *u.Address
	}
	if u.Phone != nil {
		m.Phone = *u.Phone
	}
	if u.OpeningTime != nil {
		m.OpeningTime = normalizeClock(*u.OpeningTime)
	}
	if u.ClosingTime != nil {
		m.ClosingTime = normalizeClock(*u.ClosingTime)
	}
	if u.YearsInBusiness != nil {
		m.YearsInBusiness = *u.YearsInBusiness
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	return m
}

// normalizeClock maps an empty string to nil so a client can clear hours.
func normalizeClock(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// PlaceProjection is the part of a Place derived from its owning merchant.
type PlaceProjection struct {
	Name        string
	AreaID      *uuid.UUID
	Category    PlaceCategory
	OpeningTime *string
	ClosingTime *string
}

// Projection returns the directory fields owned by the merchant profile.
// A business type naming a known place category is used as the category,
// anything else lists the business as a SHOP.
func (m *MerchantProfile) Projection() PlaceProjection {
	category := PlaceCategoryShop
	if c := PlaceCategory(strings.ToUpper(strings.TrimSpace(m.BusinessType))); c.IsValid() {
		category = c
	}
	return PlaceProjection{
		Name:        m.ShopName,
		AreaID:      m.BusinessAreaID,
		Category:    category,
		OpeningTime: m.OpeningTime,
		ClosingTime: m.ClosingTime,
	}
}
