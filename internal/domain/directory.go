package domain

import (
	"time"

	"github.com/google/uuid"
)

// Area is a named region grouping merchants, places, services and one admin.
type Area struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Place is a public directory entry, optionally owned by a merchant.
type Place struct {
	ID              uuid.UUID
	Name            string
	Description     string
	AreaID          *uuid.UUID
	AreaName        string
	Category        PlaceCategory
	Address         string
	IsPopular       bool
	OpeningTime     *string
	ClosingTime     *string
	ImageURL        string
	AverageRating   float64
	ReviewCount     int
	OwnerMerchantID *uuid.UUID
	CreatedAt       time.Time
}

// Rating returns the mean review rating, or nil when the place has no reviews.
func (p *Place) Rating() *float64 {
	if p.ReviewCount == 0 {
		return nil
	}
	avg := p.AverageRating
	return &avg
}

// Service is a public service point (hospital, ATM, police station, ...).
type Service struct {
	ID        uuid.UUID
	Name      string
	Category  ServiceCategory
	AreaID    *uuid.UUID
	AreaName  string
	Address   string
	Phone     string
	OpenHours string
	Notes     string
	IsActive  bool
	CreatedAt time.Time
}

// PlaceOrder selects the ordering of a place query.
type PlaceOrder int

const (
	PlaceOrderName PlaceOrder = iota
	PlaceOrderRating
)

// PlaceFilter narrows a place query. Zero values mean "no constraint".
type PlaceFilter struct {
	AreaID           *uuid.UUID
	AreaNameContains string
	Category         PlaceCategory
	OrderBy          PlaceOrder
	Limit            int
}

// ServiceFilter narrows a service query. Zero values mean "no constraint".
type ServiceFilter struct {
	AreaID           *uuid.UUID
	AreaNameContains string
	Category         ServiceCategory
	ActiveOnly       bool
	Limit            int
}

// MerchantFilter narrows the merchant explore listing.
type MerchantFilter struct {
	AreaID       *uuid.UUID
	VerifiedOnly bool
	Limit        int
}

// Review is a traveler's 1..5 star rating of a place.
type Review struct {
	ID         uuid.UUID
	TravelerID uuid.UUID
	PlaceID    uuid.UUID
	PlaceName  string
	Rating     int
	Title      string
	Text       string
	CreatedAt  time.Time
}

// RatingSummary is the recomputed aggregate stored on a place.
type RatingSummary struct {
	Average float64
	Count   int
}

// SummarizeRatings computes the mean and count of ratings. An empty slice
// yields 0.0 and 0.
func SummarizeRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return RatingSummary{Average: float64(sum) / float64(len(ratings)), Count: len(ratings)}
}

// SavedPlace is a traveler's bookmark of a place.
type SavedPlace struct {
	TravelerID uuid.UUID
	Place      Place
	CreatedAt  time.Time
}

// TranscriptEntry is one line of the global chatbot transcript.
type TranscriptEntry struct {
	ID        int64
	Role      TranscriptRole
	Message   string
	CreatedAt time.Time
}
