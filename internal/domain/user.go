package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TravelerProfile holds the home area of a traveler account.
type TravelerProfile struct {
	UserID      uuid.UUID
	AreaID      *uuid.UUID
	YearsInArea int
}

// IsComplete reports whether the traveler has set an area and a positive
// number of years lived there.
func (p *TravelerProfile) IsComplete() bool {
	return p.AreaID != nil && p.YearsInArea > 0
}

// AdminProfile binds an admin account to at most one Area.
// Each Area has at most one admin.
type AdminProfile struct {
	UserID      uuid.UUID
	AreaID      *uuid.UUID
	YearsInArea int
}

// LoginLog is one successful authentication.
type LoginLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Method    LoginMethod
	IP        string
	UserAgent string
	CreatedAt time.Time
}

// AuthMethod links a user to an external identity provider account.
type AuthMethod struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Provider   LoginMethod
	ProviderID string
	CreatedAt  time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
