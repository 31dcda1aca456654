package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedArea creates an area with a unique name.
func SeedArea(t *testing.T, pool *pgxpool.Pool) domain.Area {
	t.Helper()

	area := domain.Area{
		ID:          uuid.New(),
		Name:        "Area " + uniqueSuffix(),
		Description: "seeded area",
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO areas (id, name, description) VALUES ($1, $2, $3)`,
		area.ID, area.Name, area.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArea: %v", err)
	}
	return area
}

// SeedUser creates a user with the given role. The password hash is a
// placeholder and does not verify against any password.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seeded",
		Role:         role,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedAdmin creates an ADMIN user bound to areaID (nil leaves the admin
// without an area).
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, areaID *uuid.UUID) domain.User {
	t.Helper()

	user := SeedUser(t, pool, domain.UserRoleAdmin)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO admin_profiles (user_id, area_id) VALUES ($1, $2)`,
		user.ID, areaID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}
	return user
}

// SeedMerchant creates a MERCHANT user and its unverified profile in areaID.
func SeedMerchant(t *testing.T, pool *pgxpool.Pool, areaID *uuid.UUID) domain.MerchantProfile {
	t.Helper()

	user := SeedUser(t, pool, domain.UserRoleMerchant)
	ts := now()
	m := domain.MerchantProfile{
		ID:             uuid.New(),
		UserID:         user.ID,
		ShopName:       "Shop " + uniqueSuffix(),
		BusinessType:   "CAFE",
		BusinessAreaID: areaID,
		Address:        "1 Main Road",
		Phone:          "+8801000000000",
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO merchant_profiles
		 (id, user_id, shop_name, business_type, business_area_id, address, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.UserID, m.ShopName, m.BusinessType, m.BusinessAreaID, m.Address, m.Phone, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMerchant: %v", err)
	}
	return m
}

// SeedPlace creates a place with the given name and category in areaID.
func SeedPlace(t *testing.T, pool *pgxpool.Pool, areaID *uuid.UUID, name string, category domain.PlaceCategory) domain.Place {
	t.Helper()

	p := domain.Place{
		ID:        uuid.New(),
		Name:      name,
		AreaID:    areaID,
		Category:  category,
		CreatedAt: now(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO places (id, name, area_id, category, created_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.AreaID, string(p.Category), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlace: %v", err)
	}
	return p
}

// SeedService creates an active service point with the given name and category in areaID.
func SeedService(t *testing.T, pool *pgxpool.Pool, areaID *uuid.UUID, name string, category domain.ServiceCategory) domain.Service {
	t.Helper()

	s := domain.Service{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		AreaID:    areaID,
		IsActive:  true,
		CreatedAt: now(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO services (id, name, category, area_id, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, string(s.Category), s.AreaID, s.IsActive, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedService: %v", err)
	}
	return s
}
