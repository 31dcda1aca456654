// Package merchant implements the MerchantProfile repository using PostgreSQL.
package merchant

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Repo provides merchant profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new merchant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, user_id, shop_name, business_type, business_area_id, address, phone,
opening_time, closing_time, years_in_business, description, is_verified, verified_by,
created_at, updated_at`

const createSQL = `
INSERT INTO merchant_profiles
    (id, user_id, shop_name, business_type, business_area_id, address, phone,
     opening_time, closing_time, years_in_business, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
RETURNING ` + columns

const updateSQL = `
UPDATE merchant_profiles SET
    shop_name = $2, business_type = $3, business_area_id = $4, address = $5, phone = $6,
    opening_time = $7, closing_time = $8, years_in_business = $9, description = $10,
    updated_at = now()
WHERE id = $1
RETURNING ` + columns

const setVerifiedSQL = `
UPDATE merchant_profiles SET is_verified = $2, verified_by = $3, updated_at = now()
WHERE id = $1`

type row struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	ShopName        string     `db:"shop_name"`
	BusinessType    string     `db:"business_type"`
	BusinessAreaID  *uuid.UUID `db:"business_area_id"`
	Address         string     `db:"address"`
	Phone           string     `db:"phone"`
	OpeningTime     *string    `db:"opening_time"`
	ClosingTime     *string    `db:"closing_time"`
	YearsInBusiness int        `db:"years_in_business"`
	Description     string     `db:"description"`
	IsVerified      bool       `db:"is_verified"`
	VerifiedBy      *uuid.UUID `db:"verified_by"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.MerchantProfile {
	return &domain.MerchantProfile{
		ID:              r.ID,
		UserID:          r.UserID,
		ShopName:        r.ShopName,
		BusinessType:    r.BusinessType,
		BusinessAreaID:  r.BusinessAreaID,
		Address:         r.Address,
		Phone:           r.Phone,
		OpeningTime:     r.OpeningTime,
		ClosingTime:     r.ClosingTime,
		YearsInBusiness: r.YearsInBusiness,
		Description:     r.Description,
		IsVerified:      r.IsVerified,
		VerifiedBy:      r.VerifiedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Create inserts an unverified merchant profile.
func (r *Repo) Create(ctx context.Context, m domain.MerchantProfile) (*domain.MerchantProfile, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, createSQL,
		m.ID, m.UserID, m.ShopName, m.BusinessType, m.BusinessAreaID, m.Address, m.Phone,
		m.OpeningTime, m.ClosingTime, m.YearsInBusiness, m.Description)
	if err != nil {
		return nil, postgres.MapError(err, "merchant", m.UserID)
	}
	return dst.toDomain(), nil
}

// GetByID returns a merchant profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantProfile, error) {
	return r.get(ctx, `SELECT `+columns+` FROM merchant_profiles WHERE id = $1`, id)
}

// GetByUserID returns the profile owned by the given MERCHANT account.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error) {
	return r.get(ctx, `SELECT `+columns+` FROM merchant_profiles WHERE user_id = $1`, userID)
}

// LockByUserID is GetByUserID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error) {
	return r.get(ctx, `SELECT `+columns+` FROM merchant_profiles WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *Repo) get(ctx context.Context, query string, key uuid.UUID) (*domain.MerchantProfile, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, key); err != nil {
		return nil, postgres.MapError(err, "merchant", key)
	}
	return dst.toDomain(), nil
}

// Update writes every editable field of m. Verification fields are not touched.
func (r *Repo) Update(ctx context.Context, m domain.MerchantProfile) (*domain.MerchantProfile, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, updateSQL,
		m.ID, m.ShopName, m.BusinessType, m.BusinessAreaID, m.Address, m.Phone,
		m.OpeningTime, m.ClosingTime, m.YearsInBusiness, m.Description)
	if err != nil {
		return nil, postgres.MapError(err, "merchant", m.ID)
	}
	return dst.toDomain(), nil
}

// SetVerified stores the verification flag and the approving admin.
func (r *Repo) SetVerified(ctx context.Context, id uuid.UUID, verified bool, verifiedBy *uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setVerifiedSQL, id, verified, verifiedBy)
	if err != nil {
		return postgres.MapError(err, "merchant", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "merchant", id)
	}
	return nil
}

// List returns merchants ordered by shop name.
func (r *Repo) List(ctx context.Context, f domain.MerchantFilter) ([]domain.MerchantProfile, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	q := postgres.Builder().
		Select(columns).
		From("merchant_profiles").
		OrderBy("shop_name", "id").
		Limit(uint64(limit))
	if f.AreaID != nil {
		q = q.Where(squirrel.Eq{"business_area_id": *f.AreaID})
	}
	if f.VerifiedOnly {
		q = q.Where(squirrel.Eq{"is_verified": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "merchant", "list")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "merchant", "list")
	}

	out := make([]domain.MerchantProfile, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, nil
}

// CountUnverified returns the number of merchants awaiting verification.
func (r *Repo) CountUnverified(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM merchant_profiles WHERE NOT is_verified`).
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "merchant", "count")
	}
	return n, nil
}
