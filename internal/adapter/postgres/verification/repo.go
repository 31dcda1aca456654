// Package verification implements the VerificationRequest repository using PostgreSQL.
package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides verification request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new verification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, merchant_id, status, created_at, reviewed_at, reviewed_by, admin_note`

// A merchant owns a single row; resubmitting resets it to a fresh PENDING cycle.
const submitSQL = `
INSERT INTO verification_requests (id, merchant_id, status, created_at)
VALUES ($1, $2, 'PENDING', $3)
ON CONFLICT (merchant_id) DO UPDATE SET
    status = 'PENDING', created_at = EXCLUDED.created_at,
    reviewed_at = NULL, reviewed_by = NULL, admin_note = ''
RETURNING ` + columns

const decideSQL = `
UPDATE verification_requests
SET status = $2, reviewed_at = $3, reviewed_by = $4, admin_note = $5
WHERE id = $1 AND status = 'PENDING'`

type row struct {
	ID         uuid.UUID  `db:"id"`
	MerchantID uuid.UUID  `db:"merchant_id"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	ReviewedAt *time.Time `db:"reviewed_at"`
	ReviewedBy *uuid.UUID `db:"reviewed_by"`
	AdminNote  string     `db:"admin_note"`
}

func (r row) toDomain() domain.VerificationRequest {
	return domain.VerificationRequest{
		ID:         r.ID,
		MerchantID: r.MerchantID,
		Status:     domain.VerificationStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		ReviewedAt: r.ReviewedAt,
		ReviewedBy: r.ReviewedBy,
		AdminNote:  r.AdminNote,
	}
}

type listingRow struct {
	row
	MerchantUserID  uuid.UUID  `db:"merchant_user_id"`
	ShopName        string     `db:"shop_name"`
	BusinessType    string     `db:"business_type"`
	BusinessAreaID  *uuid.UUID `db:"business_area_id"`
	Address         string     `db:"address"`
	Phone           string     `db:"phone"`
	YearsInBusiness int        `db:"years_in_business"`
	IsVerified      bool       `db:"is_verified"`
}

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationRequest, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT `+columns+` FROM verification_requests WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "verification_request", id)
	}
	req := dst.toDomain()
	return &req, nil
}

// GetByMerchantID returns the request of a merchant.
func (r *Repo) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.VerificationRequest, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT `+columns+` FROM verification_requests WHERE merchant_id = $1`, merchantID)
	if err != nil {
		return nil, postgres.MapError(err, "verification_request", merchantID)
	}
	req := dst.toDomain()
	return &req, nil
}

// Submit creates the merchant's request or resets the existing one to PENDING.
func (r *Repo) Submit(ctx context.Context, merchantID uuid.UUID, now time.Time) (*domain.VerificationRequest, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, submitSQL, uuid.New(), merchantID, now)
	if err != nil {
		return nil, postgres.MapError(err, "verification_request", merchantID)
	}
	req := dst.toDomain()
	return &req, nil
}

// Decide records a verdict only while the request is still PENDING.
// A request that was decided concurrently yields domain.ErrConflict.
func (r *Repo) Decide(ctx context.Context, d domain.Decision) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, decideSQL,
		d.RequestID, string(d.Status), d.ReviewedAt, d.ReviewedBy, d.AdminNote)
	if err != nil {
		return postgres.MapError(err, "verification_request", d.RequestID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("verification_request %s: %w: no longer pending", d.RequestID, domain.ErrConflict)
	}
	return nil
}

// ListByArea returns the requests of merchants whose business area is areaID,
// newest first. A nil status lists every status.
func (r *Repo) ListByArea(ctx context.Context, areaID uuid.UUID, status *domain.VerificationStatus) ([]domain.VerificationListing, error) {
	q := postgres.Builder().
		Select(
			"r.id", "r.merchant_id", "r.status", "r.created_at", "r.reviewed_at", "r.reviewed_by", "r.admin_note",
			"m.user_id AS merchant_user_id", "m.shop_name", "m.business_type", "m.business_area_id",
			"m.address", "m.phone", "m.years_in_business", "m.is_verified",
		).
		From("verification_requests r").
		Join("merchant_profiles m ON m.id = r.merchant_id").
		Where(squirrel.Eq{"m.business_area_id": areaID}).
		OrderBy("r.created_at DESC", "r.id")
	if status != nil {
		q = q.Where(squirrel.Eq{"r.status": string(*status)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "verification_request", areaID)
	}

	var rows []listingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "verification_request", areaID)
	}

	out := make([]domain.VerificationListing, len(rows))
	for i, lr := range rows {
		out[i] = domain.VerificationListing{
			Request: lr.toDomain(),
			Merchant: domain.MerchantProfile{
				ID:              lr.MerchantID,
				UserID:          lr.MerchantUserID,
				ShopName:        lr.ShopName,
				BusinessType:    lr.BusinessType,
				BusinessAreaID:  lr.BusinessAreaID,
				Address:         lr.Address,
				Phone:           lr.Phone,
				YearsInBusiness: lr.YearsInBusiness,
				IsVerified:      lr.IsVerified,
			},
		}
	}
	return out, nil
}
