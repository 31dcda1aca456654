// Package user implements the User repository using PostgreSQL: accounts,
// traveler and admin profiles, and the login log.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `id, username, email, password_hash, role, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByLoginSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1 OR lower(email) = lower($1)
ORDER BY (username = $1) DESC
LIMIT 1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

const upsertTravelerSQL = `
INSERT INTO traveler_profiles (user_id, area_id, years_in_area)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET area_id = EXCLUDED.area_id, years_in_area = EXCLUDED.years_in_area
RETURNING user_id, area_id, years_in_area`

const upsertAdminSQL = `
INSERT INTO admin_profiles (user_id, area_id, years_in_area)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET area_id = EXCLUDED.area_id, years_in_area = EXCLUDED.years_in_area
RETURNING user_id, area_id, years_in_area`

const createLoginLogSQL = `
INSERT INTO login_logs (id, user_id, method, ip, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listLoginLogsSQL = `
SELECT id, user_id, method, ip, user_agent, created_at
FROM login_logs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type profileRow struct {
	UserID      uuid.UUID  `db:"user_id"`
	AreaID      *uuid.UUID `db:"area_id"`
	YearsInArea int        `db:"years_in_area"`
}

type loginLogRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Method    string    `db:"method"`
	IP        string    `db:"ip"`
	UserAgent string    `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row. A taken username
// or email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	var dst userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, createUserSQL,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	out := dst.toDomain()
	return &out, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var dst userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	out := dst.toDomain()
	return &out, nil
}

// GetByLogin returns a user by username or (case-insensitive) email.
// An exact username match wins over an email match.
func (r *Repo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	var dst userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getByLoginSQL, login); err != nil {
		return nil, postgres.MapError(err, "user", login)
	}
	out := dst.toDomain()
	return &out, nil
}

// GetByEmail returns a user by case-insensitive email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dst userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getByEmailSQL, email); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	out := dst.toDomain()
	return &out, nil
}

// Count returns the number of users, optionally restricted to one role.
func (r *Repo) Count(ctx context.Context, role *domain.UserRole) (int, error) {
	q := postgres.Builder().Select("count(*)").From("users")
	if role != nil {
		q = q.Where("role = ?", string(*role))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

// GetTravelerProfile returns the traveler profile of userID.
func (r *Repo) GetTravelerProfile(ctx context.Context, userID uuid.UUID) (*domain.TravelerProfile, error) {
	var dst profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT user_id, area_id, years_in_area FROM traveler_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "traveler_profile", userID)
	}
	return &domain.TravelerProfile{UserID: dst.UserID, AreaID: dst.AreaID, YearsInArea: dst.YearsInArea}, nil
}

// UpsertTravelerProfile creates or replaces the traveler profile.
func (r *Repo) UpsertTravelerProfile(ctx context.Context, p domain.TravelerProfile) (*domain.TravelerProfile, error) {
	var dst profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, upsertTravelerSQL,
		p.UserID, p.AreaID, p.YearsInArea)
	if err != nil {
		return nil, postgres.MapError(err, "traveler_profile", p.UserID)
	}
	return &domain.TravelerProfile{UserID: dst.UserID, AreaID: dst.AreaID, YearsInArea: dst.YearsInArea}, nil
}

// GetAdminProfile returns the admin profile of userID.
func (r *Repo) GetAdminProfile(ctx context.Context, userID uuid.UUID) (*domain.AdminProfile, error) {
	var dst profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst,
		`SELECT user_id, area_id, years_in_area FROM admin_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "admin_profile", userID)
	}
	return &domain.AdminProfile{UserID: dst.UserID, AreaID: dst.AreaID, YearsInArea: dst.YearsInArea}, nil
}

// UpsertAdminProfile creates or replaces the admin profile. An area that
// already has another admin yields domain.ErrAlreadyExists.
func (r *Repo) UpsertAdminProfile(ctx context.Context, p domain.AdminProfile) (*domain.AdminProfile, error) {
	var dst profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, upsertAdminSQL,
		p.UserID, p.AreaID, p.YearsInArea)
	if err != nil {
		return nil, postgres.MapError(err, "admin_profile", p.UserID)
	}
	return &domain.AdminProfile{UserID: dst.UserID, AreaID: dst.AreaID, YearsInArea: dst.YearsInArea}, nil
}

// ---------------------------------------------------------------------------
// Login log
// ---------------------------------------------------------------------------

// CreateLoginLog records a successful authentication.
func (r *Repo) CreateLoginLog(ctx context.Context, l domain.LoginLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createLoginLogSQL,
		l.ID, l.UserID, string(l.Method), l.IP, l.UserAgent, l.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "login_log", l.UserID)
	}
	return nil
}

// ListLoginLogs returns the newest login entries of userID.
func (r *Repo) ListLoginLogs(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LoginLog, error) {
	var rows []loginLogRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listLoginLogsSQL, userID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "login_log", userID)
	}

	out := make([]domain.LoginLog, len(rows))
	for i, row := range rows {
		out[i] = domain.LoginLog{
			ID:        row.ID,
			UserID:    row.UserID,
			Method:    domain.LoginMethod(row.Method),
			IP:        row.IP,
			UserAgent: row.UserAgent,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}
