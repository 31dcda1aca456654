// Package verification runs the merchant verification workflow: merchants
// submit a request and the admin of the merchant's business area approves
// or rejects it.
package verification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

type merchantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantProfile, error)
	LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.MerchantProfile, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool, verifiedBy *uuid.UUID) error
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationRequest, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.VerificationRequest, error)
	Submit(ctx context.Context, merchantID uuid.UUID, now time.Time) (*domain.VerificationRequest, error)
	Decide(ctx context.Context, d domain.Decision) error
	ListByArea(ctx context.Context, areaID uuid.UUID, status *domain.VerificationStatus) ([]domain.VerificationListing, error)
}

type adminRepo interface {
	GetAdminProfile(ctx context.Context, userID uuid.UUID) (*domain.AdminProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the verification workflow.
type Service struct {
	log       *slog.Logger
	merchants merchantRepo
	requests  requestRepo
	admins    adminRepo
	tx        txManager
	now       func() time.Time
}

// NewService creates a new verification service.
func NewService(logger *slog.Logger, merchants merchantRepo, requests requestRepo, admins adminRepo, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "verification"),
		merchants: merchants,
		requests:  requests,
		admins:    admins,
		tx:        tx,
		now:       time.Now,
	}
}
