package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Decide approves or rejects a pending request. Only the admin of the
// merchant's business area may decide. The request status is changed with a
// compare-and-swap on PENDING, so of two concurrent decisions one gets
// ErrConflict. The merchant's verified flag is updated in the same
// transaction.
func (s *Service) Decide(ctx context.Context, requestID uuid.UUID, input DecideInput) (*domain.VerificationRequest, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Resolve the admin's area.
	areaID, err := s.adminArea(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	var decided domain.VerificationRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 2: Load the request and its merchant.
		req, err := s.requests.GetByID(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		merchant, err := s.merchants.GetByID(txCtx, req.MerchantID)
		if err != nil {
			return fmt.Errorf("get merchant: %w", err)
		}

		// Step 3: Area guard.
		if merchant.BusinessAreaID == nil || *merchant.BusinessAreaID != areaID {
			return domain.ErrForbiddenArea
		}

		// Step 4: Check the transition.
		if _, err := domain.NextVerificationState(domain.StateOf(merchant, req), domain.TriggerFor(input.Action)); err != nil {
			return err
		}

		// Step 5: Apply.
		d := domain.NewDecision(req, input.Action, caller.UserID, input.Note, s.now())
		if err := s.requests.Decide(txCtx, d); err != nil {
			return fmt.Errorf("decide request: %w", err)
		}
		if err := s.merchants.SetVerified(txCtx, merchant.ID, d.IsVerified, d.VerifiedBy); err != nil {
			return fmt.Errorf("update merchant: %w", err)
		}

		decided = *req
		decided.Status = d.Status
		decided.ReviewedAt = &d.ReviewedAt
		decided.ReviewedBy = &d.ReviewedBy
		decided.AdminNote = d.AdminNote
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verification.Decide: %w", err)
	}

	s.log.InfoContext(ctx, "verification decided",
		slog.String("request_id", requestID.String()),
		slog.String("status", decided.Status.String()),
		slog.String("admin_id", caller.UserID.String()))
	return &decided, nil
}

// ListForAdmin lists requests for merchants in the caller's area, newest
// first. A nil status lists every status.
func (s *Service) ListForAdmin(ctx context.Context, status *domain.VerificationStatus) ([]domain.VerificationListing, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be PENDING, APPROVED or REJECTED")
	}

	areaID, err := s.adminArea(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	listings, err := s.requests.ListByArea(ctx, areaID, status)
	if err != nil {
		return nil, fmt.Errorf("verification.ListForAdmin: %w", err)
	}
	return listings, nil
}

// adminArea returns the area assigned to the admin, or ErrAdminNotConfigured.
func (s *Service) adminArea(ctx context.Context, adminID uuid.UUID) (uuid.UUID, error) {
	profile, err := s.admins.GetAdminProfile(ctx, adminID)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, domain.ErrAdminNotConfigured
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("get admin profile: %w", err)
	}
	if profile.AreaID == nil {
		return uuid.Nil, domain.ErrAdminNotConfigured
	}
	return *profile.AreaID, nil
}
