package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// Submit asks for verification of the caller's business. The request record
// is created on first use and reset to PENDING on later cycles.
// Returns ErrDuplicateRequest while a request is pending and
// ErrAlreadyVerified once the merchant is verified.
func (s *Service) Submit(ctx context.Context) (*domain.VerificationRequest, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleMerchant)
	if err != nil {
		return nil, err
	}

	var submitted *domain.VerificationRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 1: Lock the merchant row so concurrent submits serialize.
		merchant, err := s.merchants.LockByUserID(txCtx, caller.UserID)
		if err != nil {
			return fmt.Errorf("lock merchant: %w", err)
		}

		// Step 2: Derive the current state and check the transition.
		req, err := s.requests.GetByMerchantID(txCtx, merchant.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get request: %w", err)
		}
		if _, err := domain.NextVerificationState(domain.StateOf(merchant, req), domain.TriggerSubmit); err != nil {
			return err
		}

		// Step 3: Create or reset the request.
		submitted, err = s.requests.Submit(txCtx, merchant.ID, s.now())
		if err != nil {
			return fmt.Errorf("submit request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verification.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "verification requested",
		slog.String("merchant_id", submitted.MerchantID.String()),
		slog.String("request_id", submitted.ID.String()))
	return submitted, nil
}

// MyStatus returns the caller's merchant profile, its request if any and
// the derived workflow state.
func (s *Service) MyStatus(ctx context.Context) (*Status, error) {
	caller, err := domain.RequireRole(ctx, domain.UserRoleMerchant)
	if err != nil {
		return nil, err
	}

	merchant, err := s.merchants.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("verification.MyStatus: %w", err)
	}

	req, err := s.requests.GetByMerchantID(ctx, merchant.ID)
	if errors.Is(err, domain.ErrNotFound) {
		req, err = nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("verification.MyStatus: %w", err)
	}

	return &Status{Merchant: merchant, Request: req, State: domain.StateOf(merchant, req)}, nil
}
