package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VerificationState is the trust state of a merchant.
type VerificationState string

const (
	VerificationUnverified VerificationState = "UNVERIFIED"
	VerificationPending    VerificationState = "PENDING"
	VerificationVerified   VerificationState = "VERIFIED"
)

func (s VerificationState) String() string { return string(s) }

// VerificationTrigger is an event that moves a merchant between states.
type VerificationTrigger string

const (
	TriggerSubmit  VerificationTrigger = "SUBMIT"
	TriggerApprove VerificationTrigger = "APPROVE"
	TriggerReject  VerificationTrigger = "REJECT"
)

type verificationEdge struct {
	from    VerificationState
	trigger VerificationTrigger
}

type verificationOutcome struct {
	to  VerificationState
	err error
}

// verificationTransitions is the complete transition table. Pairs that are
// not listed are rejected with ErrConflict.
var verificationTransitions = map[verificationEdge]verificationOutcome{
	{VerificationUnverified, TriggerSubmit}: {to: VerificationPending},
	{VerificationPending, TriggerSubmit}:    {err: ErrDuplicateRequest},
	{VerificationVerified, TriggerSubmit}:   {err: ErrAlreadyVerified},
	{VerificationPending, TriggerApprove}:   {to: VerificationVerified},
	{VerificationPending, TriggerReject}:    {to: VerificationUnverified},
}

// NextVerificationState returns the state reached by firing trigger in from.
func NextVerificationState(from VerificationState, trigger VerificationTrigger) (VerificationState, error) {
	out, ok := verificationTransitions[verificationEdge{from, trigger}]
	if !ok {
		return from, fmt.Errorf("%w: cannot %s from %s", ErrConflict, trigger, from)
	}
	if out.err != nil {
		return from, out.err
	}
	return out.to, nil
}

// TriggerFor maps an admin decision onto its state machine trigger.
func TriggerFor(action DecisionAction) VerificationTrigger {
	if action == DecisionApprove {
		return TriggerApprove
	}
	return TriggerReject
}

// VerificationRequest tracks a merchant's trust review. A merchant has at
// most one request row, reused across submit cycles.
type VerificationRequest struct {
	ID         uuid.UUID
	MerchantID uuid.UUID
	Status     VerificationStatus
	CreatedAt  time.Time
	ReviewedAt *time.Time
	ReviewedBy *uuid.UUID
	AdminNote  string
}

// StateOf derives the workflow state from the stored merchant and its
// request (nil when the merchant never submitted one).
func StateOf(m *MerchantProfile, req *VerificationRequest) VerificationState {
	if m.IsVerified {
		return VerificationVerified
	}
	if req != nil && req.Status == VerificationStatusPending {
		return VerificationPending
	}
	return VerificationUnverified
}

// Reset prepares a reused request for a new review cycle.
func (r *VerificationRequest) Reset() {
	r.Status = VerificationStatusPending
	r.ReviewedAt = nil
	r.ReviewedBy = nil
	r.AdminNote = ""
}

// Decision is the full set of writes produced by an admin verdict.
type Decision struct {
	RequestID  uuid.UUID
	MerchantID uuid.UUID
	Status     VerificationStatus
	IsVerified bool
	VerifiedBy *uuid.UUID
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
	AdminNote  string
}

// NewDecision builds the writes for action taken by adminID at now.
func NewDecision(req *VerificationRequest, action DecisionAction, adminID uuid.UUID, note string, now time.Time) Decision {
	d := Decision{
		RequestID:  req.ID,
		MerchantID: req.MerchantID,
		ReviewedBy: adminID,
		ReviewedAt: now,
		AdminNote:  note,
	}
	if action == DecisionApprove {
		d.Status = VerificationStatusApproved
		d.IsVerified = true
		admin := adminID
		d.VerifiedBy = &admin
	} else {
		d.Status = VerificationStatusRejected
	}
	return d
}

// VerificationListing is a request joined with the merchant under review.
type VerificationListing struct {
	Request  VerificationRequest
	Merchant MerchantProfile
}
