package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the lifecycle stage of a loan application
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
	// LoanStatusDisbursed is never written by this service. Records carrying it are
	// treated as LoanStatusActive.
	LoanStatusDisbursed   LoanStatus = "disbursed"
	LoanStatusActive      LoanStatus = "active"
	LoanStatusClosed      LoanStatus = "closed"
	LoanStatusTransferred LoanStatus = "transferred"
)

// AllLoanStatuses lists every status in lifecycle order
var AllLoanStatuses = []LoanStatus{
	LoanStatusPending,
	LoanStatusApproved,
	LoanStatusRejected,
	LoanStatusDisbursed,
	LoanStatusActive,
	LoanStatusClosed,
	LoanStatusTransferred,
}

// IsValid reports whether s is a known status
func (s LoanStatus) IsValid() bool {
	for _, known := range AllLoanStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition can leave s
func (s LoanStatus) IsTerminal() bool {
	return s == LoanStatusRejected || s == LoanStatusClosed || s == LoanStatusTransferred
}

// LoanApplication represents a borrower's request against a loan product.
// It is the root entity: disbursements and adjustments reference it by ID.
type LoanApplication struct {
	ID                uuid.UUID       `json:"id"`
	ApplicationNumber string          `json:"applicationNumber"`
	AccountID         uuid.UUID       `json:"accountId"`
	LoanProductID     uuid.UUID       `json:"loanProductId"`
	BankID            string          `json:"bankId"`
	Amount            decimal.Decimal `json:"amount"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	TenureMonths      int             `json:"tenureMonths"`
	Status            LoanStatus      `json:"status"`
	AppliedBy         string          `json:"appliedBy"`
	AppliedAt         time.Time       `json:"appliedAt"`
	ReviewedBy        string          `json:"reviewedBy,omitempty"`
	ReviewedAt        *time.Time      `json:"reviewedAt,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	Version           int64           `json:"version"`
}

// Validate ensures the application adheres to domain rules
func (a *LoanApplication) Validate() error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("%w: loan amount must be positive", ErrInvalidInput)
	}
	if a.InterestRate.IsNegative() {
		return fmt.Errorf("%w: interest rate must be non-negative", ErrInvalidInput)
	}
	if a.TenureMonths <= 0 || a.TenureMonths > MaxTenureMonths {
		return fmt.Errorf("%w: tenure must be between 1 and %d months", ErrInvalidInput, MaxTenureMonths)
	}
	if !a.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, a.Status)
	}
	return nil
}

// IsActive reports whether the loan has been disbursed and is still running
func (a *LoanApplication) IsActive() bool {
	return a.Status == LoanStatusActive || a.Status == LoanStatusDisbursed
}

// Approve moves a pending application to approved and records the approver
func (a *LoanApplication) Approve(actorID string, at time.Time) error {
	return a.review(LoanStatusApproved, actorID, at)
}

// Reject moves a pending application to rejected and records the reviewer
func (a *LoanApplication) Reject(actorID string, at time.Time, remarks string) error {
	if err := a.review(LoanStatusRejected, actorID, at); err != nil {
		return err
	}
	if remarks != "" {
		a.Remarks = remarks
	}
	return nil
}

func (a *LoanApplication) review(to LoanStatus, actorID string, at time.Time) error {
	if a.Status != LoanStatusPending {
		return transitionError(a.Status, to)
	}
	a.Status = to
	a.ReviewedBy = actorID
	reviewedAt := at
	a.ReviewedAt = &reviewedAt
	return nil
}

// Activate moves an approved application to active on disbursement
func (a *LoanApplication) Activate() error {
	if a.Status != LoanStatusApproved {
		return transitionError(a.Status, LoanStatusActive)
	}
	a.Status = LoanStatusActive
	return nil
}

// Close moves a running loan to its closed terminal state
func (a *LoanApplication) Close() error {
	if !a.IsActive() {
		return transitionError(a.Status, LoanStatusClosed)
	}
	a.Status = LoanStatusClosed
	return nil
}

func transitionError(from, to LoanStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// NewReference builds a human-facing record number such as APP-482913-K3F9
func NewReference(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("%s-%06d-%s", prefix, now.UnixMilli()%1000000, suffix)
}
