package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdjustmentType discriminates the kinds of post-disbursement corrections
type AdjustmentType string

const (
	AdjustmentTypePenaltyWaiver         AdjustmentType = "penalty_waiver"
	AdjustmentTypeOverpayment           AdjustmentType = "overpayment"
	AdjustmentTypePartialSettlement     AdjustmentType = "partial_settlement"
	AdjustmentTypeInterestRecalculation AdjustmentType = "interest_recalculation"
	AdjustmentTypeEarlyClosure          AdjustmentType = "early_closure"
)

// AdjustmentEffect describes what an adjustment does to the account and the loan
type AdjustmentEffect struct {
	ReducesBalance bool // balance delta is -amount
	ClosesLoan     bool // application is forced to closed
}

var adjustmentEffects = map[AdjustmentType]AdjustmentEffect{
	AdjustmentTypePenaltyWaiver:         {},
	AdjustmentTypeOverpayment:           {ReducesBalance: true},
	AdjustmentTypePartialSettlement:     {ReducesBalance: true},
	AdjustmentTypeInterestRecalculation: {},
	AdjustmentTypeEarlyClosure:          {ReducesBalance: true, ClosesLoan: true},
}

// Effect returns the policy for t
func (t AdjustmentType) Effect() (AdjustmentEffect, error) {
	effect, ok := adjustmentEffects[t]
	if !ok {
		return AdjustmentEffect{}, fmt.Errorf("%w: unknown adjustment type %q", ErrInvalidInput, t)
	}
	return effect, nil
}

// BalanceDelta returns the signed change an adjustment of amount applies to the account
func (e AdjustmentEffect) BalanceDelta(amount decimal.Decimal) decimal.Decimal {
	if !e.ReducesBalance {
		return decimal.Zero
	}
	return amount.Neg()
}

// LoanAdjustment is a point-in-time correction against an active loan
type LoanAdjustment struct {
	ID                uuid.UUID       `json:"id"`
	AdjustmentNumber  string          `json:"adjustmentNumber"`
	LoanApplicationID uuid.UUID       `json:"loanApplicationId"`
	AccountID         uuid.UUID       `json:"accountId"`
	Type              AdjustmentType  `json:"adjustmentType"`
	Amount            decimal.Decimal `json:"amount"`
	Reason            string          `json:"reason"`
	ApprovedBy        string          `json:"approvedBy"`
	AdjustedAt        time.Time       `json:"adjustedAt"`
}

// Validate ensures the adjustment adheres to domain rules
func (a *LoanAdjustment) Validate() error {
	if _, err := a.Type.Effect(); err != nil {
		return err
	}
	if !a.Amount.IsPositive() {
		return fmt.Errorf("%w: adjustment amount must be positive", ErrInvalidInput)
	}
	if a.Reason == "" {
		return fmt.Errorf("%w: adjustment reason cannot be empty", ErrInvalidInput)
	}
	return nil
}
