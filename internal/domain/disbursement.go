package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentStatus represents the repayment state of a single installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
	InstallmentStatusOverdue InstallmentStatus = "overdue"
)

// Installment is one row of a repayment schedule
type Installment struct {
	Number          int               `json:"installmentNumber"` // 1-based, contiguous
	DueDate         time.Time         `json:"dueDate"`
	PrincipalAmount decimal.Decimal   `json:"principalAmount"`
	InterestAmount  decimal.Decimal   `json:"interestAmount"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	Status          InstallmentStatus `json:"status"`
	PaidAt          *time.Time        `json:"paidAt,omitempty"`
}

// LoanDisbursement records the release of funds for an approved application.
// It is created once per application and owns the repayment schedule.
type LoanDisbursement struct {
	ID                 uuid.UUID       `json:"id"`
	DisbursementNumber string          `json:"disbursementNumber"`
	LoanApplicationID  uuid.UUID       `json:"loanApplicationId"`
	AccountID          uuid.UUID       `json:"accountId"`
	Amount             decimal.Decimal `json:"amount"`
	DisbursedTo        string          `json:"disbursedTo"`
	DisbursedBy        string          `json:"disbursedBy"`
	DisbursedAt        time.Time       `json:"disbursedAt"`
	RepaymentSchedule  []Installment   `json:"repaymentSchedule"`
	Version            int64           `json:"version"`
}

// Installment returns the schedule entry with the given number
func (d *LoanDisbursement) Installment(number int) (*Installment, error) {
	if number < 1 || number > len(d.RepaymentSchedule) {
		return nil, fmt.Errorf("%w: installment %d out of range 1..%d", ErrInvalidInput, number, len(d.RepaymentSchedule))
	}
	return &d.RepaymentSchedule[number-1], nil
}

// MarkInstallmentPaid settles one installment. Pending and overdue installments can be paid.
func (d *LoanDisbursement) MarkInstallmentPaid(number int, at time.Time) error {
	inst, err := d.Installment(number)
	if err != nil {
		return err
	}
	if inst.Status == InstallmentStatusPaid {
		return fmt.Errorf("%w: installment %d already paid", ErrInvalidTransition, number)
	}
	paidAt := at
	inst.Status = InstallmentStatusPaid
	inst.PaidAt = &paidAt
	return nil
}

// MarkOverdue flags every pending installment due strictly before asOf.
// Returns the number of installments that changed.
func (d *LoanDisbursement) MarkOverdue(asOf time.Time) int {
	changed := 0
	for i := range d.RepaymentSchedule {
		inst := &d.RepaymentSchedule[i]
		if inst.Status == InstallmentStatusPending && inst.DueDate.Before(asOf) {
			inst.Status = InstallmentStatusOverdue
			changed++
		}
	}
	return changed
}

// OutstandingPrincipal sums the principal of installments not yet paid
func (d *LoanDisbursement) OutstandingPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range d.RepaymentSchedule {
		if inst.Status != InstallmentStatusPaid {
			total = total.Add(inst.PrincipalAmount)
		}
	}
	return total
}
