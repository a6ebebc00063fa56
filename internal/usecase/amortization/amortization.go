package amortization

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

const (
	centPlaces = 2
	// growthPlaces bounds the digits carried through (1+r)^n
	growthPlaces = 30
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual percentage rate into a monthly fraction
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// ComputeEMI calculates the equal monthly installment for a fixed-payment loan
// Logic:
//   - monthlyRate = annualRatePercent / 100 / 12
//   - EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//   - Zero-rate loans pay P / n
//   - n is capped at domain.MaxTenureMonths
//
// The result is rounded to cents (half away from zero).
func ComputeEMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if err := validateTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return decimal.Zero, err
	}

	n := decimal.NewFromInt(int64(tenureMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(n).Round(centPlaces), nil
	}

	r := MonthlyRate(annualRatePercent)
	growth := compound(decimal.NewFromInt(1).Add(r), tenureMonths)
	emi := principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))

	return emi.Round(centPlaces), nil
}

// GenerateRepaymentSchedule builds the full amortized schedule for a loan
// Logic:
//  1. Compute the EMI once
//  2. For installments 1..n: interest = remaining * r, principal = EMI - interest,
//     remaining -= principal, due date = startDate + i months
//  3. The last installment's principal absorbs whatever remains, so the principal
//     portions always sum to the loan principal exactly
//
// Every installment starts in the pending status.
func GenerateRepaymentSchedule(principal, annualRatePercent decimal.Decimal, tenureMonths int, startDate time.Time) ([]domain.Installment, error) {
	emi, err := ComputeEMI(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}
	if !emi.IsPositive() {
		return nil, fmt.Errorf("%w: installment for %s over %d months rounds to zero", domain.ErrInvalidInput, principal, tenureMonths)
	}

	r := MonthlyRate(annualRatePercent)
	remaining := principal.Round(centPlaces)
	schedule := make([]domain.Installment, 0, tenureMonths)

	for i := 1; i <= tenureMonths; i++ {
		interestAmount := remaining.Mul(r).Round(centPlaces)
		principalAmount := emi.Sub(interestAmount)
		totalAmount := emi

		if i == tenureMonths {
			principalAmount = remaining
			totalAmount = principalAmount.Add(interestAmount)
		}
		remaining = remaining.Sub(principalAmount)

		schedule = append(schedule, domain.Installment{
			Number:          i,
			DueDate:         startDate.AddDate(0, i, 0),
			PrincipalAmount: principalAmount,
			InterestAmount:  interestAmount,
			TotalAmount:     totalAmount,
			Status:          domain.InstallmentStatusPending,
		})
	}

	return schedule, nil
}

// ScheduleSummary aggregates a repayment schedule
type ScheduleSummary struct {
	EMI            decimal.Decimal
	TotalPrincipal decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalPayable   decimal.Decimal
}

// Summarize totals the principal, interest and payments of a schedule
func Summarize(schedule []domain.Installment) ScheduleSummary {
	var summary ScheduleSummary
	if len(schedule) > 0 {
		summary.EMI = schedule[0].TotalAmount
	}
	for _, inst := range schedule {
		summary.TotalPrincipal = summary.TotalPrincipal.Add(inst.PrincipalAmount)
		summary.TotalInterest = summary.TotalInterest.Add(inst.InterestAmount)
		summary.TotalPayable = summary.TotalPayable.Add(inst.TotalAmount)
	}
	return summary
}

// compound raises base to the n-th power by squaring, rounding every product to growthPlaces
func compound(base decimal.Decimal, n int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(growthPlaces)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base).Round(growthPlaces)
		}
	}
	return result
}

func validateTerms(principal, annualRatePercent decimal.Decimal, tenureMonths int) error {
	if !principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive", domain.ErrInvalidInput)
	}
	if annualRatePercent.IsNegative() {
		return fmt.Errorf("%w: annual rate must be non-negative", domain.ErrInvalidInput)
	}
	if tenureMonths <= 0 {
		return fmt.Errorf("%w: tenure must be at least one month", domain.ErrInvalidInput)
	}
	if tenureMonths > domain.MaxTenureMonths {
		return fmt.Errorf("%w: tenure must not exceed %d months", domain.ErrInvalidInput, domain.MaxTenureMonths)
	}
	return nil
}
