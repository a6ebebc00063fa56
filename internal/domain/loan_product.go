package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxTenureMonths is the longest repayment term a product or schedule may have
const MaxTenureMonths = 600

// LoanProduct represents a loan offering that applications are raised against
type LoanProduct struct {
	ID           uuid.UUID       `json:"id"`
	ProductCode  string          `json:"productCode"`
	Name         string          `json:"name"`
	CategoryName string          `json:"loanCategoryName"`
	BankID       string          `json:"bankId"`
	InterestRate decimal.Decimal `json:"interestRate"` // annual, in percent
	MinAmount    decimal.Decimal `json:"minAmount"`
	MaxAmount    decimal.Decimal `json:"maxAmount"`
	TenureMonths int             `json:"tenureMonths"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Validate ensures the product adheres to domain rules
func (p *LoanProduct) Validate() error {
	if p.ProductCode == "" || p.Name == "" {
		return fmt.Errorf("%w: product code and name are required", ErrInvalidInput)
	}
	if p.InterestRate.IsNegative() {
		return fmt.Errorf("%w: interest rate must be non-negative", ErrInvalidInput)
	}
	if p.TenureMonths <= 0 || p.TenureMonths > MaxTenureMonths {
		return fmt.Errorf("%w: tenure must be between 1 and %d months", ErrInvalidInput, MaxTenureMonths)
	}
	if !p.MinAmount.IsPositive() || p.MaxAmount.LessThan(p.MinAmount) {
		return fmt.Errorf("%w: amount range must satisfy 0 < min <= max", ErrInvalidInput)
	}
	return nil
}

// AllowsAmount reports whether amount falls within [MinAmount, MaxAmount]
func (p *LoanProduct) AllowsAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinAmount) && amount.LessThanOrEqual(p.MaxAmount)
}
