package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a borrower account in the domain layer
// Balance is signed: disbursements increase it, settlements and closures decrease it
type Account struct {
	ID            uuid.UUID       `json:"id"`
	BorrowerName  string          `json:"borrowerName"`
	AccountNumber string          `json:"accountNumber"`
	BankID        string          `json:"bankId"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Balance       decimal.Decimal `json:"balance"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.BorrowerName == "" {
		return fmt.Errorf("%w: borrower name cannot be empty", ErrInvalidInput)
	}
	if a.AccountNumber == "" {
		return fmt.Errorf("%w: account number cannot be empty", ErrInvalidInput)
	}
	return nil
}

// ApplyDelta moves the balance by delta (negative deltas reduce it)
func (a *Account) ApplyDelta(delta decimal.Decimal) {
	a.Balance = a.Balance.Add(delta)
}

// IsNotFound reports whether err came from a store lookup that found nothing
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
