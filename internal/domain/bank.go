package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bank is a lender on the platform. Accounts and loan products belong to one bank.
// ID is a short stable code such as "default" or "north".
type Bank struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	RegistrationNumber string    `json:"registrationNumber"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Validate ensures the bank adheres to domain rules
func (b *Bank) Validate() error {
	if b.ID == "" || strings.ContainsAny(b.ID, ": ") {
		return fmt.Errorf("%w: bank id must be a non-empty code without spaces or colons", ErrInvalidInput)
	}
	if b.Name == "" || b.Email == "" || b.RegistrationNumber == "" {
		return fmt.Errorf("%w: bank name, email and registration number are required", ErrInvalidInput)
	}
	return nil
}

// LookupActiveBank fetches the bank with code id and rejects unknown or inactive banks
func LookupActiveBank(ctx context.Context, repo BankRepository, id string) (*Bank, error) {
	bank, err := repo.GetByID(ctx, id)
	if IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up bank %s: %w", id, err)
	}
	if !bank.IsActive {
		return nil, fmt.Errorf("%w: bank %s is inactive", ErrInvalidInput, id)
	}
	return bank, nil
}

// LoanCategory groups loan products. A category without a BankID is shared by every bank.
type LoanCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BankID      string    `json:"bankId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate ensures the category adheres to domain rules
func (c *LoanCategory) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: category name cannot be empty", ErrInvalidInput)
	}
	return nil
}

// AvailableTo reports whether products of bankID may use the category
func (c *LoanCategory) AvailableTo(bankID string) bool {
	return c.BankID == "" || c.BankID == bankID
}
