package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/validation"
)

// OpenAccountInput represents the input for opening a borrower account
type OpenAccountInput struct {
	BorrowerName  string `validate:"required"`
	AccountNumber string `validate:"required"`
	BankID        string
	Email         string `validate:"omitempty,email"`
	Phone         string
	Address       string
	// OpeningBalance may be zero or negative
	OpeningBalance decimal.Decimal
}

// AccountService handles borrower accounts
type AccountService struct {
	AccountRepo domain.AccountRepository
	BankRepo    domain.BankRepository
}

// NewAccountService creates a new AccountService instance
func NewAccountService(accountRepo domain.AccountRepository, bankRepo domain.BankRepository) *AccountService {
	return &AccountService{
		AccountRepo: accountRepo,
		BankRepo:    bankRepo,
	}
}

// OpenAccount creates a new account. Accounts exist independently of loans.
// When BankID is set it must name an active bank.
func (s *AccountService) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.BankID != "" {
		if _, err := domain.LookupActiveBank(ctx, s.BankRepo, input.BankID); err != nil {
			return nil, err
		}
	}

	account := &domain.Account{
		ID:            uuid.New(),
		BorrowerName:  input.BorrowerName,
		AccountNumber: input.AccountNumber,
		BankID:        input.BankID,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		Balance:       input.OpeningBalance,
		CreatedAt:     time.Now(),
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.AccountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.AccountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownAccount, id)
	}
	return account, nil
}
