package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// GetByID retrieves an account by its ID
	// Returns an error wrapping ErrNotFound if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// Update persists the account if its stored version still equals account.Version.
	// On success account.Version is incremented; otherwise ErrVersionConflict is returned.
	Update(ctx context.Context, account *Account) error
}

// BankRepository defines the interface for bank persistence operations
type BankRepository interface {
	// GetByID retrieves a bank by its code
	// Returns an error wrapping ErrNotFound if it does not exist
	GetByID(ctx context.Context, id string) (*Bank, error)

	// Create stores a new bank
	// Returns an error wrapping ErrAlreadyExists if the code is taken
	Create(ctx context.Context, bank *Bank) error

	// List retrieves all banks ordered by name
	List(ctx context.Context) ([]*Bank, error)
}

// LoanCategoryRepository defines the interface for loan category persistence operations
type LoanCategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanCategory, error)
	Create(ctx context.Context, category *LoanCategory) error

	// List retrieves categories ordered by name
	// If bankID is set, only shared categories and those owned by that bank are returned
	List(ctx context.Context, bankID string) ([]*LoanCategory, error)
}

// LoanProductRepository defines the interface for loan product persistence operations
type LoanProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanProduct, error)
	Create(ctx context.Context, product *LoanProduct) error

	// List retrieves all products, optionally filtered by bank
	// If bankID is empty, returns all products
	List(ctx context.Context, bankID string) ([]*LoanProduct, error)
}

// LoanApplicationRepository defines the interface for loan application persistence operations
type LoanApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanApplication, error)
	Create(ctx context.Context, app *LoanApplication) error

	// Update follows the same compare-and-swap contract as AccountRepository.Update
	Update(ctx context.Context, app *LoanApplication) error

	// List retrieves applications, optionally filtered by status
	// If status is empty, returns all applications
	List(ctx context.Context, status LoanStatus) ([]*LoanApplication, error)
}

// DisbursementRepository defines the interface for loan disbursement persistence operations
type DisbursementRepository interface {
	// Create stores a new disbursement
	// Returns ErrAlreadyDisbursed if the application already has one
	Create(ctx context.Context, disbursement *LoanDisbursement) error

	GetByID(ctx context.Context, id uuid.UUID) (*LoanDisbursement, error)

	// GetByApplicationID retrieves the disbursement of an application
	// Returns an error wrapping ErrNotFound if the application was never disbursed
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*LoanDisbursement, error)

	// Update persists installment status changes (compare-and-swap on Version)
	Update(ctx context.Context, disbursement *LoanDisbursement) error

	List(ctx context.Context) ([]*LoanDisbursement, error)
}

// AdjustmentRepository defines the interface for loan adjustment persistence operations
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment *LoanAdjustment) error

	// ListByApplication retrieves adjustments in the order they were applied
	// If applicationID is nil, returns all adjustments
	ListByApplication(ctx context.Context, applicationID *uuid.UUID) ([]*LoanAdjustment, error)
}

// TransactionManager runs a unit of work atomically.
// Repositories called with the context passed to fn take part in the same transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DisbursementNotice is what the borrower is told after funds are released
type DisbursementNotice struct {
	RecipientEmail     string          `json:"recipientEmail"`
	BorrowerName       string          `json:"borrowerName"`
	DisbursementNumber string          `json:"disbursementNumber"`
	Amount             decimal.Decimal `json:"loanAmount"`
	Schedule           []Installment   `json:"repaymentSchedule"`
}

// DisbursementNotifier delivers disbursement notices. Delivery is best-effort.
type DisbursementNotifier interface {
	NotifyDisbursement(ctx context.Context, notice DisbursementNotice) error
}
