package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// bankRepository implements domain.BankRepository
type bankRepository struct {
	db *DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *DB) domain.BankRepository {
	return &bankRepository{db: db}
}

const selectBank = `
	SELECT id, name, email, address, phone, registration_number, is_active, created_at
	FROM banks
`

func scanBank(row rowScanner) (*domain.Bank, error) {
	var b domain.Bank
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Address,
		&b.Phone,
		&b.RegistrationNumber,
		&b.IsActive,
		&b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByID retrieves a bank by its code
func (r *bankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	bank, err := scanBank(r.db.conn(ctx).QueryRowContext(ctx, selectBank+` WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("bank", id, err)
	}
	return bank, nil
}

// Create creates a new bank
func (r *bankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	query := `
		INSERT INTO banks (id, name, email, address, phone, registration_number, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		bank.ID,
		bank.Name,
		bank.Email,
		bank.Address,
		bank.Phone,
		bank.RegistrationNumber,
		bank.IsActive,
		bank.CreatedAt,
	)
	if err != nil {
		return createError("bank", bank.ID, err)
	}
	return nil
}

// List retrieves all banks ordered by name
func (r *bankRepository) List(ctx context.Context) ([]*domain.Bank, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, selectBank+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	var banks []*domain.Bank
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banks: %w", err)
	}
	return banks, nil
}

// loanCategoryRepository implements domain.LoanCategoryRepository
type loanCategoryRepository struct {
	db *DB
}

// NewLoanCategoryRepository creates a new loan category repository
func NewLoanCategoryRepository(db *DB) domain.LoanCategoryRepository {
	return &loanCategoryRepository{db: db}
}

const selectLoanCategory = `
	SELECT id, name, description, bank_id, created_at
	FROM loan_categories
`

func scanLoanCategory(row rowScanner) (*domain.LoanCategory, error) {
	var c domain.LoanCategory
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.BankID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a loan category by its ID
func (r *loanCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanCategory, error) {
	category, err := scanLoanCategory(r.db.conn(ctx).QueryRowContext(ctx, selectLoanCategory+` WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("loan category", id, err)
	}
	return category, nil
}

// Create creates a new loan category
func (r *loanCategoryRepository) Create(ctx context.Context, category *domain.LoanCategory) error {
	query := `
		INSERT INTO loan_categories (id, name, description, bank_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.BankID,
		category.CreatedAt,
	)
	if err != nil {
		return createError("loan category", category.ID, err)
	}
	return nil
}

// List retrieves categories ordered by name.
// A non-empty bankID keeps shared categories and the ones that bank owns.
func (r *loanCategoryRepository) List(ctx context.Context, bankID string) ([]*domain.LoanCategory, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if bankID == "" {
		rows, err = r.db.conn(ctx).QueryContext(ctx, selectLoanCategory+` ORDER BY name`)
	} else {
		rows, err = r.db.conn(ctx).QueryContext(ctx, selectLoanCategory+` WHERE bank_id = '' OR bank_id = $1 ORDER BY name`, bankID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query loan categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.LoanCategory
	for rows.Next() {
		category, err := scanLoanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan categories: %w", err)
	}
	return categories, nil
}
