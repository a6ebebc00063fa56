package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, borrower_name, account_number, bank_id, email, phone, address, balance, version, created_at
		FROM accounts
		WHERE id = $1
	`

	var account domain.Account
	var balanceStr string

	err := r.db.conn(ctx).QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.BorrowerName,
		&account.AccountNumber,
		&account.BankID,
		&account.Email,
		&account.Phone,
		&account.Address,
		&balanceStr,
		&account.Version,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, notFound("account", id, err)
	}

	account.Balance, err = parseDecimal(balanceStr, "balance")
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, borrower_name, account_number, bank_id, email, phone, address, balance, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		account.ID,
		account.BorrowerName,
		account.AccountNumber,
		account.BankID,
		account.Email,
		account.Phone,
		account.Address,
		account.Balance.String(),
		account.Version,
		account.CreatedAt,
	)
	if err != nil {
		return createError("account", account.ID, err)
	}
	return nil
}

// Update writes the balance and contact details if the stored version matches
func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET borrower_name = $2, email = $3, phone = $4, address = $5, balance = $6, version = version + 1
		WHERE id = $1 AND version = $7
	`

	q := r.db.conn(ctx)
	res, err := q.ExecContext(ctx, query,
		account.ID,
		account.BorrowerName,
		account.Email,
		account.Phone,
		account.Address,
		account.Balance.String(),
		account.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if err := checkSwap(ctx, q, tableAccounts, account.ID, res); err != nil {
		return err
	}

	account.Version++
	return nil
}
