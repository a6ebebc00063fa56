package postgres

import (
	"context"
	"fmt"
)

const (
	tableAccounts      = "accounts"
	tableLoanProducts  = "loan_products"
	tableApplications  = "loan_applications"
	tableDisbursements = "loan_disbursements"
	tableAdjustments   = "loan_adjustments"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS banks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		registration_number TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS loan_categories (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		bank_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_loan_categories_bank_id ON loan_categories(bank_id);`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		borrower_name TEXT NOT NULL,
		account_number TEXT NOT NULL,
		bank_id TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		balance NUMERIC(18, 2) NOT NULL DEFAULT 0,
		version BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS loan_products (
		id UUID PRIMARY KEY,
		product_code TEXT NOT NULL,
		name TEXT NOT NULL,
		category_name TEXT NOT NULL DEFAULT '',
		bank_id TEXT NOT NULL,
		interest_rate NUMERIC(9, 4) NOT NULL,
		min_amount NUMERIC(18, 2) NOT NULL,
		max_amount NUMERIC(18, 2) NOT NULL,
		tenure_months INTEGER NOT NULL CHECK (tenure_months BETWEEN 1 AND 600),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_loan_products_bank_id ON loan_products(bank_id);`,
	`CREATE TABLE IF NOT EXISTS loan_applications (
		id UUID PRIMARY KEY,
		application_number TEXT NOT NULL UNIQUE,
		account_id UUID NOT NULL REFERENCES accounts(id),
		loan_product_id UUID NOT NULL REFERENCES loan_products(id),
		bank_id TEXT NOT NULL DEFAULT '',
		amount NUMERIC(18, 2) NOT NULL,
		interest_rate NUMERIC(9, 4) NOT NULL,
		tenure_months INTEGER NOT NULL,
		status VARCHAR(20) NOT NULL,
		applied_by TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL,
		reviewed_by TEXT NOT NULL DEFAULT '',
		reviewed_at TIMESTAMPTZ,
		remarks TEXT NOT NULL DEFAULT '',
		version BIGINT NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_loan_applications_status ON loan_applications(status);`,
	`CREATE TABLE IF NOT EXISTS loan_disbursements (
		id UUID PRIMARY KEY,
		disbursement_number TEXT NOT NULL UNIQUE,
		loan_application_id UUID NOT NULL REFERENCES loan_applications(id),
		account_id UUID NOT NULL REFERENCES accounts(id),
		amount NUMERIC(18, 2) NOT NULL,
		disbursed_to TEXT NOT NULL,
		disbursed_by TEXT NOT NULL,
		disbursed_at TIMESTAMPTZ NOT NULL,
		repayment_schedule JSONB NOT NULL,
		version BIGINT NOT NULL DEFAULT 0
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_loan_disbursements_application ON loan_disbursements(loan_application_id);`,
	`CREATE TABLE IF NOT EXISTS loan_adjustments (
		seq BIGSERIAL,
		id UUID PRIMARY KEY,
		adjustment_number TEXT NOT NULL UNIQUE,
		loan_application_id UUID NOT NULL REFERENCES loan_applications(id),
		account_id UUID NOT NULL REFERENCES accounts(id),
		adjustment_type VARCHAR(32) NOT NULL,
		amount NUMERIC(18, 2) NOT NULL,
		reason TEXT NOT NULL,
		approved_by TEXT NOT NULL,
		adjusted_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_loan_adjustments_application ON loan_adjustments(loan_application_id);`,
}

// Migrate creates the schema if it does not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration %d: %w", i+1, err)
		}
	}
	return nil
}
