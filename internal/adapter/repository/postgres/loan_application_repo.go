package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// loanApplicationRepository implements domain.LoanApplicationRepository
type loanApplicationRepository struct {
	db *DB
}

// NewLoanApplicationRepository creates a new loan application repository
func NewLoanApplicationRepository(db *DB) domain.LoanApplicationRepository {
	return &loanApplicationRepository{db: db}
}

const selectLoanApplication = `
	SELECT id, application_number, account_id, loan_product_id, bank_id, amount, interest_rate, tenure_months,
		status, applied_by, applied_at, reviewed_by, reviewed_at, remarks, version
	FROM loan_applications
`

func scanLoanApplication(row rowScanner) (*domain.LoanApplication, error) {
	var app domain.LoanApplication
	var amountStr, rateStr string
	var reviewedAt sql.NullTime

	if err := row.Scan(
		&app.ID,
		&app.ApplicationNumber,
		&app.AccountID,
		&app.LoanProductID,
		&app.BankID,
		&amountStr,
		&rateStr,
		&app.TenureMonths,
		&app.Status,
		&app.AppliedBy,
		&app.AppliedAt,
		&app.ReviewedBy,
		&reviewedAt,
		&app.Remarks,
		&app.Version,
	); err != nil {
		return nil, err
	}

	var err error
	if app.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
		return nil, err
	}
	if app.InterestRate, err = parseDecimal(rateStr, "interest_rate"); err != nil {
		return nil, err
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		app.ReviewedAt = &t
	}
	return &app, nil
}

// GetByID retrieves a loan application by its ID
func (r *loanApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	app, err := scanLoanApplication(r.db.conn(ctx).QueryRowContext(ctx, selectLoanApplication+` WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("loan application", id, err)
	}
	return app, nil
}

// Create creates a new loan application
func (r *loanApplicationRepository) Create(ctx context.Context, app *domain.LoanApplication) error {
	query := `
		INSERT INTO loan_applications (id, application_number, account_id, loan_product_id, bank_id, amount, interest_rate,
			tenure_months, status, applied_by, applied_at, reviewed_by, reviewed_at, remarks, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		app.ID,
		app.ApplicationNumber,
		app.AccountID,
		app.LoanProductID,
		app.BankID,
		app.Amount.String(),
		app.InterestRate.String(),
		app.TenureMonths,
		string(app.Status),
		app.AppliedBy,
		app.AppliedAt,
		app.ReviewedBy,
		app.ReviewedAt,
		app.Remarks,
		app.Version,
	)
	if err != nil {
		return createError("loan application", app.ID, err)
	}
	return nil
}

// Update writes the lifecycle fields if the stored version matches
func (r *loanApplicationRepository) Update(ctx context.Context, app *domain.LoanApplication) error {
	query := `
		UPDATE loan_applications
		SET status = $2, reviewed_by = $3, reviewed_at = $4, remarks = $5, version = version + 1
		WHERE id = $1 AND version = $6
	`

	q := r.db.conn(ctx)
	res, err := q.ExecContext(ctx, query,
		app.ID,
		string(app.Status),
		app.ReviewedBy,
		app.ReviewedAt,
		app.Remarks,
		app.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan application: %w", err)
	}
	if err := checkSwap(ctx, q, tableApplications, app.ID, res); err != nil {
		return err
	}

	app.Version++
	return nil
}

// List retrieves applications, optionally filtered by status, oldest first
func (r *loanApplicationRepository) List(ctx context.Context, status domain.LoanStatus) ([]*domain.LoanApplication, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.conn(ctx).QueryContext(ctx, selectLoanApplication+` ORDER BY applied_at`)
	} else {
		rows, err = r.db.conn(ctx).QueryContext(ctx, selectLoanApplication+` WHERE status = $1 ORDER BY applied_at`, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query loan applications: %w", err)
	}
	defer rows.Close()

	var apps []*domain.LoanApplication
	for rows.Next() {
		app, err := scanLoanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan applications: %w", err)
	}
	return apps, nil
}
