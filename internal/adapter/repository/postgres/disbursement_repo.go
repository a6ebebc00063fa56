package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// disbursementRepository implements domain.DisbursementRepository.
// The repayment schedule is stored as JSONB next to the disbursement.
type disbursementRepository struct {
	db *DB
}

// NewDisbursementRepository creates a new disbursement repository
func NewDisbursementRepository(db *DB) domain.DisbursementRepository {
	return &disbursementRepository{db: db}
}

const selectDisbursement = `
	SELECT id, disbursement_number, loan_application_id, account_id, amount, disbursed_to, disbursed_by,
		disbursed_at, repayment_schedule, version
	FROM loan_disbursements
`

func scanDisbursement(row rowScanner) (*domain.LoanDisbursement, error) {
	var d domain.LoanDisbursement
	var amountStr string
	var schedule []byte

	if err := row.Scan(
		&d.ID,
		&d.DisbursementNumber,
		&d.LoanApplicationID,
		&d.AccountID,
		&amountStr,
		&d.DisbursedTo,
		&d.DisbursedBy,
		&d.DisbursedAt,
		&schedule,
		&d.Version,
	); err != nil {
		return nil, err
	}

	var err error
	if d.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(schedule, &d.RepaymentSchedule); err != nil {
		return nil, fmt.Errorf("failed to decode repayment_schedule: %w", err)
	}
	return &d, nil
}

// Create stores a new disbursement
// The unique index on loan_application_id turns a second disbursement into ErrAlreadyDisbursed
func (r *disbursementRepository) Create(ctx context.Context, d *domain.LoanDisbursement) error {
	schedule, err := json.Marshal(d.RepaymentSchedule)
	if err != nil {
		return fmt.Errorf("failed to encode repayment schedule: %w", err)
	}

	query := `
		INSERT INTO loan_disbursements (id, disbursement_number, loan_application_id, account_id, amount, disbursed_to,
			disbursed_by, disbursed_at, repayment_schedule, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.conn(ctx).ExecContext(ctx, query,
		d.ID,
		d.DisbursementNumber,
		d.LoanApplicationID,
		d.AccountID,
		d.Amount.String(),
		d.DisbursedTo,
		d.DisbursedBy,
		d.DisbursedAt,
		schedule,
		d.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("application %s: %w", d.LoanApplicationID, domain.ErrAlreadyDisbursed)
		}
		return fmt.Errorf("failed to create disbursement: %w", err)
	}
	return nil
}

// GetByID retrieves a disbursement by its ID
func (r *disbursementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanDisbursement, error) {
	d, err := scanDisbursement(r.db.conn(ctx).QueryRowContext(ctx, selectDisbursement+` WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("loan disbursement", id, err)
	}
	return d, nil
}

// GetByApplicationID retrieves the disbursement of an application
func (r *disbursementRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*domain.LoanDisbursement, error) {
	d, err := scanDisbursement(r.db.conn(ctx).QueryRowContext(ctx, selectDisbursement+` WHERE loan_application_id = $1`, applicationID))
	if err != nil {
		return nil, notFound("disbursement for application", applicationID, err)
	}
	return d, nil
}

// Update rewrites the repayment schedule if the stored version matches
func (r *disbursementRepository) Update(ctx context.Context, d *domain.LoanDisbursement) error {
	schedule, err := json.Marshal(d.RepaymentSchedule)
	if err != nil {
		return fmt.Errorf("failed to encode repayment schedule: %w", err)
	}

	query := `
		UPDATE loan_disbursements
		SET repayment_schedule = $2, version = version + 1
		WHERE id = $1 AND version = $3
	`

	q := r.db.conn(ctx)
	res, err := q.ExecContext(ctx, query, d.ID, schedule, d.Version)
	if err != nil {
		return fmt.Errorf("failed to update disbursement: %w", err)
	}
	if err := checkSwap(ctx, q, tableDisbursements, d.ID, res); err != nil {
		return err
	}

	d.Version++
	return nil
}

// List retrieves all disbursements, oldest first
func (r *disbursementRepository) List(ctx context.Context) ([]*domain.LoanDisbursement, error) {
	rows, err := r.db.conn(ctx).QueryContext(ctx, selectDisbursement+` ORDER BY disbursed_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query disbursements: %w", err)
	}
	defer rows.Close()

	var disbursements []*domain.LoanDisbursement
	for rows.Next() {
		d, err := scanDisbursement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan disbursement: %w", err)
		}
		disbursements = append(disbursements, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating disbursements: %w", err)
	}
	return disbursements, nil
}
