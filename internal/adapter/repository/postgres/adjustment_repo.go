package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// adjustmentRepository implements domain.AdjustmentRepository
type adjustmentRepository struct {
	db *DB
}

// NewAdjustmentRepository creates a new adjustment repository
func NewAdjustmentRepository(db *DB) domain.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// Create records an adjustment
func (r *adjustmentRepository) Create(ctx context.Context, adj *domain.LoanAdjustment) error {
	query := `
		INSERT INTO loan_adjustments (id, adjustment_number, loan_application_id, account_id, adjustment_type, amount,
			reason, approved_by, adjusted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		adj.ID,
		adj.AdjustmentNumber,
		adj.LoanApplicationID,
		adj.AccountID,
		string(adj.Type),
		adj.Amount.String(),
		adj.Reason,
		adj.ApprovedBy,
		adj.AdjustedAt,
	)
	if err != nil {
		return createError("adjustment", adj.ID, err)
	}
	return nil
}

// ListByApplication retrieves adjustments in the order they were applied
// If applicationID is nil, returns all adjustments
func (r *adjustmentRepository) ListByApplication(ctx context.Context, applicationID *uuid.UUID) ([]*domain.LoanAdjustment, error) {
	query := `
		SELECT id, adjustment_number, loan_application_id, account_id, adjustment_type, amount, reason, approved_by, adjusted_at
		FROM loan_adjustments
	`

	var (
		rows *sql.Rows
		err  error
	)
	if applicationID == nil {
		rows, err = r.db.conn(ctx).QueryContext(ctx, query+` ORDER BY seq`)
	} else {
		rows, err = r.db.conn(ctx).QueryContext(ctx, query+` WHERE loan_application_id = $1 ORDER BY seq`, *applicationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []*domain.LoanAdjustment
	for rows.Next() {
		var adj domain.LoanAdjustment
		var amountStr string
		if err := rows.Scan(
			&adj.ID,
			&adj.AdjustmentNumber,
			&adj.LoanApplicationID,
			&adj.AccountID,
			&adj.Type,
			&amountStr,
			&adj.Reason,
			&adj.ApprovedBy,
			&adj.AdjustedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		if adj.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, &adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adjustments: %w", err)
	}
	return adjustments, nil
}
