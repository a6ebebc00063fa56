package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// loanProductRepository implements domain.LoanProductRepository
type loanProductRepository struct {
	db *DB
}

// NewLoanProductRepository creates a new loan product repository
func NewLoanProductRepository(db *DB) domain.LoanProductRepository {
	return &loanProductRepository{db: db}
}

const selectLoanProduct = `
	SELECT id, product_code, name, category_name, bank_id, interest_rate, min_amount, max_amount, tenure_months, created_at
	FROM loan_products
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoanProduct(row rowScanner) (*domain.LoanProduct, error) {
	var p domain.LoanProduct
	var rateStr, minStr, maxStr string

	if err := row.Scan(
		&p.ID,
		&p.ProductCode,
		&p.Name,
		&p.CategoryName,
		&p.BankID,
		&rateStr,
		&minStr,
		&maxStr,
		&p.TenureMonths,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if p.InterestRate, err = parseDecimal(rateStr, "interest_rate"); err != nil {
		return nil, err
	}
	if p.MinAmount, err = parseDecimal(minStr, "min_amount"); err != nil {
		return nil, err
	}
	if p.MaxAmount, err = parseDecimal(maxStr, "max_amount"); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a loan product by its ID
func (r *loanProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanProduct, error) {
	product, err := scanLoanProduct(r.db.conn(ctx).QueryRowContext(ctx, selectLoanProduct+` WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("loan product", id, err)
	}
	return product, nil
}

// Create creates a new loan product
func (r *loanProductRepository) Create(ctx context.Context, product *domain.LoanProduct) error {
	query := `
		INSERT INTO loan_products (id, product_code, name, category_name, bank_id, interest_rate, min_amount, max_amount, tenure_months, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		product.ID,
		product.ProductCode,
		product.Name,
		product.CategoryName,
		product.BankID,
		product.InterestRate.String(),
		product.MinAmount.String(),
		product.MaxAmount.String(),
		product.TenureMonths,
		product.CreatedAt,
	)
	if err != nil {
		return createError("loan product", product.ID, err)
	}
	return nil
}

// List retrieves all products, optionally filtered by bank
func (r *loanProductRepository) List(ctx context.Context, bankID string) ([]*domain.LoanProduct, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if bankID == "" {
		rows, err = r.db.conn(ctx).QueryContext(ctx, selectLoanProduct+` ORDER BY product_code`)
	} else {
		rows, err = r.db.conn(ctx).QueryContext(ctx, selectLoanProduct+` WHERE bank_id = $1 ORDER BY product_code`, bankID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query loan products: %w", err)
	}
	defer rows.Close()

	var products []*domain.LoanProduct
	for rows.Next() {
		product, err := scanLoanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan products: %w", err)
	}
	return products, nil
}
