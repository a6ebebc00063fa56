package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq" // PostgreSQL driver
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// uniqueViolation is the SQLSTATE PostgreSQL reports for a duplicate key
const uniqueViolation = "23505"

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=lendflow sslmode=disable"
func NewDB(ctx context.Context, connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// querier is the subset of *sql.DB and *sql.Tx the repositories need
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction bound to ctx, or the pool when there is none
func (db *DB) conn(ctx context.Context) querier {
	if tx := getTx(ctx); tx != nil {
		return tx
	}
	return db.DB
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// createError reports a duplicate key as ErrAlreadyExists
func createError(entity string, id any, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("failed to create %s: %w", entity, err)
}

func notFound(entity string, id any, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// checkSwap interprets the result of a version-guarded UPDATE
func checkSwap(ctx context.Context, q querier, table string, id uuid.UUID, res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 1 {
		return nil
	}

	var exists bool
	// #nosec G201: table is a package constant
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := q.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", table, id, domain.ErrVersionConflict)
}

func parseDecimal(value, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return d, nil
}
