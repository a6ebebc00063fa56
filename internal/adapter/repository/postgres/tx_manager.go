package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// txKey is the key type for storing transaction in context.
type txKey struct{}

// TransactionManager implements domain.TransactionManager using PostgreSQL.
type TransactionManager struct {
	db *DB
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction executes fn within a database transaction.
// If fn returns an error, the transaction is rolled back. Otherwise it is committed.
// A call made with a context that already carries a transaction joins it.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if getTx(ctx) != nil {
		return fn(ctx)
	}

	tx, err := tm.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after Commit is a no-op
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// getTx retrieves the transaction from context.
// If no transaction is found, returns nil.
func getTx(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return nil
}
