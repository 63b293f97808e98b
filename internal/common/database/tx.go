// internal/common/database/tx.go
// Explicit unit-of-work helper. Services that need multiple writes to commit
// or roll back together run them through a Transactor; repositories expose
// WithTx so the same transaction can span modules.

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Querier is the subset of sqlx operations repositories need. Both *sqlx.DB
// and *sqlx.Tx satisfy it, so a repository bound to a transaction and one
// bound to the pool share the same code paths.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
}

// Transactor runs a function inside a single database transaction
type Transactor interface {
	InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type sqlTransactor struct {
	db *sqlx.DB
}

// NewTransactor creates a Transactor backed by the given connection pool
func NewTransactor(db *sqlx.DB) Transactor {
	return &sqlTransactor{db: db}
}

// InTx begins a transaction, runs fn, and commits. Any error from fn rolls
// the whole transaction back, so partial writes never persist.
func (t *sqlTransactor) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
