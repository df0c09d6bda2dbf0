package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/voiceconsole/manager/pkg/logger"
)

// TxManager defines the transaction management interface.
type TxManager interface {
	// WithTransaction executes fn within a transaction. An error or panic from
	// fn rolls back, success commits.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// txManager implements TxManager using sqlx.
type txManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new transaction manager.
func NewTxManager(db *sqlx.DB) TxManager {
	return &txManager{db: db}
}

// WithTransaction implements TxManager.
func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, m.db, fn)
}

// WithTx runs fn inside a transaction stored in ctx, where repositories pick
// it up through TxFromContext.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return ParseDBError(err)
	}
	defer func() {
		if p := recover(); p != nil {
			logger.Error("Panic in transaction: %v", p)
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ContextWithTx(ctx, tx)); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return ParseDBError(tx.Commit())
}
