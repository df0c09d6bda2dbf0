package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// BaseRepository provides common read operations for all repositories.
// It uses Go generics to work with any model type.
type BaseRepository[T any] struct {
	db        *sqlx.DB
	tableName string
}

// NewBaseRepository creates a new base repository for the given table.
func NewBaseRepository[T any](db *sqlx.DB, tableName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:        db,
		tableName: tableName,
	}
}

// getQueryable returns the transaction from context if present, otherwise the db.
func (r *BaseRepository[T]) getQueryable(ctx context.Context) Queryable {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// GetByID retrieves a record by its ID.
func (r *BaseRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return r.GetBy(ctx, "id = ?", id)
}

// GetBy retrieves the first record matching condition, a SQL WHERE fragment.
func (r *BaseRepository[T]) GetBy(ctx context.Context, condition string, args ...any) (*T, error) {
	q := r.getQueryable(ctx)

	var result T
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s LIMIT 1", r.tableName, condition)

	if err := q.GetContext(ctx, &result, q.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ParseDBError(err)
	}

	return &result, nil
}

// CountBy counts records matching a condition.
// The condition should be a valid SQL WHERE clause fragment.
func (r *BaseRepository[T]) CountBy(ctx context.Context, condition string, args ...any) (int, error) {
	q := r.getQueryable(ctx)

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.tableName, condition)

	if err := q.GetContext(ctx, &count, q.Rebind(query), args...); err != nil {
		return 0, ParseDBError(err)
	}

	return count, nil
}

// execAffectingOne runs an UPDATE/DELETE and returns ErrNotFound when nothing matched.
func (r *BaseRepository[T]) execAffectingOne(ctx context.Context, query string, args ...any) error {
	q := r.getQueryable(ctx)

	result, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return ParseDBError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return ParseDBError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
