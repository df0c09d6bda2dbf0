// Package repository provides data access abstractions for the console manager.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Repository-level sentinel errors.
// These are distinct from application errors but can be mapped to them.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates a unique constraint violation.
	ErrDuplicateKey = errors.New("duplicate key violation")

	// ErrDataTooLong indicates data exceeds column capacity.
	ErrDataTooLong = errors.New("data too long for column")
)

// ParseDBError converts driver-specific errors to repository errors.
func ParseDBError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062: // ER_DUP_ENTRY
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		case 1406: // ER_DATA_TOO_LONG
			return fmt.Errorf("%w: %v", ErrDataTooLong, err)
		}
	}

	// Fallback to string matching for non-MySQL drivers (SQLite in tests)
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "Duplicate entry"), strings.Contains(errStr, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case strings.Contains(errStr, "Data too long"):
		return fmt.Errorf("%w: %v", ErrDataTooLong, err)
	default:
		return err
	}
}
