package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/voiceconsole/manager/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, username, fullName, passwordHash, role string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// CountActiveAdmins counts admins that are not suspended.
	CountActiveAdmins(ctx context.Context) (int, error)

	RecordLoginSuccess(ctx context.Context, id int64, at time.Time) error
	RecordLoginFailure(ctx context.Context, id int64) error
}

// userRepository implements UserRepository.
type userRepository struct {
	*BaseRepository[models.User]
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{
		BaseRepository: NewBaseRepository[models.User](db, "users"),
	}
}

// Create inserts a new user and returns the created record.
func (r *userRepository) Create(ctx context.Context, username, fullName, passwordHash, role string) (*models.User, error) {
	q := r.getQueryable(ctx)
	now := time.Now().UTC()

	result, err := q.ExecContext(ctx, q.Rebind(
		"INSERT INTO users (username, full_name, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"),
		username, fullName, passwordHash, role, now, now,
	)
	if err != nil {
		return nil, ParseDBError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.GetBy(ctx, "username = ?", username)
}

// CountActiveAdmins counts admins that are not suspended.
func (r *userRepository) CountActiveAdmins(ctx context.Context) (int, error) {
	return r.CountBy(ctx, "role = ? AND suspended_at IS NULL", models.RoleAdmin)
}

// RecordLoginSuccess stamps the login time, bumps the login counter and clears failures.
func (r *userRepository) RecordLoginSuccess(ctx context.Context, id int64, at time.Time) error {
	return r.execAffectingOne(ctx,
		"UPDATE users SET last_login_at = ?, login_count = login_count + 1, failed_login_attempts = 0, updated_at = ? WHERE id = ?",
		at.UTC(), at.UTC(), id,
	)
}

// RecordLoginFailure increments the failed login counter.
func (r *userRepository) RecordLoginFailure(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx,
		"UPDATE users SET failed_login_attempts = failed_login_attempts + 1 WHERE id = ?",
		id,
	)
}
