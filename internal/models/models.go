// Package models contains the data models for the console manager.
package models

import (
	"time"
)

// User represents a console user for authentication and access control
type User struct {
	ID                  int64      `db:"id" json:"id"`
	Username            string     `db:"username" json:"username"`
	FullName            string     `db:"full_name" json:"full_name"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Role                string     `db:"role" json:"role"` // admin, editor, viewer
	SuspendedAt         *time.Time `db:"suspended_at" json:"suspended_at,omitempty"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"last_login_at"`
	LoginCount          int        `db:"login_count" json:"login_count"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

// Role constants define the access levels within the system.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

