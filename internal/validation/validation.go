// Package validation provides structured validation for the console manager API.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/voiceconsole/manager/internal/apperrors"
)

// Result holds validation results with multiple field errors.
type Result struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// New creates a new valid Result.
func New() *Result {
	return &Result{Valid: true}
}

// AddError adds a field error and marks the result as invalid.
func (r *Result) AddError(field, message string) *Result {
	r.Valid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
	return r
}

// AddErrorf adds a formatted field error.
func (r *Result) AddErrorf(field, format string, args ...any) *Result {
	return r.AddError(field, fmt.Sprintf(format, args...))
}

// ToError converts the Result to an apperrors.Error if invalid.
// Returns nil if the result is valid.
func (r *Result) ToError() *apperrors.Error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	if len(r.Errors) == 1 {
		return apperrors.InvalidField(r.Errors[0].Field, r.Errors[0].Message)
	}
	var messages []string
	for _, e := range r.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return apperrors.InvalidInput(strings.Join(messages, "; "))
}

// PasswordPolicy describes the rules local passwords must satisfy.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// DefaultPasswordPolicy returns the policy used for console accounts.
func DefaultPasswordPolicy(minLength int) PasswordPolicy {
	return PasswordPolicy{
		MinLength:        minLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
}

// Check validates password against the policy, recording errors under field.
func (p PasswordPolicy) Check(r *Result, field, password string) {
	if len(password) < p.MinLength {
		r.AddErrorf(field, "must be at least %d characters", p.MinLength)
	}
	if len([]byte(password)) > MaxPasswordBytes {
		r.AddErrorf(field, "cannot exceed %d bytes", MaxPasswordBytes)
	}

	var upper, lower, digit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		}
	}

	if p.RequireUppercase && !upper {
		r.AddError(field, "must contain an uppercase letter")
	}
	if p.RequireLowercase && !lower {
		r.AddError(field, "must contain a lowercase letter")
	}
	if p.RequireNumbers && !digit {
		r.AddError(field, "must contain a number")
	}
}

// Username checks the console username format.
func Username(r *Result, field, username string) {
	switch {
	case len(username) < 3:
		r.AddError(field, "must be at least 3 characters")
	case len(username) > 100:
		r.AddError(field, "cannot exceed 100 characters")
	}
	for _, c := range username {
		if c > unicode.MaxASCII || !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-') {
			r.AddError(field, "can only contain letters, numbers, underscores and hyphens")
			return
		}
	}
}
