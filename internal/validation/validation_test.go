package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voiceconsole/manager/internal/apperrors"
)

func TestPasswordPolicy(t *testing.T) {
	policy := DefaultPasswordPolicy(8)

	tests := []struct {
		name     string
		password string
		errors   int
	}{
		{name: "valid", password: "Secret123", errors: 0},
		{name: "too short", password: "Se1", errors: 1},
		{name: "no uppercase", password: "secret123", errors: 1},
		{name: "no lowercase", password: "SECRET123", errors: 1},
		{name: "no digit", password: "SecretPass", errors: 1},
		{name: "empty", password: "", errors: 4},
		{name: "at byte limit", password: "Aa1" + strings.Repeat("x", 69), errors: 0},
		{name: "over byte limit", password: "Aa1" + strings.Repeat("x", 70), errors: 1},
		{name: "multibyte over limit", password: "Aa1" + strings.Repeat("é", 35), errors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			policy.Check(r, "password", tt.password)
			assert.Len(t, r.Errors, tt.errors)
			assert.Equal(t, tt.errors == 0, r.Valid)
		})
	}
}

func TestUsername(t *testing.T) {
	valid := []string{"admin", "john_doe", "user-1"}
	for _, u := range valid {
		r := New()
		Username(r, "username", u)
		assert.True(t, r.Valid, u)
	}

	invalid := []string{"ab", "john.doe", "user@host", "名字名字"}
	for _, u := range invalid {
		r := New()
		Username(r, "username", u)
		assert.False(t, r.Valid, u)
	}
}

func TestToError(t *testing.T) {
	assert.Nil(t, New().ToError())

	single := New().AddError("username", "is required").ToError()
	assert.Equal(t, apperrors.CodeValidation, single.Code)
	assert.Equal(t, "username", single.Field)

	multi := New().AddError("username", "is required").AddError("password", "is required").ToError()
	assert.Equal(t, apperrors.CodeInvalidInput, multi.Code)
	assert.Equal(t, "username: is required; password: is required", multi.Message)
}
