package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voiceconsole/manager/internal/repository"
)

func TestErrorMatching(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("outer: %w", Conflict("Setup already completed").Wrap(base))

	assert.True(t, errors.Is(err, &Error{Code: CodeConflict}))
	assert.False(t, errors.Is(err, &Error{Code: CodeNotFound}))
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, CodeConflict, CodeOf(err))
	assert.Equal(t, CodeUnknown, CodeOf(base))
	assert.Equal(t, "outer: Setup already completed", err.Error())
}

func TestTranslateRepoError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{name: "not found", err: repository.ErrNotFound, code: CodeNotFound},
		{name: "duplicate", err: fmt.Errorf("%w: dup", repository.ErrDuplicateKey), code: CodeDuplicate},
		{name: "too long", err: repository.ErrDataTooLong, code: CodeInvalidInput},
		{name: "other", err: errors.New("connection refused"), code: CodeDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateRepoError("UserRepository.Create", "User", tt.err)
			assert.Equal(t, tt.code, CodeOf(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, TranslateRepoError("op", "User", nil))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "conflict", CodeConflict.String())
	assert.Equal(t, "unknown_code_99", Code(99).String())
}
