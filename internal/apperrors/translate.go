package apperrors

import (
	"errors"

	"github.com/voiceconsole/manager/internal/repository"
)

// TranslateRepoError converts repository errors to domain errors with operation context.
// Returns nil if err is nil. The operation name is kept as internal detail for logging.
func TranslateRepoError(op, resource string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NotFound(resource+" not found").WithInternal("%s", op).Wrap(err)
	case errors.Is(err, repository.ErrDuplicateKey):
		return Duplicate(resource+" already exists").WithInternal("%s", op).Wrap(err)
	case errors.Is(err, repository.ErrDataTooLong):
		return InvalidInput("Value too long").WithInternal("%s", op).Wrap(err)
	default:
		return Database("Database error").WithInternal("%s: %v", op, err).Wrap(err)
	}
}
