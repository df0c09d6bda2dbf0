// Package handlers provides HTTP request handlers for the setup and catalog endpoints.
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/voiceconsole/manager/internal/apperrors"
	"github.com/voiceconsole/manager/internal/models"
	"github.com/voiceconsole/manager/internal/setup"
	"github.com/voiceconsole/manager/internal/utils"
	"github.com/voiceconsole/manager/pkg/logger"
)

// SetupService is the setup behaviour the handlers depend on.
type SetupService interface {
	Status(ctx context.Context) (setup.Status, error)
	CreateInitialAdmin(ctx context.Context, req setup.InitialAdmin) (*models.User, error)
}

// Handlers contains all the dependencies needed by the API handlers.
type Handlers struct {
	setupSvc SetupService
}

// NewHandlers creates a new Handlers instance with all required dependencies.
func NewHandlers(setupSvc SetupService) *Handlers {
	return &Handlers{setupSvc: setupSvc}
}

// HandleServiceError converts apperrors.Error to appropriate HTTP responses.
// Internal error details are logged but never exposed to clients.
func HandleServiceError(c *gin.Context, err error, resource string) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		logger.Error("Unhandled error for %s: %v", resource, err)
		utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
		return
	}

	if appErr.Internal != "" {
		logger.Error("%s error: %s (internal: %s)", resource, appErr.Message, appErr.Internal)
	}
	if appErr.Err != nil {
		logger.Error("%s underlying error: %v", resource, appErr.Err)
	}

	switch appErr.Code {
	case apperrors.CodeNotFound:
		utils.ProblemNotFound(c, resource)
	case apperrors.CodeDuplicate:
		utils.ProblemDuplicate(c, resource)
	case apperrors.CodeConflict:
		utils.ProblemConflict(c, appErr.Message)
	case apperrors.CodeValidation:
		utils.ProblemValidationError(c, "The request contains invalid data", []utils.ValidationError{
			{Field: appErr.Field, Message: appErr.Message},
		})
	case apperrors.CodeInvalidInput:
		utils.ProblemBadRequest(c, appErr.Message)
	case apperrors.CodeUnauthorized:
		utils.ProblemAuthentication(c, appErr.Message)
	case apperrors.CodeForbidden:
		utils.ProblemForbidden(c, appErr.Message)
	default:
		utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
	}
}
