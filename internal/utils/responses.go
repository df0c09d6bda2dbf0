package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every successful JSON body as {"data": ...}.
type Envelope struct {
	Data any `json:"data"`
}

// Success responds with HTTP 200 OK status and the provided data.
func Success(c *gin.Context, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// Created responds with HTTP 201 Created status and the provided data.
func Created(c *gin.Context, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// NoContent responds with HTTP 204 No Content.
func NoContent(c *gin.Context) {
	if c == nil {
		return
	}
	c.Status(http.StatusNoContent)
}

// RFC 9457 Problem Details compatible error response functions.

// ProblemValidationError responds with HTTP 422 for input validation failures.
func ProblemValidationError(c *gin.Context, detail string, errors []ValidationError) {
	if c == nil {
		return
	}
	SendProblem(c, NewValidationProblem(detail, c.Request.URL.Path, errors))
}

// ProblemNotFound responds with HTTP 404 Not Found.
func ProblemNotFound(c *gin.Context, resource string) {
	if c == nil {
		return
	}
	SendProblem(c, NewNotFoundProblem(resource, c.Request.URL.Path))
}

// ProblemDuplicate responds with HTTP 409 for unique constraint clashes.
func ProblemDuplicate(c *gin.Context, resource string) {
	if c == nil {
		return
	}
	SendProblem(c, NewDuplicateProblem(resource, c.Request.URL.Path))
}

// ProblemConflict responds with HTTP 409 when the request does not fit the current state.
func ProblemConflict(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewConflictProblem(detail, c.Request.URL.Path))
}

// ProblemAuthentication responds with HTTP 401 Unauthorized.
// Per RFC 7235, includes WWW-Authenticate header.
func ProblemAuthentication(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	c.Header("WWW-Authenticate", `Session realm="Console API"`)
	SendProblem(c, NewAuthenticationProblem(detail, c.Request.URL.Path))
}

// ProblemForbidden responds with HTTP 403 Forbidden.
func ProblemForbidden(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewAuthorizationProblem(detail, c.Request.URL.Path))
}

// ProblemInternalServer responds with HTTP 500 Internal Server Error.
func ProblemInternalServer(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewInternalServerProblem(detail, c.Request.URL.Path))
}

// ProblemBadRequest responds with HTTP 400 Bad Request.
func ProblemBadRequest(c *gin.Context, detail string) {
	if c == nil {
		return
	}
	SendProblem(c, NewBadRequestProblem(detail, c.Request.URL.Path))
}
