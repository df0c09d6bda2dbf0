package auth

import "github.com/gin-gonic/gin"

// SessionStore hands out the session bound to a request.
type SessionStore interface {
	Get(c *gin.Context) Session
}

// Session defines the interface for session data operations.
// It satisfies routing.SessionValues, so the first-login flag can live in it.
type Session interface {
	Get(key string) any
	Set(key string, value any)
	Delete(key string)
	Clear()
	// Save persists the session changes to the storage backend
	Save(c *gin.Context) error
}
