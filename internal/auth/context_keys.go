package auth

import "github.com/gin-gonic/gin"

// ContextKey is a typed key for context values.
type ContextKey string

// Context keys for storing user information in request context.
const (
	CtxKeyUserID   ContextKey = "user_id"
	CtxKeyUsername ContextKey = "username"
	CtxKeyUserRole ContextKey = "user_role"
)

// UserContext contains all user-related context data for type-safe access.
type UserContext struct {
	UserID   int64
	Username string
	Role     string
}

// SetUserContext stores user context data in a type-safe manner.
func SetUserContext(c *gin.Context, ctx UserContext) {
	c.Set(string(CtxKeyUserID), ctx.UserID)
	c.Set(string(CtxKeyUsername), ctx.Username)
	c.Set(string(CtxKeyUserRole), ctx.Role)
}

// CurrentUser returns the authenticated user stored by Middleware.
func CurrentUser(c *gin.Context) (UserContext, bool) {
	id, ok := UserID(c)
	if !ok {
		return UserContext{}, false
	}
	username, _ := getContextString(c, CtxKeyUsername)
	role, _ := UserRole(c)
	return UserContext{UserID: id, Username: username, Role: role}, true
}

// UserID retrieves the user ID from context.
func UserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(string(CtxKeyUserID))
	if !exists {
		return 0, false
	}
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// UserRole retrieves the user role from context in a type-safe manner.
func UserRole(c *gin.Context) (string, bool) {
	return getContextString(c, CtxKeyUserRole)
}

// getContextString safely retrieves a string from context.
func getContextString(c *gin.Context, key ContextKey) (string, bool) {
	val, exists := c.Get(string(key))
	if !exists {
		return "", false
	}
	if s, ok := val.(string); ok {
		return s, true
	}
	return "", false
}
