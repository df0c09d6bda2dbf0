// Package auth provides console login sessions and role-based access control.
package auth

// SessionKey is a typed key for session values to prevent typos and enable refactoring.
type SessionKey string

// Session keys for storing authentication data in sessions.
const (
	// SessKeyUserID stores the authenticated user's ID
	SessKeyUserID SessionKey = "user_id"
	// SessKeyUsername stores the authenticated user's username
	SessKeyUsername SessionKey = "username"
	// SessKeyRole stores the authenticated user's role
	SessKeyRole SessionKey = "role"
)

// SessionData contains all authentication-related session data.
type SessionData struct {
	UserID   int64
	Username string
	Role     string
}

// SetSessionAuth stores authentication data in the session type-safely.
func SetSessionAuth(session Session, data SessionData) {
	session.Set(string(SessKeyUserID), data.UserID)
	session.Set(string(SessKeyUsername), data.Username)
	session.Set(string(SessKeyRole), data.Role)
}

// SessionUserID retrieves the user ID from session.
func SessionUserID(session Session) (int64, bool) {
	val := session.Get(string(SessKeyUserID))
	if val == nil {
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

// ClearSessionAuth removes the login from the session but keeps other values,
// such as client flags, in place.
func ClearSessionAuth(session Session) {
	session.Delete(string(SessKeyUserID))
	session.Delete(string(SessKeyUsername))
	session.Delete(string(SessKeyRole))
}
