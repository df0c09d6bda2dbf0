package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/voiceconsole/manager/internal/apperrors"
	"github.com/voiceconsole/manager/internal/metrics"
	"github.com/voiceconsole/manager/internal/models"
	"github.com/voiceconsole/manager/internal/repository"
	"github.com/voiceconsole/manager/internal/utils"
	"github.com/voiceconsole/manager/pkg/logger"
)

// UserStore is the user persistence the auth service needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	RecordLoginSuccess(ctx context.Context, id int64, at time.Time) error
	RecordLoginFailure(ctx context.Context, id int64) error
}

// Service handles authentication and authorization.
type Service struct {
	config   *Config
	users    UserStore
	enforcer *casbin.Enforcer
	sessions *GinSessionStore
	now      func() time.Time
}

// NewService creates a new authentication service.
func NewService(cfg *Config, users UserStore) (*Service, error) {
	store, err := NewGinSessionStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	enforcer, err := newEnforcer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Casbin: %w", err)
	}

	return &Service{
		config:   cfg,
		users:    users,
		enforcer: enforcer,
		sessions: store,
		now:      time.Now,
	}, nil
}

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && keyMatch(r.act, p.act)
`

// newEnforcer builds the in-memory RBAC enforcer with the console's role policies.
func newEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		// Admins can do everything, including finishing setup
		{models.RoleAdmin, "*", "*"},

		{models.RoleEditor, string(ResourceTTS), string(ActionRead)},
		{models.RoleEditor, string(ResourceUsers), string(ActionRead)},

		{models.RoleViewer, string(ResourceTTS), string(ActionRead)},
	}

	for _, p := range policies {
		added, err := enforcer.AddPolicy(p)
		if err != nil {
			return nil, fmt.Errorf("failed to add RBAC policy %v: %w", p, err)
		}
		if !added {
			logger.Debug("RBAC policy already exists: %v", p)
		}
	}

	return enforcer, nil
}

// Can reports whether role may perform act on obj.
func (s *Service) Can(role string, obj Resource, act Action) (bool, error) {
	return s.enforcer.Enforce(role, string(obj), string(act))
}

// SessionMiddleware returns the Gin middleware for session management.
func (s *Service) SessionMiddleware() gin.HandlerFunc {
	return s.sessions.Middleware()
}

// Session retrieves the current session for the request context.
func (s *Service) Session(c *gin.Context) Session {
	return s.sessions.Get(c)
}

// Middleware returns the Gin middleware for authentication enforcement.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := s.sessions.Get(c)

		userID, ok := SessionUserID(session)
		if !ok {
			utils.ProblemAuthentication(c, "Authentication required")
			c.Abort()
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), userID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			logger.Error("Failed to load session user %d: %v", userID, err)
			utils.ProblemInternalServer(c, "Failed to load user")
			c.Abort()
			return
		}
		if err != nil || user.SuspendedAt != nil {
			ClearSessionAuth(session)
			if saveErr := session.Save(c); saveErr != nil {
				logger.Error("Failed to save session during cleanup: %v", saveErr)
			}
			utils.ProblemAuthentication(c, "Invalid session")
			c.Abort()
			return
		}

		SetUserContext(c, UserContext{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})

		c.Next()
	}
}

// RequirePermission returns middleware that enforces role-based access control.
func (s *Service) RequirePermission(obj Resource, act Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, roleOk := UserRole(c)
		if !roleOk {
			logger.Error("RequirePermission: user role not found in context")
			utils.ProblemAuthentication(c, "Authentication required")
			c.Abort()
			return
		}

		allowed, err := s.Can(role, obj, act)
		if err != nil {
			utils.ProblemInternalServer(c, "Permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			utils.ProblemForbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// LocalLogin authenticates a user using username and password and starts a session.
func (s *Service) LocalLogin(c *gin.Context, username, password string) (*models.User, error) {
	ctx := c.Request.Context()

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error("Failed to look up user %q: %v", username, err)
		}
		metrics.Logins.WithLabelValues("invalid").Inc()
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if user.SuspendedAt != nil {
		metrics.Logins.WithLabelValues("suspended").Inc()
		return nil, apperrors.Unauthorized("Account is suspended")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		// Log but don't block: the caller gets invalid credentials either way.
		if updateErr := s.users.RecordLoginFailure(ctx, user.ID); updateErr != nil {
			logger.Error("Failed to update login failure stats: %v", updateErr)
		}
		metrics.Logins.WithLabelValues("invalid").Inc()
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := s.users.RecordLoginSuccess(ctx, user.ID, s.now()); err != nil {
		return nil, apperrors.TranslateRepoError("AuthService.LocalLogin", "User", err)
	}

	if err := s.CreateSession(c, user); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return user, nil
}

// Logout removes the login from the session. Client flags stored in the same
// session, like the admin first-login marker, stay in place.
func (s *Service) Logout(c *gin.Context) error {
	session := s.sessions.Get(c)
	ClearSessionAuth(session)
	if err := session.Save(c); err != nil {
		logger.Error("Failed to save session during logout: %v", err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// CreateSession creates a new session for the authenticated user.
func (s *Service) CreateSession(c *gin.Context, user *models.User) error {
	session := s.sessions.Get(c)
	SetSessionAuth(session, SessionData{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	return session.Save(c)
}
