package auth

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"

	"github.com/voiceconsole/manager/internal/config"
)

// GinSessionStore implements SessionStore using gin-contrib/sessions
type GinSessionStore struct {
	name  string
	store sessions.Store
}

// NewGinSessionStore creates a session store using gin-contrib/sessions.
func NewGinSessionStore(cfg SessionConfig) (*GinSessionStore, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required for sessions")
	}

	var store sessions.Store
	switch cfg.StoreType {
	case config.StoreTypeMemory:
		store = memstore.NewStore([]byte(cfg.SecretKey))
	default:
		// Signed cookie sessions survive restarts, the way browser storage does.
		store = cookie.NewStore([]byte(cfg.SecretKey))
	}

	store.Options(sessions.Options{
		Path:     cfg.CookiePath,
		Domain:   cfg.CookieDomain,
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.CookieSecure,
		HttpOnly: cfg.CookieHTTPOnly,
		SameSite: cfg.CookieSameSite.ToHTTP(),
	})

	name := cfg.CookieName
	if name == "" {
		name = "console_session"
	}
	return &GinSessionStore{name: name, store: store}, nil
}

// Middleware installs the gin-contrib/sessions handler for this store.
func (s *GinSessionStore) Middleware() gin.HandlerFunc {
	return sessions.Sessions(s.name, s.store)
}

// Get returns a session for the given context
func (s *GinSessionStore) Get(c *gin.Context) Session {
	return &ginSession{session: sessions.Default(c)}
}

// ginSession implements Session interface
type ginSession struct {
	session sessions.Session
}

func (s *ginSession) Get(key string) any {
	return s.session.Get(key)
}

func (s *ginSession) Set(key string, value any) {
	s.session.Set(key, value)
}

func (s *ginSession) Delete(key string) {
	s.session.Delete(key)
}

func (s *ginSession) Clear() {
	s.session.Clear()
}

func (s *ginSession) Save(_ *gin.Context) error {
	return s.session.Save()
}
