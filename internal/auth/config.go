package auth

import (
	"github.com/voiceconsole/manager/internal/config"
)

// Config holds the session settings of the console login.
type Config struct {
	Session SessionConfig
}

// SessionConfig defines how user sessions are stored and secured.
type SessionConfig struct {
	// Session store type: "cookie" (default) or "memory"
	StoreType config.SessionStoreType

	// Session lifetime
	MaxAge int // seconds

	// Cookie settings
	CookieName     string
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite config.CookieSameSite

	// Secret key for signing session cookies
	SecretKey string
}

// ConfigFromApp derives the auth configuration from the application config.
func ConfigFromApp(cfg *config.Config) *Config {
	return &Config{
		Session: SessionConfig{
			StoreType:      cfg.Auth.SessionStore,
			MaxAge:         cfg.Auth.SessionMaxAge,
			CookieName:     cfg.Auth.CookieName,
			CookieDomain:   cfg.Auth.CookieDomain,
			CookiePath:     "/",
			CookieSecure:   cfg.Environment.IsProduction(),
			CookieHTTPOnly: true,
			CookieSameSite: cfg.Auth.CookieSameSite,
			SecretKey:      cfg.Auth.SessionSecret,
		},
	}
}
