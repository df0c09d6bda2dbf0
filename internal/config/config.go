// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	// LogLevel is one of debug, info, warn, error
	LogLevel    string
	Environment Environment
}

// ServerConfig holds HTTP server and CORS configuration.
type ServerConfig struct {
	Address string
	// AllowedOrigins is a comma-separated list of allowed origins for CORS
	AllowedOrigins string
}

// DatabaseConfig holds MySQL database connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// AutoMigrate applies the embedded schema migrations on start-up
	AutoMigrate bool
}

// AuthConfig holds session and password policy configuration.
type AuthConfig struct {
	// SessionSecret must be changed from default in production
	SessionSecret string
	SessionStore  SessionStoreType
	// SessionMaxAge in seconds
	SessionMaxAge int

	CookieName     string
	CookieDomain   string
	CookieSameSite CookieSameSite

	MinPasswordLength int
}

// Load reads configuration from environment variables. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	port, err := getEnvInt("CONSOLE_DB_PORT", 3306)
	if err != nil {
		return nil, err
	}
	maxAge, err := getEnvInt("CONSOLE_SESSION_MAX_AGE", 86400)
	if err != nil {
		return nil, err
	}
	minPassword, err := getEnvInt("CONSOLE_MIN_PASSWORD_LENGTH", 8)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:        getEnv("CONSOLE_SERVER_ADDRESS", ":8080"),
			AllowedOrigins: getEnv("CONSOLE_ALLOWED_ORIGINS", ""),
		},
		Database: DatabaseConfig{
			Host:        getEnv("CONSOLE_DB_HOST", "localhost"),
			Port:        port,
			User:        getEnv("CONSOLE_DB_USER", "console"),
			Password:    getEnv("CONSOLE_DB_PASSWORD", "console"),
			Database:    getEnv("CONSOLE_DB_NAME", "console"),
			AutoMigrate: getEnv("CONSOLE_DB_AUTO_MIGRATE", "true") == "true",
		},
		Auth: AuthConfig{
			SessionSecret:     getEnv("CONSOLE_SESSION_SECRET", "your-secret-key-change-in-production"),
			SessionStore:      SessionStoreType(getEnv("CONSOLE_SESSION_STORE", string(StoreTypeCookie))),
			SessionMaxAge:     maxAge,
			CookieName:        getEnv("CONSOLE_COOKIE_NAME", "console_session"),
			CookieDomain:      getEnv("CONSOLE_COOKIE_DOMAIN", ""),
			CookieSameSite:    CookieSameSite(getEnv("CONSOLE_COOKIE_SAMESITE", string(SameSiteLax))),
			MinPasswordLength: minPassword,
		},
		LogLevel:    getEnv("CONSOLE_LOG_LEVEL", "info"),
		Environment: Environment(getEnv("CONSOLE_ENV", string(EnvDevelopment))),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enum fields and production-only requirements.
func (c *Config) Validate() error {
	if !c.Environment.IsValid() {
		return fmt.Errorf("invalid CONSOLE_ENV %q", c.Environment)
	}
	if !c.Auth.SessionStore.IsValid() {
		return fmt.Errorf("invalid CONSOLE_SESSION_STORE %q", c.Auth.SessionStore)
	}
	if !c.Auth.CookieSameSite.IsValid() {
		return fmt.Errorf("invalid CONSOLE_COOKIE_SAMESITE %q", c.Auth.CookieSameSite)
	}
	if c.Auth.SessionSecret == "" {
		return fmt.Errorf("CONSOLE_SESSION_SECRET must not be empty")
	}
	if c.Environment.IsProduction() && c.Auth.SessionSecret == "your-secret-key-change-in-production" {
		return fmt.Errorf("CONSOLE_SESSION_SECRET must be changed in production")
	}
	return nil
}

// getEnv returns the value of the environment variable key, or defaultValue if unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
