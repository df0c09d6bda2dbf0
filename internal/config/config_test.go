package config

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, StoreTypeCookie, cfg.Auth.SessionStore)
	assert.Equal(t, 86400, cfg.Auth.SessionMaxAge)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONSOLE_DB_PORT", "3307")
	t.Setenv("CONSOLE_SESSION_STORE", "memory")
	t.Setenv("CONSOLE_COOKIE_SAMESITE", "strict")
	t.Setenv("CONSOLE_DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, StoreTypeMemory, cfg.Auth.SessionStore)
	assert.Equal(t, http.SameSiteStrictMode, cfg.Auth.CookieSameSite.ToHTTP())
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port", key: "CONSOLE_DB_PORT", value: "abc"},
		{name: "environment", key: "CONSOLE_ENV", value: "staging"},
		{name: "session store", key: "CONSOLE_SESSION_STORE", value: "redis"},
		{name: "same site", key: "CONSOLE_COOKIE_SAMESITE", value: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestProductionRequiresSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONSOLE_ENV", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "must be changed in production")

	t.Setenv("CONSOLE_SESSION_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Environment.IsProduction())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
