package routing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected string
	}{
		{name: "admin without flag", input: Input{Role: "admin"}, expected: RouteConfigWizard},
		{name: "admin with flag", input: Input{Role: "admin", FirstLoginDone: "true"}, expected: RouteDashboard},
		{name: "admin with 1", input: Input{Role: "admin", FirstLoginDone: "1"}, expected: RouteDashboard},
		{name: "admin with false string", input: Input{Role: "admin", FirstLoginDone: "false"}, expected: RouteDashboard},
		{name: "editor", input: Input{Role: "editor"}, expected: RouteConsole},
		{name: "viewer with flag", input: Input{Role: "viewer", FirstLoginDone: "true"}, expected: RouteConsole},
		{name: "empty role", input: Input{}, expected: RouteConsole},
		{name: "role is case sensitive", input: Input{Role: "Admin"}, expected: RouteConsole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.input))
		})
	}
}

func TestPostLoginPath(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		assert.Equal(t, RouteConsole, PostLoginPath(nil, MapFlags{AdminFirstLoginDoneKey: "true"}))
	})

	t.Run("nil reader", func(t *testing.T) {
		assert.Equal(t, RouteConfigWizard, PostLoginPath(&User{Role: "admin"}, nil))
	})

	t.Run("admin flag unset", func(t *testing.T) {
		assert.Equal(t, RouteConfigWizard, PostLoginPath(&User{Role: "admin"}, MapFlags{}))
	})

	t.Run("admin flag empty string", func(t *testing.T) {
		flags := MapFlags{AdminFirstLoginDoneKey: ""}
		assert.Equal(t, RouteConfigWizard, PostLoginPath(&User{Role: "admin"}, flags))
	})

	t.Run("admin flag set", func(t *testing.T) {
		flags := MapFlags{AdminFirstLoginDoneKey: "yes"}
		assert.Equal(t, RouteDashboard, PostLoginPath(&User{Role: "admin"}, flags))
	})

	t.Run("non-admin never reads flags", func(t *testing.T) {
		reader := &countingReader{}
		assert.Equal(t, RouteConsole, PostLoginPath(&User{Role: "viewer"}, reader))
		assert.Zero(t, reader.calls)
	})
}

type countingReader struct {
	calls int
}

func (c *countingReader) Get(string) (string, bool) {
	c.calls++
	return "true", true
}

type fakeSession map[string]any

func (f fakeSession) Get(key string) any { return f[key] }

func (f fakeSession) Set(key string, value any) { f[key] = value }

func TestSessionFlags(t *testing.T) {
	sess := fakeSession{}
	flags := SessionFlags{Session: sess}

	_, ok := flags.Get(AdminFirstLoginDoneKey)
	assert.False(t, ok)

	require.NoError(t, flags.Set(AdminFirstLoginDoneKey, "true"))
	value, ok := flags.Get(AdminFirstLoginDoneKey)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	sess["counter"] = 3
	value, ok = flags.Get("counter")
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	var empty SessionFlags
	_, ok = empty.Get(AdminFirstLoginDoneKey)
	assert.False(t, ok)
	assert.Error(t, empty.Set(AdminFirstLoginDoneKey, "true"))
}

func TestFileFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	flags := NewFileFlags(path)

	_, ok := flags.Get(AdminFirstLoginDoneKey)
	assert.False(t, ok, "missing file reads as unset")
	assert.Equal(t, RouteConfigWizard, PostLoginPath(&User{Role: "admin"}, flags))

	require.NoError(t, flags.Set(AdminFirstLoginDoneKey, "true"))
	require.NoError(t, flags.Set("theme", "dark"))

	reopened := NewFileFlags(path)
	value, ok := reopened.Get(AdminFirstLoginDoneKey)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
	assert.Equal(t, RouteDashboard, PostLoginPath(&User{Role: "admin"}, reopened))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "admin_first_login_done: \"true\"")
}

func TestFileFlagsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	flags := NewFileFlags(path)
	_, ok := flags.Get(AdminFirstLoginDoneKey)
	assert.False(t, ok)
	assert.Error(t, flags.Set(AdminFirstLoginDoneKey, "true"))
}
