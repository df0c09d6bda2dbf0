package routing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FlagReader reads persisted client-scoped flags.
type FlagReader interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool)
}

// FlagWriter persists client-scoped flags.
type FlagWriter interface {
	Set(key, value string) error
}

// FlagStore is a readable and writable flag store.
type FlagStore interface {
	FlagReader
	FlagWriter
}

// MapFlags is an in-memory FlagStore.
type MapFlags map[string]string

// Get implements FlagReader.
func (m MapFlags) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements FlagWriter.
func (m MapFlags) Set(key, value string) error {
	m[key] = value
	return nil
}

// SessionValues is the part of an HTTP session the session adapter needs.
// auth.Session satisfies it.
type SessionValues interface {
	Get(key string) any
	Set(key string, value any)
}

// SessionFlags exposes session values as flags. Non-string values are formatted
// with fmt so a stored bool or number still reads as set.
type SessionFlags struct {
	Session SessionValues
}

// Get implements FlagReader.
func (s SessionFlags) Get(key string) (string, bool) {
	if s.Session == nil {
		return "", false
	}
	switch v := s.Session.Get(key).(type) {
	case nil:
		return "", false
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

// Set implements FlagWriter. The caller is responsible for saving the session.
func (s SessionFlags) Set(key, value string) error {
	if s.Session == nil {
		return errors.New("no session")
	}
	s.Session.Set(key, value)
	return nil
}

// FileFlags stores flags in a YAML file, the CLI's equivalent of browser storage.
type FileFlags struct {
	path string
	mu   sync.Mutex
}

// NewFileFlags returns a file-backed store at path. The file is created on first Set.
func NewFileFlags(path string) *FileFlags {
	return &FileFlags{path: path}
}

// Path returns the backing file path.
func (f *FileFlags) Path() string {
	return f.path
}

// Get implements FlagReader. A missing or unreadable file reads as no flags.
func (f *FileFlags) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

// Set implements FlagWriter.
func (f *FileFlags) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

func (f *FileFlags) load() (map[string]string, error) {
	values := map[string]string{}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", f.path, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
