package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/jsonc"

	"github.com/libforge/phpgen/internal/defs"
)

// Store is a key-value view of the global settings file. Values are kept
// as raw JSON until a caller decodes them. Changes stay in memory until
// Save is called.
//
// A Store is not safe for concurrent use.
type Store struct {
	path   string
	values map[string]json.RawMessage
}

// DefaultSettingsPath returns the settings file location inside the user
// config directory ($XDG_CONFIG_HOME or ~/.config on Linux).
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: locate user config dir: %w", ErrStoreUnavailable, err)
	}
	return filepath.Join(dir, defs.AppDir, defs.SettingsJSON), nil
}

// Open reads the settings file at path. A missing or empty file yields an
// empty store. Comments and trailing commas are accepted so the file can be
// edited by hand.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   filepath.Clean(path),
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrStoreUnavailable, s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, s.path, err)
	}
	if values != nil {
		s.values = values
	}
	return s, nil
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the raw JSON value stored under key.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// GetInto decodes the value stored under key into target. It returns false
// without touching target when the key is absent.
func (s *Store) GetInto(key string, target any) (bool, error) {
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return true, fmt.Errorf("%w: key %q: %w", ErrInvalidValue, key, err)
	}
	return true, nil
}

// GetString returns the string stored under key, or "" when the key is
// absent or does not hold a string.
func (s *Store) GetString(key string) string {
	var v string
	if _, err := s.GetInto(key, &v); err != nil {
		return ""
	}
	return v
}

// Set encodes value as JSON and stores it under key in memory.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrInvalidValue, key, err)
	}
	s.values[key] = raw
	return nil
}

// Delete removes key. It reports whether the key was present.
func (s *Store) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	return true
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Save writes the settings to disk atomically, creating the parent
// directory when needed.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode settings: %w", ErrInvalidValue, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), defs.DirPerm); err != nil {
		return fmt.Errorf("%w: create settings directory: %w", ErrStoreUnavailable, err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".phpgen-settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
