// Package config manages the persistent CLI configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the persistent configuration. Zero values mean "use the
// built-in default".
type Config struct {
	DBPath        string `json:"db_path,omitempty"`
	CataloguePath string `json:"catalogue_path,omitempty"`
	MaxDepth      int    `json:"max_depth,omitempty"`
	LastImportID  string `json:"last_import_id,omitempty"`
}

// File manages the configuration file.
type File struct {
	path   string
	config Config
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubealg")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "config.json"), nil
}

// NewFile creates a configuration manager for path, loading it if it exists.
func NewFile(path string) (*File, error) {
	f := &File{path: path}

	if err := f.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return f, nil
}

// NewDefaultFile creates a configuration manager with the default path.
func NewDefaultFile() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewFile(path)
}

// Load loads the configuration from disk.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	f.config = c
	return nil
}

// Save saves the configuration to disk.
func (f *File) Save() error {
	data, err := json.MarshalIndent(f.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the configuration file path.
func (f *File) Path() string {
	return f.path
}

// Config returns the current configuration.
func (f *File) Config() Config {
	return f.config
}

// SetDBPath sets the database path.
func (f *File) SetDBPath(path string) error {
	f.config.DBPath = path
	return f.Save()
}

// SetCataloguePath sets the catalogue YAML path.
func (f *File) SetCataloguePath(path string) error {
	f.config.CataloguePath = path
	return f.Save()
}

// SetMaxDepth sets the reference depth bound. Zero restores the default.
func (f *File) SetMaxDepth(n int) error {
	if n < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", n)
	}
	f.config.MaxDepth = n
	return f.Save()
}

// SetLastImport records the most recent catalogue import.
func (f *File) SetLastImport(importID string) error {
	f.config.LastImportID = importID
	return f.Save()
}

// Set assigns a value by its JSON key.
func (f *File) Set(key, value string) error {
	switch key {
	case "db_path":
		return f.SetDBPath(value)
	case "catalogue_path":
		return f.SetCataloguePath(value)
	case "max_depth":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return fmt.Errorf("invalid max_depth %q: %w", value, err)
		}
		return f.SetMaxDepth(n)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}
