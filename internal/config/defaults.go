// Package config provides centralized configuration constants and the
// capacity-override writer for daystack. All default values live here to
// keep a single source of truth.
package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultRootDir is the per-project daystack directory.
	DefaultRootDir = ".daystack"

	// DefaultDataDir is the data directory under the root dir.
	DefaultDataDir = "data"

	// DefaultDataFile is the snapshot file name.
	DefaultDataFile = "daystack.json"

	// DefaultDataFormat is the snapshot serialization format.
	DefaultDataFormat = "json"

	// OverrideFile stores the same-day capacity override next to the data
	// file.
	OverrideFile = "capacity-override.json"
)

// GetGlobalConfigDir returns the path to the global configuration directory
// (~/.daystack). It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".daystack"), nil
}
