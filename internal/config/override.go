package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daystacklabs/daystack/models"
	"github.com/spf13/afero"
)

// The same-day capacity override lives in a small sidecar file rather than
// the snapshot store: it is settings state, not task data, and it expires
// on its own as soon as the date no longer matches.

// OverrideStore reads and writes the daily capacity override. The afero
// filesystem is injectable so tests run against a memory fs.
type OverrideStore struct {
	fs   afero.Fs
	path string
}

// NewOverrideStore creates an override store rooted at dir on the OS
// filesystem.
func NewOverrideStore(dir string) *OverrideStore {
	return NewOverrideStoreFs(afero.NewOsFs(), dir)
}

// NewOverrideStoreFs creates an override store on an explicit filesystem.
func NewOverrideStoreFs(fs afero.Fs, dir string) *OverrideStore {
	return &OverrideStore{fs: fs, path: filepath.Join(dir, OverrideFile)}
}

// Load returns the stored overrides, or nil when none exist. A missing or
// unreadable file is treated as "no override"; stale entries are the
// caller's concern (resolution ignores non-today dates).
func (o *OverrideStore) Load() []models.DailyCapacity {
	data, err := afero.ReadFile(o.fs, o.path)
	if err != nil {
		return nil
	}
	var overrides []models.DailyCapacity
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil
	}
	return overrides
}

// Find returns the override for a domain, or nil.
func (o *OverrideStore) Find(domain models.Domain) *models.DailyCapacity {
	for _, ov := range o.Load() {
		if ov.Domain == domain {
			return &ov
		}
	}
	return nil
}

// Save upserts the override for its domain, replacing any previous entry.
func (o *OverrideStore) Save(override models.DailyCapacity) error {
	if err := models.ValidateStruct(override); err != nil {
		return fmt.Errorf("invalid capacity override: %w", err)
	}
	overrides := o.Load()
	replaced := false
	for i, ov := range overrides {
		if ov.Domain == override.Domain {
			overrides[i] = override
			replaced = true
			break
		}
	}
	if !replaced {
		overrides = append(overrides, override)
	}

	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal capacity override: %w", err)
	}
	if dir := filepath.Dir(o.path); dir != "." && dir != "" {
		if err := o.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create override directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(o.fs, o.path, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("failed to write capacity override: %w", err)
	}
	return nil
}

// Clear removes the override for a domain.
func (o *OverrideStore) Clear(domain models.Domain) error {
	overrides := o.Load()
	kept := overrides[:0]
	for _, ov := range overrides {
		if ov.Domain != domain {
			kept = append(kept, ov)
		}
	}
	if len(kept) == 0 {
		if err := o.fs.Remove(o.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove capacity override: %w", err)
		}
		return nil
	}
	data, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal capacity override: %w", err)
	}
	return afero.WriteFile(o.fs, o.path, data, os.FileMode(0o644))
}
