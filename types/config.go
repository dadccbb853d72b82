/*
Copyright © 2026 Daystack Labs
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose"`
	JSON     bool           `mapstructure:"json"`
	Config   string         `mapstructure:"config"`
	Project  ProjectConfig  `mapstructure:"project" validate:"required"`
	Data     DataConfig     `mapstructure:"data" validate:"required"`
	Capacity CapacityConfig `mapstructure:"capacity"`
	Stack    StackConfig    `mapstructure:"stack"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
	DataDir string `mapstructure:"dataDir" validate:"required"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
}

// CapacityConfig holds the persistent per-domain available-minutes defaults.
// A zero value means "not configured"; the stack builder falls back to its
// built-in default in that case.
type CapacityConfig struct {
	Life int `mapstructure:"life" validate:"min=0"`
	Work int `mapstructure:"work" validate:"min=0"`
}

// StackConfig holds daily-stack selection settings.
type StackConfig struct {
	// MaxTasks caps the combined pinned+suggested size of the daily stack.
	MaxTasks int `mapstructure:"maxTasks" validate:"omitempty,min=1"`
}
