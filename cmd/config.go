/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daystacklabs/daystack/internal/config"
	"github.com/daystacklabs/daystack/internal/logger"
	"github.com/daystacklabs/daystack/types"
)

const (
	configName = ".daystack"
	envPrefix  = "DAYSTACK"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present; absence is fine.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., DAYSTACK_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		// Prefer a project-local .daystack directory, then fall back to
		// $HOME and the working directory.
		if _, err := os.Stat(config.DefaultRootDir); !os.IsNotExist(err) {
			viper.AddConfigPath(config.DefaultRootDir)
			viper.SetConfigName(configName)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigName(configName)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("project.rootDir", config.DefaultRootDir)
	viper.SetDefault("project.dataDir", config.DefaultDataDir)
	viper.SetDefault("data.file", config.DefaultDataFile)
	viper.SetDefault("data.format", config.DefaultDataFormat)
	viper.SetDefault("capacity.life", 0)
	viper.SetDefault("capacity.work", 0)
	viper.SetDefault("stack.maxTasks", 0)

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// Handle a config file that exists but omits these nested keys.
	if GlobalAppConfig.Project.RootDir == "" {
		GlobalAppConfig.Project.RootDir = viper.GetString("project.rootDir")
	}
	if GlobalAppConfig.Project.DataDir == "" {
		GlobalAppConfig.Project.DataDir = viper.GetString("project.dataDir")
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}

	logger.SetBasePath(GlobalAppConfig.Project.RootDir)
	logger.SetVersion(version)
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
