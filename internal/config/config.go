// SPDX-License-Identifier: MPL-2.0

// Package config loads user-level zmkenv settings (store root, fetch
// command, shell override, banner toggle) from platform config
// directories via viper, with ZMKENV_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"zmkenv-cli/internal/issue"
	"zmkenv-cli/internal/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "zmkenv"
	// ConfigFileName is the config file name (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"

	// EnvPrefix is the prefix for environment variable overrides
	// (ZMKENV_STORE_ROOT, ZMKENV_BANNER_ENABLED, ...).
	EnvPrefix = "ZMKENV"
)

// Config holds the user-level settings of zmkenv.
type Config struct {
	// StoreRoot is where the external package system materializes
	// resolved tools. Layout: <root>/<system>/<name>-<version>.
	StoreRoot string `mapstructure:"store_root"`

	// FetchCommand is the command template invoked to materialize a
	// missing tool, with {source}, {version} and {dest} placeholders.
	// Empty disables delegated fetching: missing tools fail resolution.
	FetchCommand string `mapstructure:"fetch_command"`

	// Shell overrides the interactive shell handed the session.
	// Empty falls back to $SHELL, then /bin/sh.
	Shell string `mapstructure:"shell"`

	// Banner controls the informational banner.
	Banner BannerConfig `mapstructure:"banner"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// BannerConfig controls banner invocation on environment entry.
type BannerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ConfigDir returns the zmkenv configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultStoreRoot returns the default tool store location
// (~/.cache/zmkenv/store, or the temp dir when home is unknown).
func DefaultStoreRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName, "store")
	}
	return filepath.Join(home, ".cache", AppName, "store")
}

// Load reads the config file (when present) and environment
// overrides, returning defaults otherwise. A missing file is not an
// error; an unreadable or malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("store_root", DefaultStoreRoot())
	v.SetDefault("fetch_command", "")
	v.SetDefault("shell", "")
	v.SetDefault("banner.enabled", true)
	v.SetDefault("verbose", false)

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, issue.WrapWithOperation(err, "locate config directory")
		}
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, issue.NewErrorContext().
				WithOperation("load config").
				WithResource(v.ConfigFileUsed()).
				WithSuggestion("Check the YAML syntax of your config file").
				Wrap(err).
				Build()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode config")
	}
	return &cfg, nil
}
