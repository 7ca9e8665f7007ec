// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cargohook/internal/issue"

	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const (
	// AppName is the application name.
	AppName = "cargohook"
	// ConfigFileName is the name of the user-level config file.
	ConfigFileName = "config.toml"
	// LocalConfigFileName is the repo-local config file checked in the
	// current directory; it takes precedence over the user-level file.
	LocalConfigFileName = ".cargohook.toml"
)

// ConfigDir returns the cargohook configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
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

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// LoadWithOptions performs option-driven config loading without touching
// package-level cache state. Callers that want caching use Load instead.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(opts)
	return cfg, err
}

func loadWithOptions(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("fmt.config", defaults.Fmt.Config)
	v.SetDefault("fmt.extra_args", defaults.Fmt.ExtraArgs)
	v.SetDefault("check.features", defaults.Check.Features)
	v.SetDefault("check.all_features", defaults.Check.AllFeatures)
	v.SetDefault("check.extra_args", defaults.Check.ExtraArgs)
	v.SetDefault("clippy.extra_args", defaults.Clippy.ExtraArgs)

	resolvedPath := ""

	// If a custom config file path is set via --config-file, use it exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		// Repo-local config wins over the user-level file.
		if fileExists(LocalConfigFileName) {
			resolvedPath = LocalConfigFileName
		} else {
			cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
			if err != nil {
				return nil, "", err
			}
			userPath := filepath.Join(cfgDir, ConfigFileName)
			if fileExists(userPath) {
				resolvedPath = userPath
			}
			// If no config file found, use defaults (no error)
		}
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid TOML").
				WithSuggestion("Remove the file to fall back to defaults").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// SplitArgs splits a configured extra-args string into discrete argv
// elements using shell field-splitting rules, so quoted values containing
// spaces survive as single arguments. An empty string yields no arguments.
func SplitArgs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	fields, err := shell.Fields(s, nil)
	if err != nil {
		return nil, fmt.Errorf("splitting extra arguments %q: %w", s, err)
	}
	return fields, nil
}
