// SPDX-License-Identifier: MPL-2.0

package config

import "sync"

var (
	mu sync.Mutex

	// loaded caches the configuration for the lifetime of the process.
	// A hook run loads config exactly once, before any directory processing.
	loaded *Config

	// cfgFileOverride is set from the --config-file flag.
	cfgFileOverride string

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
)

// SetConfigFilePathOverride forces subsequent loads to read the given file.
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	cfgFileOverride = path
	loaded = nil
}

// SetConfigDirOverride sets a custom config directory path. Primarily
// intended for testing to bypass os.UserHomeDir().
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = dir
	loaded = nil
}

// Reset clears overrides and the cached config. Call from test cleanup.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cfgFileOverride = ""
	configDirOverride = ""
	loaded = nil
}

// Load reads the configuration, caching the result. On error the defaults
// are cached so callers of Get always see a usable config.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if loaded != nil {
		return loaded, nil
	}

	cfg, _, err := loadWithOptions(LoadOptions{ConfigFilePath: cfgFileOverride})
	if err != nil {
		loaded = DefaultConfig()
		return nil, err
	}

	loaded = cfg
	return loaded, nil
}

// Get returns the cached configuration, loading it on first use. Load
// errors degrade to defaults here; callers that need to surface them call
// Load directly.
func Get() *Config {
	mu.Lock()
	cached := loaded
	mu.Unlock()

	if cached != nil {
		return cached
	}

	cfg, err := Load()
	if err != nil || cfg == nil {
		return DefaultConfig()
	}
	return cfg
}
