// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the top-level cargohook configuration.
	Config struct {
		// Verbose enables debug logging of root discovery, run-directory
		// resolution, and per-directory command lines.
		Verbose bool `mapstructure:"verbose"`

		// Fmt holds defaults for the fmt hook.
		Fmt FmtConfig `mapstructure:"fmt"`
		// Check holds defaults for the check hook.
		Check CheckConfig `mapstructure:"check"`
		// Clippy holds defaults for the clippy hook.
		Clippy ClippyConfig `mapstructure:"clippy"`
	}

	// FmtConfig configures the `cargohook fmt` hook.
	FmtConfig struct {
		// Config is the default comma-separated key=value pair list
		// forwarded to rustfmt via --config. The --config flag overrides it.
		Config string `mapstructure:"config"`
		// ExtraArgs is a shell-style string of additional arguments
		// appended to every fmt invocation.
		ExtraArgs string `mapstructure:"extra_args"`
	}

	// CheckConfig configures the `cargohook check` hook.
	CheckConfig struct {
		// Features is the default comma-separated feature list. The
		// --features flag overrides it.
		Features string `mapstructure:"features"`
		// AllFeatures activates every available feature by default.
		AllFeatures bool `mapstructure:"all_features"`
		// ExtraArgs is a shell-style string of additional arguments
		// appended to every check invocation.
		ExtraArgs string `mapstructure:"extra_args"`
	}

	// ClippyConfig configures the `cargohook clippy` hook.
	ClippyConfig struct {
		// ExtraArgs is a shell-style string of additional arguments
		// appended to every clippy invocation (after `-- -D warnings`,
		// so they reach the linter itself).
		ExtraArgs string `mapstructure:"extra_args"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{}
}
