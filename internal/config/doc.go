// SPDX-License-Identifier: MPL-2.0

// Package config handles cargohook configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from ~/.config/cargohook/config.toml (or the XDG
// equivalent on Linux, ~/Library/Application Support/cargohook/config.toml
// on macOS, %APPDATA%\cargohook\config.toml on Windows), with a repo-local
// .cargohook.toml in the current directory taking precedence when present.
// A missing config file is not an error; every setting has a usable default
// and CLI flags override whatever the file provides.
package config
