// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cargohook.
//
// This package implements the Cobra command hierarchy for the cargohook
// pre-commit helper: the root command plus the fmt, check, and clippy hook
// subcommands. Each subcommand receives the changed-file list as trailing
// positional arguments, the way pre-commit frameworks pass staged files.
package cmd
