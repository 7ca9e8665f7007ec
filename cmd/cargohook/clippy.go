// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cargohook/internal/cargo"
	"cargohook/internal/config"
	"cargohook/internal/issue"

	"github.com/spf13/cobra"
)

// clippyCmd runs `cargo clippy` in every project owning a changed file.
// Warnings are always denied so lints block the commit.
var clippyCmd = &cobra.Command{
	Use:   "clippy [files...]",
	Short: "Run the cargo clippy hook",
	Long: `Run 'cargo clippy -- -D warnings' in every Cargo project that owns a
changed file. Warnings are treated as failures.

Examples:
  cargohook clippy src/lib.rs crates/api/src/main.rs`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mods, err := clippyModifiers(config.Get())
		if err != nil {
			return issue.WrapWithOperation(err, "prepare clippy arguments")
		}
		return runHook(cmd, cargo.ActionClippy, mods, args)
	},
}
