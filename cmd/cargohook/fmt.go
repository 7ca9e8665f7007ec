// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cargohook/internal/cargo"
	"cargohook/internal/config"
	"cargohook/internal/issue"

	"github.com/spf13/cobra"
)

var (
	// fmtConfig holds the --config flag value (rustfmt key=value pairs).
	fmtConfig string

	// fmtCmd runs `cargo fmt` in every project owning a changed file.
	fmtCmd = &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Run the rustfmt (cargo fmt) hook",
		Long: `Run 'cargo fmt --' in every Cargo project that owns a changed file.

A non-zero cargo fmt exit means files were reformatted (or rejected); the
hook fails so the commit stops and the reformatted files can be re-staged.

Examples:
  cargohook fmt src/lib.rs crates/api/src/main.rs
  cargohook fmt --config max_width=120 src/lib.rs`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := fmtModifiers(config.Get(), fmtConfig, cmd.Flags().Changed("config"))
			if err != nil {
				return issue.WrapWithOperation(err, "prepare fmt arguments")
			}
			return runHook(cmd, cargo.ActionFmt, mods, args)
		},
	}
)

func init() {
	fmtCmd.Flags().StringVar(&fmtConfig, "config", "", "comma-separated key=value config pairs for rustfmt")
}
