// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cargohook/internal/cargo"
	"cargohook/internal/config"
	"cargohook/internal/issue"

	"github.com/spf13/cobra"
)

var (
	// checkFeatures holds the --features flag value.
	checkFeatures string
	// checkAllFeatures holds the --all-features flag value.
	checkAllFeatures bool

	// checkCmd runs `cargo check` in every project owning a changed file.
	checkCmd = &cobra.Command{
		Use:   "check [files...]",
		Short: "Run the cargo check hook",
		Long: `Run 'cargo check' in every Cargo project that owns a changed file.

--all-features activates every available feature and supersedes --features
when both are given.

Examples:
  cargohook check src/lib.rs
  cargohook check --features serde,tokio src/lib.rs
  cargohook check --all-features Cargo.toml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := checkModifiers(
				config.Get(),
				checkFeatures, cmd.Flags().Changed("features"),
				checkAllFeatures, cmd.Flags().Changed("all-features"),
			)
			if err != nil {
				return issue.WrapWithOperation(err, "prepare check arguments")
			}
			return runHook(cmd, cargo.ActionCheck, mods, args)
		},
	}
)

func init() {
	checkCmd.Flags().StringVar(&checkFeatures, "features", "", "comma-separated list of features to check")
	checkCmd.Flags().BoolVar(&checkAllFeatures, "all-features", false, "activate all available features")
}
