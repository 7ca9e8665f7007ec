// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"cargohook/internal/cargo"
	"cargohook/internal/config"
	"cargohook/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runHook is the shared body of every hook subcommand: locate Cargo roots,
// resolve the changed files to run directories, and dispatch one cargo
// invocation per directory. An empty run set is the common case (the commit
// touched no Rust-relevant files) and succeeds without doing any work.
func runHook(cmd *cobra.Command, action cargo.Action, mods cargo.Modifiers, files []string) error {
	roots, err := cargo.FindRootDirs(".")
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("scan for Cargo projects").
			WithResource(".").
			WithSuggestion("Check directory permissions under the repository root").
			Wrap(err).
			BuildError()
	}
	log.Debug("discovered cargo roots", "count", len(roots))

	resolver := cargo.NewResolver(roots)
	runDirs := resolver.RunDirs(files)
	if len(runDirs) == 0 {
		log.Debug("no cargo projects affected", "changed", len(files))
		return nil
	}
	log.Debug("resolved run directories", "dirs", runDirs)

	runner := cargo.NewRunner()
	if failed := runner.Run(cmd.Context(), action, mods, runDirs); failed > 0 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(fmt.Sprintf("%d checks failed", failed)))
		return &ExitError{Code: 1}
	}
	return nil
}

// fmtModifiers merges the --config flag with configured fmt defaults.
// The flag wins whenever it was set on the command line, even to empty.
func fmtModifiers(cfg *config.Config, flagConfig string, flagSet bool) (cargo.Modifiers, error) {
	mods := cargo.Modifiers{FmtConfig: flagConfig}
	if !flagSet {
		mods.FmtConfig = cfg.Fmt.Config
	}

	extra, err := config.SplitArgs(cfg.Fmt.ExtraArgs)
	if err != nil {
		return cargo.Modifiers{}, err
	}
	mods.ExtraArgs = extra
	return mods, nil
}

// checkModifiers merges the --features / --all-features flags with
// configured check defaults.
func checkModifiers(cfg *config.Config, features string, featuresSet bool, allFeatures, allSet bool) (cargo.Modifiers, error) {
	mods := cargo.Modifiers{
		Features:    features,
		AllFeatures: allFeatures,
	}
	if !featuresSet {
		mods.Features = cfg.Check.Features
	}
	if !allSet {
		mods.AllFeatures = cfg.Check.AllFeatures
	}

	extra, err := config.SplitArgs(cfg.Check.ExtraArgs)
	if err != nil {
		return cargo.Modifiers{}, err
	}
	mods.ExtraArgs = extra
	return mods, nil
}

// clippyModifiers builds modifiers from configured clippy defaults. The
// clippy hook takes no flags of its own; warnings are always denied.
func clippyModifiers(cfg *config.Config) (cargo.Modifiers, error) {
	extra, err := config.SplitArgs(cfg.Clippy.ExtraArgs)
	if err != nil {
		return cargo.Modifiers{}, err
	}
	return cargo.Modifiers{ExtraArgs: extra}, nil
}
