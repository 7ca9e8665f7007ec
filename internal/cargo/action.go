// SPDX-License-Identifier: MPL-2.0

package cargo

const (
	// ActionFmt runs `cargo fmt` in each affected project.
	ActionFmt Action = iota
	// ActionCheck runs `cargo check` in each affected project.
	ActionCheck
	// ActionClippy runs `cargo clippy` with warnings denied.
	ActionClippy
)

type (
	// Action identifies which cargo subcommand a hook invocation runs.
	Action int

	// Modifiers carries the per-action options forwarded to cargo. Fields
	// that do not apply to the selected action are ignored.
	Modifiers struct {
		// FmtConfig is a comma-separated key=value pair list passed to
		// rustfmt via `--config` (fmt only).
		FmtConfig string
		// Features is a comma-separated feature list passed via
		// `--features` (check only).
		Features string
		// AllFeatures activates every available feature (check only).
		// When set it takes precedence over Features.
		AllFeatures bool
		// ExtraArgs are appended verbatim after the action's own arguments.
		ExtraArgs []string
	}
)

// String returns the cargo subcommand name for the action.
func (a Action) String() string {
	switch a {
	case ActionFmt:
		return "fmt"
	case ActionCheck:
		return "check"
	case ActionClippy:
		return "clippy"
	default:
		return "unknown"
	}
}

// Args builds the argument vector for the action, without the leading cargo
// binary name. Arguments are kept as discrete elements rather than a joined
// command string, so modifier values containing spaces or quotes never go
// through shell interpretation.
func (a Action) Args(mods Modifiers) []string {
	var args []string

	switch a {
	case ActionFmt:
		args = []string{"fmt", "--"}
		if mods.FmtConfig != "" {
			args = append(args, "--config", mods.FmtConfig)
		}
	case ActionCheck:
		args = []string{"check"}
		// --all-features supersedes an explicit feature list.
		if mods.AllFeatures {
			args = append(args, "--all-features")
		} else if mods.Features != "" {
			args = append(args, "--features", mods.Features)
		}
	case ActionClippy:
		args = []string{"clippy", "--", "-D", "warnings"}
	}

	return append(args, mods.ExtraArgs...)
}
