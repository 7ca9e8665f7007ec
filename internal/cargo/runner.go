// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultBin is the cargo binary looked up on PATH.
const DefaultBin = "cargo"

// Runner executes one cargo invocation per run directory. Output streams
// are inherited so the underlying toolchain's diagnostics reach the user
// unmodified.
type Runner struct {
	// Bin is the cargo binary to invoke. Tests point this at a stub.
	Bin string
	// Stdout and Stderr receive the subprocess output.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a runner wired to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{
		Bin:    DefaultBin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the action once in every directory, sequentially, and
// returns the number of directories whose command failed. A failure never
// stops the remaining directories, so one broken project does not hide
// findings in the others. A failed process launch (e.g. cargo missing from
// PATH) counts as a failure for its directory rather than aborting the run.
func (r *Runner) Run(ctx context.Context, action Action, mods Modifiers, dirs []string) int {
	args := action.Args(mods)
	failed := 0

	for _, dir := range dirs {
		log.Debug("running cargo", "action", action.String(), "dir", dir, "args", strings.Join(args, " "))

		cmd := exec.CommandContext(ctx, r.Bin, args...)
		cmd.Dir = dir
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr

		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				log.Debug("cargo exited non-zero", "dir", dir, "code", exitErr.ExitCode())
			} else {
				log.Error("failed to launch cargo", "dir", dir, "err", err)
			}
			failed++
		}
	}

	return failed
}
