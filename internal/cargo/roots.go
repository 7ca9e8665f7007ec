// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// ManifestName is the Cargo project manifest; its directory is a root.
	ManifestName = "Cargo.toml"
	// LockfileName is the resolved dependency lock file.
	LockfileName = "Cargo.lock"
)

// FindRootDirs returns every directory under baseDir that directly contains
// a Cargo.toml. The scan is recursive, so nested workspace members are
// reported alongside their enclosing workspace. Ordering is unspecified;
// callers treat the result as a set.
//
// A filesystem error during the scan fails the whole invocation — there is
// no meaningful partial answer for "which projects exist".
func FindRootDirs(baseDir string) ([]string, error) {
	pattern := filepath.Join(baseDir, "**", ManifestName)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning %s for %s: %w", baseDir, ManifestName, err)
	}

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		dirs = append(dirs, filepath.Dir(m))
	}
	return dirs, nil
}
