// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"path/filepath"
	"sort"
	"strings"
)

// Resolver maps changed files onto the Cargo roots that own them. The depth
// cache lives on the resolver value, so it is discarded together with the
// run that populated it.
type Resolver struct {
	roots  []string
	depths map[string]int
}

// NewResolver creates a resolver over the given root directory set.
func NewResolver(roots []string) *Resolver {
	return &Resolver{
		roots:  roots,
		depths: make(map[string]int, len(roots)),
	}
}

// RunDirs returns the set of root directories that own at least one
// recognized changed file. Each file resolves to its deepest ancestor root;
// files that are not Rust-relevant, or that sit outside every known root,
// are skipped without error. The result is sorted for stable output.
func (r *Resolver) RunDirs(changed []string) []string {
	seen := make(map[string]struct{})
	var dirs []string

	for _, f := range changed {
		if !IsRustFile(f) {
			continue
		}
		root, ok := r.deepestRoot(f)
		if !ok {
			// The file may belong to a project outside this run's scope.
			continue
		}
		if _, dup := seen[root]; !dup {
			seen[root] = struct{}{}
			dirs = append(dirs, root)
		}
	}

	sort.Strings(dirs)
	return dirs
}

// deepestRoot selects the most specific root that is an ancestor of path.
// Distinct real directories can never tie on depth while both being
// ancestors of the same file, but degenerate inputs (duplicate or unclean
// root entries) break the tie lexicographically so the choice stays
// deterministic.
func (r *Resolver) deepestRoot(path string) (string, bool) {
	best := ""
	bestDepth := -1
	found := false

	for _, root := range r.roots {
		if !isAncestor(root, path) {
			continue
		}
		d := r.depth(root)
		if !found || d > bestDepth || (d == bestDepth && root < best) {
			best = root
			bestDepth = d
			found = true
		}
	}
	return best, found
}

// depth counts the path segments of the cleaned path, memoized per resolver.
func (r *Resolver) depth(p string) int {
	if d, ok := r.depths[p]; ok {
		return d
	}
	d := len(strings.Split(filepath.Clean(p), string(filepath.Separator)))
	r.depths[p] = d
	return d
}

// IsRustFile reports whether path is relevant to the cargo hooks: a Rust
// source file, the project manifest, or the dependency lockfile.
func IsRustFile(path string) bool {
	if filepath.Ext(path) == ".rs" {
		return true
	}
	name := filepath.Base(path)
	return name == ManifestName || name == LockfileName
}

// isAncestor reports whether dir is a path-prefix ancestor of path (or the
// path itself). Mixing absolute and relative paths fails the test rather
// than erroring; such a pair can never be in an ancestor relationship here.
func isAncestor(dir, path string) bool {
	if filepath.IsAbs(dir) != filepath.IsAbs(path) {
		return false
	}
	if dir == "." {
		return true
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
