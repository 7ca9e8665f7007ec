// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

// writeManifest creates dir (and parents) under base with an empty Cargo.toml.
func writeManifest(t *testing.T, base, dir string) {
	t.Helper()
	full := filepath.Join(base, filepath.FromSlash(dir))
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q) error = %v", full, err)
	}
	manifest := filepath.Join(full, ManifestName)
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"t\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", manifest, err)
	}
}

func TestFindRootDirs(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeManifest(t, base, ".")
	writeManifest(t, base, "crates/alpha")
	writeManifest(t, base, "crates/alpha/vendored")
	writeManifest(t, base, "tools/beta")

	// A directory without a manifest must not become a root.
	if err := os.MkdirAll(filepath.Join(base, "docs"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	got, err := FindRootDirs(base)
	if err != nil {
		t.Fatalf("FindRootDirs() error = %v", err)
	}
	sort.Strings(got)

	want := []string{
		base,
		filepath.Join(base, "crates", "alpha"),
		filepath.Join(base, "crates", "alpha", "vendored"),
		filepath.Join(base, "tools", "beta"),
	}
	sort.Strings(want)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindRootDirs() = %v, want %v", got, want)
	}
}

func TestFindRootDirs_NoManifests(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "src"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	got, err := FindRootDirs(base)
	if err != nil {
		t.Fatalf("FindRootDirs() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindRootDirs() = %v, want empty", got)
	}
}

func TestFindRootDirs_IgnoresLookalikes(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := filepath.Join(base, "proj")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	for _, name := range []string{"cargo.toml.bak", LockfileName} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile(%q) error = %v", name, err)
		}
	}

	got, err := FindRootDirs(base)
	if err != nil {
		t.Fatalf("FindRootDirs() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindRootDirs() = %v, want empty (lockfile alone is not a root)", got)
	}
}
