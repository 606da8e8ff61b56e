package dirglob

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDirFS(t *testing.T) {
	fsys := DirFS(fstest.MapFS{
		"m":      {},
		"a/m":    {},
		"a/b/m":  {},
		".dot/m": {},
	})
	tests := []struct {
		pattern, base string
		want          []string
	}{
		{pattern: "**/m", base: "", want: []string{"m", "a/m", "a/b/m"}},
		{pattern: "**/m", base: "a", want: []string{"m", "b/m"}},
		{pattern: "/a/*", base: "", want: []string{"/a/b", "/a/m"}},
		{pattern: "*/", base: ".", want: []string{"a/"}},
	}
	for _, test := range tests {
		got, err := MustParse(test.pattern).Glob(test.base, WithFilesystem(fsys))
		if err != nil {
			t.Fatalf("(%q).Glob(%q) error = %v", test.pattern, test.base, err)
		}
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("(%q).Glob(%q) diff (-got +want):\n%s", test.pattern, test.base, diff)
		}
	}
}

func TestDirFS_Name(t *testing.T) {
	d := dirFS{}
	tests := map[string]string{
		"":         ".",
		".":        ".",
		"/":        ".",
		"a/b":      "a/b",
		"./a/../b": "b",
		"/a/b/":    "a/b",
		"../..":    ".",
	}
	for in, want := range tests {
		if got := d.name(in); got != want {
			t.Errorf("dirFS.name(%q) = %q, want %q", in, got, want)
		}
	}
}

// symlinkFixture creates real/m and link -> real in a temporary directory.
func symlinkFixture(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "real"), 0o755); err != nil {
		t.Fatalf("MkdirAll error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "real", "m"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if err := os.Symlink("real", filepath.Join(dir, "link")); err != nil {
		t.Skipf("os.Symlink error = %v", err)
	}
	return filepath.ToSlash(dir)
}

func TestGlob_Symlinks(t *testing.T) {
	base := symlinkFixture(t)
	tests := []struct {
		pattern string
		opts    []GlobOption
		want    []string
	}{
		{pattern: "**/m", want: []string{"real/m"}},
		{pattern: "**/m", opts: []GlobOption{TraverseSymlinks(true)}, want: []string{"link/m", "real/m"}},
		{pattern: "*/m", want: []string{"link/m", "real/m"}},
		{pattern: "link/m", want: []string{"link/m"}},
	}
	for _, test := range tests {
		got, err := MustParse(test.pattern).Glob(base, test.opts...)
		if err != nil {
			t.Fatalf("(%q).Glob() error = %v", test.pattern, err)
		}
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("(%q).Glob() diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}

func TestAferoFS_IsSymlink(t *testing.T) {
	base := symlinkFixture(t)
	fsys, ok := OSFS().(LstatFS)
	if !ok {
		t.Fatal("OSFS() does not implement LstatFS")
	}
	if !fsys.IsSymlink(base + "/link") {
		t.Errorf("IsSymlink(link) = false, want true")
	}
	if fsys.IsSymlink(base + "/real") {
		t.Errorf("IsSymlink(real) = true, want false")
	}
	if !fsys.IsDir(base + "/link") {
		t.Errorf("IsDir(link) = false, want true")
	}
}
