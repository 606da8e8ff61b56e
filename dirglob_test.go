package dirglob

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// osFixture lays out the same tree as basicFixture, on disk.
func osFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, d := range []string{"subdir_one", "subdir_two", ".dotsubdir"} {
		if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatalf("Mkdir(%q) error = %v", d, err)
		}
	}
	for _, f := range []string{"file_one.ext", "file_two.ext", "nondotfile", ".dotfile"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatalf("WriteFile(%q) error = %v", f, err)
		}
	}
	return filepath.ToSlash(dir)
}

func TestGlobFunc(t *testing.T) {
	base := osFixture(t)
	tests := []struct {
		pattern string
		opts    []ParseOption
		want    []string
	}{
		{
			pattern: "*",
			want:    []string{"file_one.ext", "file_two.ext", "nondotfile", "subdir_one", "subdir_two"},
		},
		{
			pattern: ".*",
			want:    []string{".", "..", ".dotfile", ".dotsubdir"},
		},
		{
			pattern: "*",
			opts:    []ParseOption{MatchDotfiles(true)},
			want:    []string{".dotfile", ".dotsubdir", "file_one.ext", "file_two.ext", "nondotfile", "subdir_one", "subdir_two"},
		},
		{
			pattern: "subdir_{one,two,three}",
			want:    []string{"subdir_one", "subdir_two"},
		},
		{
			pattern: "[^0-9]ubdir_one",
			want:    []string{"subdir_one"},
		},
		{
			pattern: "*/",
			want:    []string{"subdir_one/", "subdir_two/"},
		},
	}
	for _, test := range tests {
		got, err := Glob(base, test.pattern, test.opts...)
		if err != nil {
			t.Fatalf("Glob(%q) error = %v", test.pattern, err)
		}
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("Glob(%q) diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}

func TestGlobFunc_BadPattern(t *testing.T) {
	if _, err := Glob(".", "[oops"); err == nil {
		t.Errorf("Glob(%q) error = nil, want error", "[oops")
	}
}

// With dotmatch, * finds exactly what * and .* find without it, minus . and ..
func TestGlobFunc_DotPartition(t *testing.T) {
	base := osFixture(t)
	all, err := Glob(base, "*", MatchDotfiles(true))
	if err != nil {
		t.Fatalf("Glob(*) error = %v", err)
	}
	plain, err := Glob(base, "*")
	if err != nil {
		t.Fatalf("Glob(*) error = %v", err)
	}
	dots, err := Glob(base, ".*")
	if err != nil {
		t.Fatalf("Glob(.*) error = %v", err)
	}

	union := slices.DeleteFunc(append(plain, dots...), func(s string) bool {
		return s == "." || s == ".."
	})
	slices.Sort(union)
	slices.Sort(all)
	if diff := cmp.Diff(all, union); diff != "" {
		t.Errorf("dotmatch vs partition diff (-dotmatch +partition):\n%s", diff)
	}
}

// Each result, used as a pattern, finds itself.
func TestGlobFunc_ResultsRoundTrip(t *testing.T) {
	base := osFixture(t)
	results, err := Glob(base, "{*,.*,*/}")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	for _, r := range results {
		got, err := Glob(base, r)
		if err != nil {
			t.Fatalf("Glob(%q) error = %v", r, err)
		}
		if !slices.Contains(got, r) {
			t.Errorf("Glob(%q) = %q, does not contain %q", r, got, r)
		}
	}
}
