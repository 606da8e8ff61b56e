package dirglob

import (
	"io/fs"
	"path"

	"github.com/spf13/afero"
)

// FS is the filesystem that Glob reads from. Paths use / as the separator.
type FS interface {
	// ListEntries returns the names of the entries in a directory, excluding
	// . and .. (Glob adds those itself where they can match).
	ListEntries(dir string) ([]string, error)

	// IsDir reports whether the path exists and is a directory, following
	// symlinks.
	IsDir(path string) bool
}

// LstatFS is an FS that can also tell symlinks apart. Glob uses it to avoid
// descending into symlinked directories while expanding **. When the
// filesystem does not implement LstatFS, no entry is considered a symlink.
type LstatFS interface {
	FS

	// IsSymlink reports whether the path is itself a symlink.
	IsSymlink(path string) bool
}

// OSFS returns the operating system's filesystem. It is the default.
func OSFS() FS { return AferoFS(afero.NewOsFs()) }

// AferoFS adapts an afero filesystem.
func AferoFS(fsys afero.Fs) FS { return aferoFS{fsys} }

type aferoFS struct{ fs afero.Fs }

func (a aferoFS) ListEntries(dir string) ([]string, error) {
	infos, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names, nil
}

func (a aferoFS) IsDir(p string) bool {
	ok, err := afero.IsDir(a.fs, p)
	return err == nil && ok
}

func (a aferoFS) IsSymlink(p string) bool {
	l, ok := a.fs.(afero.Lstater)
	if !ok {
		return false
	}
	fi, lstatCalled, err := l.LstatIfPossible(p)
	return err == nil && lstatCalled && fi.Mode()&fs.ModeSymlink != 0
}

// DirFS adapts an io/fs filesystem. The root of fsys is treated as both / and
// the default base directory; paths that would climb above it are clamped to
// it.
func DirFS(fsys fs.FS) FS { return dirFS{fsys} }

type dirFS struct{ fs fs.FS }

// name converts a walker path into a valid io/fs name.
func (d dirFS) name(p string) string {
	p = path.Clean("/" + p)
	if p == "/" {
		return "."
	}
	return p[1:]
}

func (d dirFS) ListEntries(dir string) ([]string, error) {
	ents, err := fs.ReadDir(d.fs, d.name(dir))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name())
	}
	return names, nil
}

func (d dirFS) IsDir(p string) bool {
	fi, err := fs.Stat(d.fs, d.name(p))
	return err == nil && fi.IsDir()
}

func (d dirFS) IsSymlink(p string) bool {
	rl, ok := d.fs.(fs.ReadLinkFS)
	if !ok {
		return false
	}
	fi, err := rl.Lstat(d.name(p))
	return err == nil && fi.Mode()&fs.ModeSymlink != 0
}
