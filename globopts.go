package dirglob

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// GlobOption functions optionally alter how Glob operates.
type GlobOption = func(*globConfig)

type globConfig struct {
	traverseSymlinks bool
	unique           bool
	goroutines       int
	exclude          []string
	logger           logrus.Ext1FieldLogger
	filesystem       FS

	// err records an invalid option, reported when globbing starts.
	err error
}

func newGlobConfig(opts []GlobOption) *globConfig {
	cfg := &globConfig{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if cfg.filesystem == nil {
		cfg.filesystem = OSFS()
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
		cfg.logger = l
	}
	return cfg
}

// WithFilesystem allows overriding the default filesystem (OSFS()).
func WithFilesystem(fsys FS) GlobOption {
	return func(cfg *globConfig) {
		cfg.filesystem = fsys
	}
}

// WithTraceLogs logs debugging information for debugging Glob itself to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) GlobOption {
	return func(cfg *globConfig) {
		l := logrus.New()
		l.SetOutput(out)
		l.SetLevel(logrus.TraceLevel)
		cfg.logger = l
	}
}

// WithLogger sends Glob's log output to the given logger. Work items are
// logged at trace level, skipped directories at debug level.
func WithLogger(l logrus.Ext1FieldLogger) GlobOption {
	return func(cfg *globConfig) {
		cfg.logger = l
	}
}

// TraverseSymlinks enables or disables descending into symlinked directories
// while expanding **. Symlinks named by other segments are always followed.
// Disabled by default, since a symlink cycle would otherwise never end.
func TraverseSymlinks(traverse bool) GlobOption {
	return func(cfg *globConfig) {
		cfg.traverseSymlinks = traverse
	}
}

// Unique enables or disables removal of duplicate results. A path reachable
// through more than one brace alternative, or through more than one expansion
// of **, is reported each time it is reached unless Unique is enabled.
// Disabled by default.
func Unique(enable bool) GlobOption {
	return func(cfg *globConfig) {
		cfg.unique = enable
	}
}

// Exclude drops results matching any of the given doublestar patterns. A
// trailing / on a result is ignored when matching. Invalid patterns cause
// Glob to fail with an error wrapping ErrBadPattern.
func Exclude(patterns ...string) GlobOption {
	return func(cfg *globConfig) {
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				cfg.err = fmt.Errorf("%w: exclude pattern %q", ErrBadPattern, p)
				return
			}
		}
		cfg.exclude = append(cfg.exclude, patterns...)
	}
}

// GoroutineLimit sets the maximum number of patterns MultiGlob globs at once.
// Zero or negative means one goroutine per pattern.
func GoroutineLimit(n int) GlobOption {
	return func(cfg *globConfig) {
		cfg.goroutines = n
	}
}

// excluded reports whether the path matches an exclude pattern.
func (cfg *globConfig) excluded(p string) bool {
	p = strings.TrimSuffix(p, "/")
	for _, x := range cfg.exclude {
		// Patterns were validated by Exclude.
		if ok, _ := doublestar.Match(x, p); ok {
			return true
		}
	}
	return false
}
