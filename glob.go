package dirglob

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoumo/goset"
)

// WalkFunc is called by Walk for each matching path. Returning fs.SkipAll stops
// the walk without error; any other non-nil error stops the walk and is
// returned by Walk.
type WalkFunc = func(path string) error

// Glob returns the paths under base that match the pattern, relative to base
// (or absolute, if the pattern is absolute). An empty base means the current
// directory. Results are in the order the pattern's brace alternatives were
// written, and within each alternative in directory listing order. Duplicates
// are kept unless the Unique option is used. A base that does not exist gives
// no results rather than an error.
func (p *Pattern) Glob(base string, opts ...GlobOption) ([]string, error) {
	out := make([]string, 0)
	err := p.Walk(base, func(path string) error {
		out = append(out, path)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Walk is like Glob, but passes each result to f as soon as it is found.
func (p *Pattern) Walk(base string, f WalkFunc, opts ...GlobOption) error {
	cfg := newGlobConfig(opts)
	if cfg.err != nil {
		return cfg.err
	}
	if err := p.walk(context.Background(), base, cfg, f); err != nil && !errors.Is(err, fs.SkipAll) {
		return err
	}
	return nil
}

func (p *Pattern) walk(ctx context.Context, base string, cfg *globConfig, f WalkFunc) error {
	if base == "" {
		base = "."
	}
	gs := &globState{
		cfg:   cfg,
		mcfg:  p.cfg.matchConfig(),
		base:  base,
		yield: f,
	}
	if cfg.unique {
		gs.seen = goset.NewSet()
	}
	for _, alt := range p.alts {
		if err := gs.walkAlternative(ctx, alt); err != nil {
			return err
		}
	}
	return nil
}

// globState is the state of one call to Glob. It is never shared between
// calls.
type globState struct {
	cfg   *globConfig
	mcfg  matchConfig
	base  string
	seen  goset.Set
	yield WalkFunc
}

// globWork is a directory, and the segments still to be matched within it.
type globWork struct {
	dir      string
	segments []segment
}

func (gs *globState) walkAlternative(ctx context.Context, alt *alternative) error {
	log := gs.cfg.logger.WithField("pattern", alt.source)

	start := ""
	if alt.absolute {
		start = "/"
	}

	if len(alt.segments) == 0 {
		// Nothing to match but the root itself.
		if alt.absolute && gs.cfg.filesystem.IsDir("/") {
			return gs.emit("/")
		}
		return nil
	}

	// This is a stack of work. Each item's follow-on work is pushed in
	// reverse, so that results come out in listing order, depth first.
	stack := []globWork{{dir: start, segments: alt.segments}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		log.WithFields(logrus.Fields{
			"dir":       w.dir,
			"segment":   w.segments[0].source,
			"remaining": len(w.segments),
		}).Trace("Matching segment")

		var next []globWork
		var err error
		if w.segments[0].recursive() {
			next, err = gs.expandRecursive(w, log)
		} else {
			next, err = gs.expandSegment(w, alt.dirOnly, log)
		}
		if err != nil {
			return err
		}
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}
	return nil
}

// expandSegment matches the first segment against the entries of w.dir.
func (gs *globState) expandSegment(w globWork, dirOnly bool, log *logrus.Entry) ([]globWork, error) {
	seg, rest := w.segments[0], w.segments[1:]
	fsys := gs.cfg.filesystem

	// No need to list the directory to find one specific subdirectory.
	if lit, ok := seg.literal(); ok && len(rest) > 0 && !gs.mcfg.fold {
		child := joinPath(w.dir, lit)
		if !fsys.IsDir(gs.fsPath(child)) {
			return nil, nil
		}
		return []globWork{{dir: child, segments: rest}}, nil
	}

	names, err := gs.list(w.dir, seg.leadingDot(), log)
	if err != nil {
		return nil, nil
	}

	var next []globWork
	for _, name := range names {
		if !seg.match(name, gs.mcfg) {
			continue
		}
		child := joinPath(w.dir, name)

		if len(rest) == 0 {
			if dirOnly {
				if !fsys.IsDir(gs.fsPath(child)) {
					continue
				}
				child += "/"
			}
			if err := gs.emit(child); err != nil {
				return nil, err
			}
			continue
		}

		if fsys.IsDir(gs.fsPath(child)) {
			next = append(next, globWork{dir: child, segments: rest})
		}
	}
	return next, nil
}

// expandRecursive expands a ** segment both ways: as zero directories (match
// the rest of the pattern in w.dir), and as one more directory (keep the **
// for each subdirectory). Both expansions always happen, so a path reachable
// both ways is reported more than once.
func (gs *globState) expandRecursive(w globWork, log *logrus.Entry) ([]globWork, error) {
	rest := w.segments[1:]
	fsys := gs.cfg.filesystem

	var next []globWork
	if len(rest) == 0 {
		// The pattern ended in **/, so each directory reached is a result.
		if w.dir != "" && w.dir != "/" {
			if err := gs.emit(w.dir + "/"); err != nil {
				return nil, err
			}
		}
	} else {
		next = append(next, globWork{dir: w.dir, segments: rest})
	}

	names, err := gs.list(w.dir, false, log)
	if err != nil {
		return next, nil
	}
	for _, name := range names {
		if strings.HasPrefix(name, ".") && !gs.mcfg.dotmatch {
			continue
		}
		child := joinPath(w.dir, name)
		p := gs.fsPath(child)
		if !fsys.IsDir(p) {
			continue
		}
		if !gs.cfg.traverseSymlinks && gs.isSymlink(p) {
			log.WithField("dir", child).Trace("Not descending into symlink")
			continue
		}
		next = append(next, globWork{dir: child, segments: w.segments})
	}
	return next, nil
}

// list lists the directory. Unreadable directories are logged and skipped.
func (gs *globState) list(dir string, withDots bool, log *logrus.Entry) ([]string, error) {
	names, err := gs.cfg.filesystem.ListEntries(gs.fsPath(dir))
	if err != nil {
		log.WithError(err).WithField("dir", dir).Debug("Skipping unreadable directory")
		return nil, err
	}
	if withDots {
		names = append([]string{".", ".."}, names...)
	}
	return names, nil
}

func (gs *globState) isSymlink(p string) bool {
	l, ok := gs.cfg.filesystem.(LstatFS)
	return ok && l.IsSymlink(p)
}

// emit passes a result to the callback, unless it is excluded or a repeat.
func (gs *globState) emit(p string) error {
	if gs.cfg.excluded(p) {
		return nil
	}
	if gs.seen != nil {
		if gs.seen.Contains(p) {
			return nil
		}
		if err := gs.seen.Add(p); err != nil {
			return err
		}
	}
	return gs.yield(p)
}

// fsPath converts a result path into a path for the filesystem.
func (gs *globState) fsPath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return joinPath(gs.base, p)
}

// joinPath joins a directory and a name without cleaning, so that . and ..
// survive into results.
func joinPath(dir, name string) string {
	switch {
	case dir == "":
		return name
	case name == "":
		return dir
	case strings.HasSuffix(dir, "/"):
		return dir + name
	default:
		return dir + "/" + name
	}
}
