package dirglob

import "strings"

// Match reports if the slash-separated path matches the pattern, using the
// same rules as Glob but without consulting any filesystem. A pattern ending
// in / only matches paths ending in /, and vice versa.
func (p *Pattern) Match(path string) bool {
	cfg := p.cfg.matchConfig()
	for _, alt := range p.alts {
		if alt.match(path, cfg) {
			return true
		}
	}
	return false
}

// stateSet represents a set of possible positions within an alternative:
// position i means segments[:i] have matched so far.
type stateSet map[int]struct{}

// singleton wraps a single position in a set.
func singleton(i int) stateSet { return stateSet{i: {}} }

func (a *alternative) match(path string, cfg matchConfig) bool {
	if strings.HasPrefix(path, "/") != a.absolute {
		return false
	}
	if len(a.segments) == 0 {
		return a.absolute && path == "/"
	}
	if strings.HasSuffix(path, "/") != a.dirOnly {
		return false
	}

	states := singleton(0)
	a.transitiveClosure(states)
	for _, c := range strings.Split(path, "/") {
		if c == "" {
			continue
		}
		states = a.matchComponent(states, c, cfg)
		if len(states) == 0 {
			return false
		}
	}
	_, ok := states[len(a.segments)]
	return ok
}

// matchComponent progresses a set of positions by one path component.
func (a *alternative) matchComponent(states stateSet, c string, cfg matchConfig) stateSet {
	dots := c == "." || c == ".."
	next := make(stateSet, len(states))
	for i := range states {
		if i == len(a.segments) {
			// Fully matched, but there is more path.
			continue
		}
		seg := a.segments[i]
		if seg.recursive() {
			// ** consumes a directory and stays put.
			if !dots && (cfg.dotmatch || !strings.HasPrefix(c, ".")) {
				next[i] = struct{}{}
			}
			continue
		}
		if dots && !seg.leadingDot() {
			continue
		}
		if seg.match(c, cfg) {
			next[i+1] = struct{}{}
		}
	}
	a.transitiveClosure(next)
	return next
}

// transitiveClosure adds the positions reachable by skipping ** segments (each
// of which may match zero directories) to the same set.
func (a *alternative) transitiveClosure(states stateSet) {
	q := make([]int, 0, len(states))
	for i := range states {
		q = append(q, i)
	}
	for len(q) > 0 {
		i := q[0]
		q = q[1:]

		if i >= len(a.segments) || !a.segments[i].recursive() {
			continue
		}
		if _, seen := states[i+1]; seen {
			continue
		}
		states[i+1] = struct{}{}
		q = append(q, i+1)
	}
}
