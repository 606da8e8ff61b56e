package dirglob

import "strings"

// match reports if the name (a single path component) matches the segment.
//
// Wildcards never match a leading dot unless dotmatch is set or the segment
// itself starts with a literal dot. Otherwise matching is the classic
// fnmatch-style backtrack: each * first tries to match nothing, and on a
// later mismatch the most recent * absorbs one more rune. Only the most
// recent * ever needs revisiting, so this is O(len(tokens) * len(name)).
func (s segment) match(name string, cfg matchConfig) bool {
	if strings.HasPrefix(name, ".") && !cfg.dotmatch && !s.leadingDot() {
		return false
	}

	rs := []rune(name)
	ti, ni := 0, 0

	// Backtrack point: token index of the last *, and the name index it
	// would resume from.
	starTi, starNi := -1, 0

	for ni < len(rs) {
		if ti < len(s.tokens) {
			switch t := s.tokens[ti].(type) {
			case starExp:
				starTi, starNi = ti, ni
				ti++
				continue

			case expression:
				if t.match(rs[ni], cfg.fold) {
					ti++
					ni++
					continue
				}

			case doubleStarExp:
				// Whole-segment only; never reached via the walker, but a
				// ** never matches within a name.
				return false
			}
		}

		// Mismatch, or ran out of tokens. Let the last * absorb one more.
		if starTi < 0 {
			return false
		}
		starNi++
		ni = starNi
		ti = starTi + 1
	}

	// Name consumed; any remaining tokens must all be * (matching nothing).
	for ; ti < len(s.tokens); ti++ {
		if _, ok := s.tokens[ti].(starExp); !ok {
			return false
		}
	}
	return true
}
