package dirglob

import "unicode"

// token is one compiled element of a path segment. The set of tokens is
// closed: literalExp, questionExp, starExp, classExp and doubleStarExp.
type token interface{ tokenTag() }

// expression is a token that consumes exactly one rune.
type expression interface {
	token

	// match reports if the rune matches the expression.
	match(r rune, fold bool) bool
}

// Tokens
type (
	// Matches exactly this literal.
	literalExp rune

	// ? matches any one rune.
	questionExp struct{}

	// * matches zero or more runes.
	starExp struct{}

	// ** as an entire segment matches zero or more directories.
	doubleStarExp struct{}

	// [...] matches one rune from (or, if negated, not from) the ranges.
	classExp struct {
		ranges  []runeRange
		negated bool
	}
)

// runeRange is an inclusive range of runes. Single members have lo == hi.
type runeRange struct{ lo, hi rune }

func (literalExp) tokenTag()    {}
func (questionExp) tokenTag()   {}
func (starExp) tokenTag()       {}
func (doubleStarExp) tokenTag() {}
func (classExp) tokenTag()      {}

func (e literalExp) match(r rune, fold bool) bool {
	if rune(e) == r {
		return true
	}
	return fold && foldEqual(rune(e), r)
}

func (questionExp) match(rune, bool) bool { return true }

func (e classExp) match(r rune, fold bool) bool {
	return e.contains(r, fold) != e.negated
}

func (e classExp) contains(r rune, fold bool) bool {
	for _, rr := range e.ranges {
		if rr.lo <= r && r <= rr.hi {
			return true
		}
		if !fold {
			continue
		}
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if rr.lo <= f && f <= rr.hi {
				return true
			}
		}
	}
	return false
}

// foldEqual reports whether a and b are equal under simple case folding.
func foldEqual(a, b rune) bool {
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
