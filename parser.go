package dirglob

import "strings"

// alternative is one fully brace-expanded pattern, compiled into segments.
type alternative struct {
	// source is the expanded pattern text.
	source string

	// segments has one entry per /-delimited component.
	segments []segment

	// absolute is whether the pattern began with /.
	absolute bool

	// dirOnly is whether the pattern ended with /, restricting results to
	// directories.
	dirOnly bool
}

// segment is the compiled form of one path component.
type segment struct {
	source string
	tokens []token
}

// recursive reports whether the segment is a ** segment.
func (s segment) recursive() bool {
	if len(s.tokens) != 1 {
		return false
	}
	_, ok := s.tokens[0].(doubleStarExp)
	return ok
}

// leadingDot reports whether the segment starts with a literal dot. Such
// segments may match dotfiles, . and .. without the dotmatch flag.
func (s segment) leadingDot() bool {
	if len(s.tokens) == 0 {
		return false
	}
	l, ok := s.tokens[0].(literalExp)
	return ok && l == '.'
}

// literal returns the name matched by the segment, if the segment is made only
// of literals.
func (s segment) literal() (string, bool) {
	var sb strings.Builder
	for _, t := range s.tokens {
		l, ok := t.(literalExp)
		if !ok {
			return "", false
		}
		sb.WriteRune(rune(l))
	}
	return sb.String(), true
}

// parseAlternative splits one brace-expanded pattern on / and tokenises each
// component.
func parseAlternative(pattern, expanded string, cfg *parseConfig) (*alternative, error) {
	alt := &alternative{
		source:   expanded,
		absolute: strings.HasPrefix(expanded, "/"),
		dirOnly:  strings.HasSuffix(expanded, "/") && expanded != "/",
	}

	var comps []string
	for _, c := range strings.Split(expanded, "/") {
		// Drop the empty components from leading, trailing, or repeated
		// slashes.
		if c != "" {
			comps = append(comps, c)
		}
	}

	for i, c := range comps {
		// ** is only recursive when something follows it - a further
		// component, or a trailing slash. A final bare ** behaves like *.
		last := i == len(comps)-1
		if c == "**" && cfg.allowStar && cfg.allowDoubleStar && (!last || alt.dirOnly) {
			alt.segments = append(alt.segments, segment{
				source: c,
				tokens: []token{doubleStarExp{}},
			})
			continue
		}

		tks, err := tokenise(c, cfg)
		if err != nil {
			return nil, &PatternError{
				Pattern:   pattern,
				Component: c,
				Err:       err,
			}
		}
		alt.segments = append(alt.segments, segment{
			source: c,
			tokens: tks,
		})
	}
	return alt, nil
}
