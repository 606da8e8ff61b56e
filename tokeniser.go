package dirglob

import "errors"

var errUnterminatedClass = errors.New("unterminated char class - missing closing square bracket")

// tokenise converts one path component (no slashes) into a token sequence.
// Recursive ** segments are recognised by the parser, not here.
func tokenise(component string, cfg *parseConfig) ([]token, error) {
	rs := []rune(component)

	// Most tokens are single runes, so preallocate len(rs).
	tks := make([]token, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case c == '\\' && cfg.allowEscaping:
			// Next char is escaped. A trailing \ escapes nothing and is
			// itself a literal.
			if i+1 < len(rs) {
				i++
				c = rs[i]
			}
			tks = append(tks, literalExp(c))

		case c == '*' && cfg.allowStar:
			tks = append(tks, starExp{})

		case c == '?' && cfg.allowQuestion:
			tks = append(tks, questionExp{})

		case c == '[' && cfg.allowCharClass:
			cc, n, err := parseCharClass(rs[i+1:], cfg)
			if err != nil {
				return nil, err
			}
			tks = append(tks, cc)
			i += n

		default:
			// It's a literal.
			tks = append(tks, literalExp(c))
		}
	}
	return tks, nil
}

// parseCharClass parses a char class. rs should start with the first rune
// following the [. It returns the number of runes consumed, including the
// closing ].
func parseCharClass(rs []rune, cfg *parseConfig) (classExp, int, error) {
	var cc classExp
	i := 0
	if i < len(rs) && (rs[i] == '^' || rs[i] == '!') {
		cc.negated = true
		i++
	}

	// A ] straight after the opening [ (or [^) is a member, not the end.
	first := true
	for ; i < len(rs); i++ {
		c := rs[i]
		if c == ']' && !first {
			return cc, i + 1, nil
		}
		first = false

		if c == '\\' && cfg.allowEscaping && i+1 < len(rs) {
			i++
			c = rs[i]
		}

		// A - that is first or last in the class is a member.
		if i+2 < len(rs) && rs[i+1] == '-' && rs[i+2] != ']' {
			i += 2
			hi := rs[i]
			if hi == '\\' && cfg.allowEscaping && i+1 < len(rs) {
				i++
				hi = rs[i]
			}
			// A reversed range such as z-a matches nothing.
			cc.ranges = append(cc.ranges, runeRange{lo: c, hi: hi})
			continue
		}

		cc.ranges = append(cc.ranges, runeRange{lo: c, hi: c})
	}
	return classExp{}, 0, errUnterminatedClass
}
