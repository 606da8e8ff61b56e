package dirglob

// expandBraces preprocesses the raw pattern by brace expansion, before it is
// split into path segments:
//   - a{b,c}d becomes abd, acd
//   - {,.}* becomes *, .*
//   - groups may nest: a{b,c{d,e}} becomes ab, acd, ace
//
// Alternatives are produced in declared order (leftmost group varies
// slowest). A { without a matching } is left alone, as are escaped braces and
// commas.
func expandBraces(pattern string, cfg *parseConfig) []string {
	if !cfg.allowAlternation {
		return []string{pattern}
	}
	open, close, commas := findBraces(pattern, cfg)
	if open < 0 {
		return []string{pattern}
	}

	prefix, suffix := pattern[:open], pattern[close+1:]
	var out []string
	start := open + 1
	for _, end := range append(commas, close) {
		alt := pattern[start:end]
		out = append(out, expandBraces(prefix+alt+suffix, cfg)...)
		start = end + 1
	}
	return out
}

// findBraces finds the first { that has a matching }, returning the offsets of
// both and of the commas separating the alternatives at the top level of the
// group. open is -1 if there is no such group.
func findBraces(pattern string, cfg *parseConfig) (open, close int, commas []int) {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if cfg.allowEscaping {
				i++
			}

		case '{':
			if c, cs, ok := matchBrace(pattern, i, cfg); ok {
				return i, c, cs
			}
		}
	}
	return -1, -1, nil
}

// matchBrace scans forward from the { at offset open for its matching }.
func matchBrace(pattern string, open int, cfg *parseConfig) (close int, commas []int, ok bool) {
	depth := 0
	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if cfg.allowEscaping {
				i++
			}

		case '{':
			depth++

		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}

		case '}':
			depth--
			if depth == 0 {
				return i, commas, true
			}
		}
	}
	return -1, nil, false
}
