package dirglob

var defaultParseConfig = parseConfig{
	allowEscaping:    true,
	allowQuestion:    true,
	allowStar:        true,
	allowDoubleStar:  true,
	allowAlternation: true,
	allowCharClass:   true,
}

type parseConfig struct {
	allowEscaping    bool
	allowQuestion    bool
	allowStar        bool
	allowDoubleStar  bool
	allowAlternation bool
	allowCharClass   bool
	matchDotfiles    bool
	caseFold         bool
	pathname         bool
}

// ParseOption functions optionally alter how patterns are parsed.
type ParseOption = func(*parseConfig)

// AllowEscaping changes how the escape character (backslash) is parsed. If
// disabled, it is treated as a literal which does not escape the next
// character (the "noescape" flag). Enabled by default.
func AllowEscaping(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowEscaping = enable
	}
}

// AllowQuestion changes how ? is parsed. If disabled, ? is treated as a
// literal. Enabled by default.
func AllowQuestion(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowQuestion = enable
	}
}

// AllowStar changes how * is parsed. If disabled, * is treated as a literal.
// Enabled by default.
func AllowStar(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowStar = enable
	}
}

// AllowDoubleStar changes how a ** path segment is parsed, and applies only if
// AllowStar is enabled (the default). If disabled, ** is treated as two
// consecutive instances of * (equivalent to a single *). Enabled by default.
func AllowDoubleStar(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowDoubleStar = enable
	}
}

// AllowAlternation changes how { } are parsed. If enabled, { and } delimit
// brace expansions. If disabled, { and } are treated as literals.
// Enabled by default.
func AllowAlternation(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowAlternation = enable
	}
}

// AllowCharClass changes how [ ] are parsed. If enabled, [ and ] denote
// character classes. If disabled, [ and ] are treated as literals.
// Enabled by default.
func AllowCharClass(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.allowCharClass = enable
	}
}

// MatchDotfiles changes whether wildcards match a leading dot in a name (the
// "dotmatch" flag). Even when enabled, the . and .. entries are only matched
// by segments that begin with a literal dot. Disabled by default.
func MatchDotfiles(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.matchDotfiles = enable
	}
}

// CaseFold makes literals and character classes match case-insensitively.
// Disabled by default.
func CaseFold(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.caseFold = enable
	}
}

// Pathname is accepted for compatibility with fnmatch-style flag sets. It has
// no effect: / is always a path separator and is never matched by wildcards.
func Pathname(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.pathname = enable
	}
}

// matchConfig is the subset of parseConfig needed when matching names.
type matchConfig struct {
	dotmatch bool
	fold     bool
}

func (c *parseConfig) matchConfig() matchConfig {
	return matchConfig{
		dotmatch: c.matchDotfiles,
		fold:     c.caseFold,
	}
}
