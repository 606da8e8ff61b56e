package dirglob

import (
	"strings"
	"testing"
)

func TestSegmentMatch(t *testing.T) {
	tests := []struct {
		pattern, name string
		opts          []ParseOption
		want          bool
	}{
		{pattern: "*", name: "abc", want: true},
		{pattern: "*", name: ".hidden", want: false},
		{pattern: "*", name: ".hidden", opts: []ParseOption{MatchDotfiles(true)}, want: true},
		{pattern: ".*", name: ".hidden", want: true},
		{pattern: ".*", name: ".", want: true},
		{pattern: ".*", name: "..", want: true},
		{pattern: "?bc", name: "abc", want: true},
		{pattern: "?bc", name: ".bc", want: false},
		{pattern: "[.]x", name: ".x", want: false},
		{pattern: `\.x`, name: ".x", want: true},
		{pattern: "a*b*c", name: "aXbYbZc", want: true},
		{pattern: "a*b", name: "ab", want: true},
		{pattern: "a*b", name: "abc", want: false},
		{pattern: "a**b", name: "ab", want: true},
		{pattern: "*.ext", name: "file_one.ext", want: true},
		{pattern: "*.ext", name: "file_one.ex", want: false},
		{pattern: "[^0-9]ubdir_one", name: "subdir_one", want: true},
		{pattern: "[^0-9]ubdir_one", name: "1ubdir_one", want: false},
		{pattern: "[!0-9]ubdir_one", name: "subdir_one", want: true},
		{pattern: "[a-c]", name: "b", want: true},
		{pattern: "[a-c]", name: "d", want: false},
		{pattern: "[z-a]", name: "m", want: false},
		{pattern: `foo\?bar`, name: "foo?bar", want: true},
		{pattern: `foo\?bar`, name: "fooxbar", want: false},
		{pattern: `foo\?bar`, name: `foo\?bar`, opts: []ParseOption{AllowEscaping(false)}, want: true},
		{pattern: `foo\?bar`, name: "foo?bar", opts: []ParseOption{AllowEscaping(false)}, want: false},
		{pattern: "ABC", name: "abc", want: false},
		{pattern: "ABC", name: "abc", opts: []ParseOption{CaseFold(true)}, want: true},
		{pattern: "[a-c]x", name: "BX", opts: []ParseOption{CaseFold(true)}, want: true},
		{pattern: "[^a-c]x", name: "BX", opts: []ParseOption{CaseFold(true)}, want: false},
		{pattern: "?", name: "é", want: true},
		{pattern: "??", name: "é", want: false},
		{pattern: "*a*a*a*a*a*a*b", name: strings.Repeat("a", 100), want: false},
		{pattern: "*a*a*a*a*a*a*b", name: strings.Repeat("a", 100) + "b", want: true},
	}

	for _, test := range tests {
		cfg := defaultParseConfig
		for _, o := range test.opts {
			o(&cfg)
		}
		tks, err := tokenise(test.pattern, &cfg)
		if err != nil {
			t.Fatalf("tokenise(%q) error = %v", test.pattern, err)
		}
		seg := segment{source: test.pattern, tokens: tks}
		if got := seg.match(test.name, cfg.matchConfig()); got != test.want {
			t.Errorf("segment(%q).match(%q) = %v, want %v", test.pattern, test.name, got, test.want)
		}
	}
}
