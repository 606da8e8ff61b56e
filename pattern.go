package dirglob

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// Pattern is a compiled glob pattern. It is safe to use concurrently.
type Pattern struct {
	source string
	cfg    parseConfig

	// alts has one entry per brace alternative, in declared order.
	alts []*alternative
}

// Parse compiles a pattern. Brace expansion happens first, on the raw pattern,
// and then each alternative is split on / and each component tokenised.
// Malformed patterns (such as an unterminated [) produce a *PatternError.
func Parse(pattern string, opts ...ParseOption) (*Pattern, error) {
	cfg := defaultParseConfig
	for _, o := range opts {
		o(&cfg)
	}

	p := &Pattern{
		source: pattern,
		cfg:    cfg,
	}
	for _, exp := range expandBraces(pattern, &cfg) {
		alt, err := parseAlternative(pattern, exp, &cfg)
		if err != nil {
			return nil, err
		}
		p.alts = append(p.alts, alt)
	}
	return p, nil
}

// MustParse calls Parse, and panics if unable to parse the pattern.
func MustParse(pattern string, opts ...ParseOption) *Pattern {
	p, err := Parse(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAll parses each of the patterns with the same options. If any fail, the
// returned error describes every failure.
func ParseAll(patterns []string, opts ...ParseOption) ([]*Pattern, error) {
	var errs *multierror.Error
	out := make([]*Pattern, 0, len(patterns))
	for _, s := range patterns {
		p, err := Parse(s, opts...)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		out = append(out, p)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// String returns the pattern as originally written.
func (p *Pattern) String() string { return p.source }

// Alternatives returns the brace-expanded forms of the pattern, in order.
func (p *Pattern) Alternatives() []string {
	out := make([]string, 0, len(p.alts))
	for _, a := range p.alts {
		out = append(out, a.source)
	}
	return out
}

// WriteDot writes a digraph representing the compiled pattern to the writer
// (in GraphViz syntax). Each alternative is a chain of states, one per
// segment matched; ** segments loop on themselves.
func (p *Pattern) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tinitial [label=\"\", style=invis];"); err != nil {
		return err
	}

	for i, alt := range p.alts {
		root := "."
		if alt.absolute {
			root = "/"
		}
		if _, err := fmt.Fprintf(w, "\tinitial -> alt%d_0 [label=%q];\n", i, alt.source); err != nil {
			return err
		}

		for j := 0; j <= len(alt.segments); j++ {
			label, shape := "", "circle"
			if j == 0 {
				label = root
			}
			if j == len(alt.segments) {
				shape = "doublecircle"
				if alt.dirOnly {
					label = "dir"
				}
			}
			if _, err := fmt.Fprintf(w, "\talt%d_%d [label=%q, shape=%s];\n", i, j, label, shape); err != nil {
				return err
			}
			if j == len(alt.segments) {
				break
			}

			seg := alt.segments[j]
			if seg.recursive() {
				// Zero or more directories: loop, then move on matching
				// nothing.
				if _, err := fmt.Fprintf(w, "\talt%d_%d -> alt%d_%d [label=\"*/\"];\n", i, j, i, j); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "\talt%d_%d -> alt%d_%d [label=\"\", style=dashed];\n", i, j, i, j+1); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "\talt%d_%d -> alt%d_%d [label=%q];\n", i, j, i, j+1, seg.source); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}
