// Package dirglob implements shell-style path globbing: patterns with *, ?,
// [...], {a,b} and ** are matched against a directory tree.
package dirglob

// Glob parses the pattern and returns the paths under base that match it. See
// Parse and Pattern.Glob.
func Glob(base, pattern string, opts ...ParseOption) ([]string, error) {
	p, err := Parse(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return p.Glob(base)
}
