package dirglob

import (
	"errors"
	"fmt"
)

// ErrBadPattern indicates a malformed pattern. Errors returned by Parse wrap it.
var ErrBadPattern = errors.New("syntax error in pattern")

// PatternError describes why a pattern could not be compiled.
type PatternError struct {
	// Pattern is the pattern as passed to Parse.
	Pattern string

	// Component is the path component (after brace expansion) that failed.
	Component string

	// Err is the specific problem.
	Err error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v: %q in component %q: %v", ErrBadPattern, e.Pattern, e.Component, e.Err)
}

// Unwrap returns both ErrBadPattern and the specific problem, so that either
// can be tested for with errors.Is.
func (e *PatternError) Unwrap() []error { return []error{ErrBadPattern, e.Err} }
