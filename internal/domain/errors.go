package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPattern means a builder had neither a command nor an output
	// pattern to match on.
	ErrMissingPattern = errors.New("at least one pattern (command or output) must be set")
	// ErrMissingReplacement means a builder had nothing to propose.
	ErrMissingReplacement = errors.New("replacement must be set")
	// ErrInvalidPattern means a regular expression failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// BuildError reports why a rule builder refused to produce a rule.
type BuildError struct {
	Builder string
	Rule    string
	Err     error
	Cause   error
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("%s %q: %v", e.Builder, e.Rule, e.Err)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *BuildError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
