// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("descriptor parse error")

// ParseError reports a descriptor that could not be read or decoded.
// Parsing is all-or-nothing: no partial Document accompanies a ParseError.
type ParseError struct {
	// Path is the descriptor file (or the name passed to Parse).
	Path string
	// Cause is the underlying read or decode failure.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse descriptor %s: %v", e.Path, e.Cause)
}

// Unwrap exposes both ErrParse and the underlying cause, so callers can test
// for errors.Is(err, ErrParse) as well as errors.Is(err, fs.ErrNotExist).
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Cause}
}
