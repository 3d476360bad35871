// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCyclicReference is the sentinel error wrapped by CyclicReferenceError.
var ErrCyclicReference = errors.New("cyclic descriptor reference")

// CyclicReferenceError is returned when a descriptor is reached again while it
// is still being walked.
type CyclicReferenceError struct {
	// Chain lists the descriptors from the first occurrence of the repeated
	// descriptor to its re-entry, so the first and last entries are equal.
	Chain []string
}

// Error implements the error interface.
func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic descriptor reference: %s", strings.Join(e.Chain, " -> "))
}

// Unwrap returns ErrCyclicReference for errors.Is() compatibility.
func (e *CyclicReferenceError) Unwrap() error { return ErrCyclicReference }
