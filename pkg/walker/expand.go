// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// PlaceholderStrict fails expansion when a placeholder names an undefined property.
	PlaceholderStrict PlaceholderMode = "strict"
	// PlaceholderLenient replaces undefined placeholders with the empty string.
	PlaceholderLenient PlaceholderMode = "lenient"
)

var (
	// ErrUnresolvedPlaceholder is the sentinel error wrapped by UnresolvedPlaceholderError.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	// ErrInvalidPlaceholderMode is returned when a PlaceholderMode value is not recognized.
	ErrInvalidPlaceholderMode = errors.New("invalid placeholder mode")

	placeholderPattern = regexp.MustCompile(`\$\{([\w.\-]+)\}`)
)

type (
	// PlaceholderMode selects how undefined placeholders are treated.
	PlaceholderMode string

	// InvalidPlaceholderModeError is returned when a PlaceholderMode value is not recognized.
	InvalidPlaceholderModeError struct {
		Value PlaceholderMode
	}

	// PropertyMap maps property names to values. Later definitions overwrite
	// earlier ones.
	PropertyMap map[string]string

	// UnresolvedPlaceholderError is returned in strict mode when text
	// references properties that are not defined.
	UnresolvedPlaceholderError struct {
		// Text is the original text being expanded.
		Text string
		// Names lists the undefined property names in order of appearance.
		Names []string
	}

	// Expander substitutes ${name} placeholders from a PropertyMap.
	// Expansion is single-pass: substituted values are not expanded again.
	Expander struct {
		props PropertyMap
		mode  PlaceholderMode
	}
)

// String returns the string representation of the PlaceholderMode.
func (m PlaceholderMode) String() string { return string(m) }

// IsValid returns whether the PlaceholderMode is one of the defined modes.
// The zero value is valid and means strict.
func (m PlaceholderMode) IsValid() (bool, []error) {
	switch m {
	case "", PlaceholderStrict, PlaceholderLenient:
		return true, nil
	default:
		return false, []error{&InvalidPlaceholderModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidPlaceholderModeError.
func (e *InvalidPlaceholderModeError) Error() string {
	return fmt.Sprintf("invalid placeholder mode %q (valid: strict, lenient)", e.Value)
}

// Unwrap returns ErrInvalidPlaceholderMode for errors.Is() compatibility.
func (e *InvalidPlaceholderModeError) Unwrap() error { return ErrInvalidPlaceholderMode }

// Error implements the error interface.
func (e *UnresolvedPlaceholderError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = "${" + n + "}"
	}
	return fmt.Sprintf("undefined property %s in %q", strings.Join(quoted, ", "), e.Text)
}

// Unwrap returns ErrUnresolvedPlaceholder for errors.Is() compatibility.
func (e *UnresolvedPlaceholderError) Unwrap() error { return ErrUnresolvedPlaceholder }

// Set defines or overwrites a property.
func (p PropertyMap) Set(name, value string) {
	p[name] = value
}

// Lookup returns the value of a property and whether it is defined.
func (p PropertyMap) Lookup(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// NewExpander creates an Expander reading from props. The map is shared, not
// copied: properties defined later are visible to later expansions.
func NewExpander(props PropertyMap, mode PlaceholderMode) *Expander {
	if mode == "" {
		mode = PlaceholderStrict
	}
	return &Expander{props: props, mode: mode}
}

// Mode returns the placeholder mode in effect.
func (e *Expander) Mode() PlaceholderMode { return e.mode }

// Expand replaces every ${name} in text. In strict mode an undefined name
// fails the whole expansion with *UnresolvedPlaceholderError; in lenient mode
// it is replaced by the empty string.
func (e *Expander) Expand(text string) (string, error) {
	if !strings.Contains(text, "${") {
		return text, nil
	}

	var (
		sb      strings.Builder
		missing []string
		last    int
	)
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(text[last:m[0]])
		name := text[m[2]:m[3]]
		if v, ok := e.props.Lookup(name); ok {
			sb.WriteString(v)
		} else {
			missing = append(missing, name)
		}
		last = m[1]
	}
	sb.WriteString(text[last:])

	if len(missing) > 0 && e.mode == PlaceholderStrict {
		return "", &UnresolvedPlaceholderError{Text: text, Names: missing}
	}
	return sb.String(), nil
}
