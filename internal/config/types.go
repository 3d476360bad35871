// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/spatialtools/pomwalk/pkg/types"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// FormatText prints the classpath as a single separator-joined line.
	// Defined locally to avoid coupling config to internal/report.
	FormatText OutputFormat = "text"
	// FormatEnv prints a shell assignment of the classpath.
	FormatEnv OutputFormat = "env"
	// FormatJSON prints a JSON report.
	FormatJSON OutputFormat = "json"
	// FormatYAML prints a YAML report.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML prints a TOML report.
	FormatTOML OutputFormat = "toml"

	// DefaultSeparator joins classpath entries.
	DefaultSeparator Separator = ":"
	// DefaultVariable is the variable name used by the env format.
	DefaultVariable VariableName = "CLASSPATH"
	// DefaultDescriptor is walked when no descriptor is given.
	DefaultDescriptor types.FilesystemPath = "pom.xml"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidSeparator is returned when a Separator is empty.
	ErrInvalidSeparator = errors.New("invalid classpath separator")
	// ErrInvalidVariableName is returned when a VariableName is not a shell identifier.
	ErrInvalidVariableName = errors.New("invalid variable name")
	// ErrInvalidExcludePattern is returned when an ExcludePattern does not compile.
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputFormat selects how the classpath command prints its result.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// Separator joins classpath entries in the text and env formats.
	Separator string

	// InvalidSeparatorError is returned when a Separator is empty.
	InvalidSeparatorError struct {
		Value Separator
	}

	// VariableName is the shell variable assigned by the env format.
	VariableName string

	// InvalidVariableNameError is returned when a VariableName is not a valid
	// shell identifier.
	InvalidVariableNameError struct {
		Value VariableName
	}

	// ExcludePattern is a regular expression matched against repository-relative
	// descriptor paths. The zero value disables exclusion.
	ExcludePattern string

	// InvalidExcludePatternError is returned when an ExcludePattern does not compile.
	InvalidExcludePatternError struct {
		Value ExcludePattern
		Cause error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Repository is the local artifact repository root. Empty means
		// $HOME/.m2/repository.
		Repository types.FilesystemPath `json:"repository" mapstructure:"repository"`
		// Descriptor is walked when no path is given on the command line.
		Descriptor types.FilesystemPath `json:"descriptor" mapstructure:"descriptor"`
		// ExcludePattern matches nested descriptors that are not walked.
		ExcludePattern ExcludePattern `json:"exclude_pattern" mapstructure:"exclude_pattern"`
		// Placeholders selects strict or lenient placeholder expansion.
		Placeholders walker.PlaceholderMode `json:"placeholders" mapstructure:"placeholders"`
		// Classpath configures how the classpath line is assembled.
		Classpath ClasspathConfig `json:"classpath" mapstructure:"classpath"`
		// Output configures the classpath command's output.
		Output OutputConfig `json:"output" mapstructure:"output"`
		// Verify configures artifact verification.
		Verify VerifyConfig `json:"verify" mapstructure:"verify"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// ClasspathConfig configures how the classpath line is assembled.
	ClasspathConfig struct {
		// Separator joins entries (default ":").
		Separator Separator `json:"separator" mapstructure:"separator"`
		// Prepend lists entries placed before the resolved artifacts, such as
		// ./target/classes.
		Prepend []string `json:"prepend" mapstructure:"prepend"`
	}

	// OutputConfig configures the classpath command's output.
	OutputConfig struct {
		Format   OutputFormat `json:"format" mapstructure:"format"`
		Variable VariableName `json:"variable" mapstructure:"variable"`
	}

	// VerifyConfig configures artifact verification.
	VerifyConfig struct {
		// Checksums enables .sha1/.md5 sidecar checks after every walk.
		Checksums bool `json:"checksums" mapstructure:"checksums"`
		// Keyring is an armored or binary OpenPGP public keyring used to check
		// .asc signatures. Empty disables signature checks.
		Keyring types.FilesystemPath `json:"keyring" mapstructure:"keyring"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables the walk trace on stderr
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	collect := func(valid bool, fieldErrs []error) {
		if !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	collect(c.Repository.IsValid())
	collect(c.Descriptor.IsValid())
	if c.Descriptor == "" {
		errs = append(errs, &types.InvalidFilesystemPathError{Value: c.Descriptor})
	}
	collect(c.ExcludePattern.IsValid())
	collect(c.Placeholders.IsValid())
	collect(c.Classpath.Separator.IsValid())
	collect(c.Output.Format.IsValid())
	collect(c.Output.Variable.IsValid())
	collect(c.Verify.Keyring.IsValid())
	collect(c.UI.ColorScheme.IsValid())
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, env, json, yaml, toml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatEnv, FormatJSON, FormatYAML, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidSeparatorError.
func (e *InvalidSeparatorError) Error() string {
	return "invalid classpath separator: must be non-empty"
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSeparatorError) Unwrap() error { return ErrInvalidSeparator }

// String returns the string representation of the Separator.
func (s Separator) String() string { return string(s) }

// IsValid returns whether the Separator is non-empty.
func (s Separator) IsValid() (bool, []error) {
	if s == "" {
		return false, []error{&InvalidSeparatorError{Value: s}}
	}
	return true, nil
}

// Error implements the error interface for InvalidVariableNameError.
func (e *InvalidVariableNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q: must be a shell identifier", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidVariableNameError) Unwrap() error { return ErrInvalidVariableName }

// String returns the string representation of the VariableName.
func (v VariableName) String() string { return string(v) }

// IsValid returns whether the VariableName is a valid shell identifier.
func (v VariableName) IsValid() (bool, []error) {
	if !syntax.ValidName(string(v)) {
		return false, []error{&InvalidVariableNameError{Value: v}}
	}
	return true, nil
}

// Error implements the error interface for InvalidExcludePatternError.
func (e *InvalidExcludePatternError) Error() string {
	return fmt.Sprintf("invalid exclude pattern %q: %v", e.Value, e.Cause)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidExcludePatternError) Unwrap() error { return ErrInvalidExcludePattern }

// String returns the string representation of the ExcludePattern.
func (p ExcludePattern) String() string { return string(p) }

// IsValid returns whether the ExcludePattern compiles.
func (p ExcludePattern) IsValid() (bool, []error) {
	if _, err := p.Compile(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

// Compile returns the compiled pattern, or nil when the pattern is empty.
func (p ExcludePattern) Compile() (*regexp.Regexp, error) {
	if p == "" {
		return nil, nil
	}
	re, err := regexp.Compile(string(p))
	if err != nil {
		return nil, &InvalidExcludePatternError{Value: p, Cause: err}
	}
	return re, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Repository:     "", // resolved from $HOME at use time
		Descriptor:     DefaultDescriptor,
		ExcludePattern: walker.DefaultExcludePattern,
		Placeholders:   walker.PlaceholderStrict,
		Classpath: ClasspathConfig{
			Separator: DefaultSeparator,
			Prepend:   []string{},
		},
		Output: OutputConfig{
			Format:   FormatText,
			Variable: DefaultVariable,
		},
		Verify: VerifyConfig{
			Checksums: false,
			Keyring:   "",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
