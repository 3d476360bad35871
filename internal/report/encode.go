// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"mvdan.cc/sh/v3/syntax"

	"github.com/spatialtools/pomwalk/internal/config"
)

// Options selects the encoding of a Report.
type Options struct {
	// Format is the output format.
	Format config.OutputFormat
	// Separator joins classpath entries in the text and env formats.
	Separator config.Separator
	// Variable is the shell variable assigned by the env format.
	Variable config.VariableName
}

// OptionsFromConfig returns the encoding options configured in cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Format:    cfg.Output.Format,
		Separator: cfg.Classpath.Separator,
		Variable:  cfg.Output.Variable,
	}
}

// Write encodes r to w in the requested format.
func Write(w io.Writer, r *Report, opts Options) error {
	if valid, errs := opts.Format.IsValid(); !valid {
		return errs[0]
	}

	switch opts.Format {
	case config.FormatText:
		return writeText(w, r, opts)
	case config.FormatEnv:
		return writeEnv(w, r, opts)
	default:
		return WriteDocument(w, r, opts.Format)
	}
}

// WriteDocument encodes v as a JSON, YAML or TOML document. The text and env
// formats only apply to a Report and are rejected here.
func WriteDocument(w io.Writer, v any, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, v)
	case config.FormatYAML:
		return writeYAML(w, v)
	case config.FormatTOML:
		return writeTOML(w, v)
	default:
		return fmt.Errorf("format %q does not produce a document: %w", format, config.ErrInvalidOutputFormat)
	}
}

func writeText(w io.Writer, r *Report, opts Options) error {
	if valid, errs := opts.Separator.IsValid(); !valid {
		return errs[0]
	}
	_, err := fmt.Fprintln(w, r.Line(string(opts.Separator)))
	return err
}

// writeEnv prints VAR=<value> with the value quoted for bash, so the line can
// be eval'd or sourced.
func writeEnv(w io.Writer, r *Report, opts Options) error {
	if valid, errs := opts.Separator.IsValid(); !valid {
		return errs[0]
	}
	if valid, errs := opts.Variable.IsValid(); !valid {
		return errs[0]
	}

	quoted, err := syntax.Quote(r.Line(string(opts.Separator)), syntax.LangBash)
	if err != nil {
		return fmt.Errorf("quote classpath: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s=%s\n", opts.Variable, quoted)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json document: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml document: %w", err)
	}
	return enc.Close()
}

func writeTOML(w io.Writer, v any) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode toml document: %w", err)
	}
	return nil
}
