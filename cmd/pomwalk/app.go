// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spatialtools/pomwalk/internal/config"
)

type (
	sessionContextKey struct{}

	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every Cobra handler receives an App reference.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
		getenv func(string) string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
		// Getenv looks up HOME for the default repository root.
		Getenv func(string) string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// session is the per-invocation state established by the root command's
	// PersistentPreRunE and read by every subcommand.
	session struct {
		cfg        *config.Config
		cfgErr     error
		configFile string
		verbose    bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		getenv: deps.Getenv,
	}
}

func contextWithSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// sessionFromContext returns the session attached by the root command, or a
// session holding the default configuration when none is attached.
func sessionFromContext(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionContextKey{}).(*session); ok {
		return s
	}
	return &session{cfg: config.DefaultConfig()}
}

// loadedConfig returns the loaded configuration or the error that prevented loading.
func (s *session) loadedConfig() (*config.Config, error) {
	if s.cfgErr != nil {
		return nil, s.cfgErr
	}
	return s.cfg, nil
}

// colorScheme returns the glamour style for rendering issue help.
func (s *session) colorScheme() string {
	if s.cfg == nil {
		return string(config.ColorSchemeAuto)
	}
	return string(s.cfg.UI.ColorScheme)
}
