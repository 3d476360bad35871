// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/config"
	"github.com/spatialtools/pomwalk/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree. Running the root command without a
// subcommand prints the classpath, like `pomwalk classpath`.
func newRootCommand(app *App) *cobra.Command {
	var (
		verbose bool
		cfgFile string
		flags   classpathFlags
	)

	rootCmd := &cobra.Command{
		Use:   "pomwalk [descriptor]",
		Short: "Print the classpath of a Maven descriptor from the local repository",
		Long: TitleStyle.Render("pomwalk") + SubtitleStyle.Render(" - classpath from a descriptor and the local repository") + `

pomwalk reads a pom.xml, follows its parent and dependency descriptors
through the local artifact repository ($HOME/.m2/repository) and prints
the packaged artifacts found there as a classpath line.

Nothing is downloaded: artifacts missing from the local repository are
simply left out.

` + SubtitleStyle.Render("Examples:") + `
  pomwalk                        Classpath of ./pom.xml
  pomwalk --prepend ./target/classes --format env
  pomwalk tree app/pom.xml       Show how every dependency was resolved
  pomwalk verify                 Check artifact checksums and signatures
  pomwalk config show            Show current configuration`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: types.FilesystemPath(cfgFile)})
			if cfg != nil && cfg.UI.Verbose {
				verbose = true
			}

			ctx = log.WithContext(ctx, newLogger(app.stderr, verbose))
			cmd.SetContext(contextWithSession(ctx, &session{
				cfg:        cfg,
				cfgErr:     err,
				configFile: cfgFile,
				verbose:    verbose,
			}))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasspath(cmd, app, &flags, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every descriptor and dependency decision on stderr")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pomwalk/config.cue)")
	flags.register(rootCmd)

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(newClasspathCommand(app))
	rootCmd.AddCommand(newTreeCommand(app))
	rootCmd.AddCommand(newVerifyCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// newLogger returns the stderr logger: debug level when verbose, warnings
// otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "pomwalk",
		Level:  level,
	})
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the root command. It is called
// by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}
