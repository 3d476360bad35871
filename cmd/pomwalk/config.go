// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/config"
	"github.com/spatialtools/pomwalk/pkg/types"
)

// newConfigCommand creates the `pomwalk config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pomwalk configuration",
		Long: `Manage pomwalk configuration.

Configuration is stored in:
  - Linux: ~/.config/pomwalk/config.cue
  - macOS: ~/Library/Application Support/pomwalk/config.cue
  - Windows: %APPDATA%\pomwalk\config.cue

A config.cue in the working directory is used when the user file is absent.
Every key can be overridden with a POMWALK_* environment variable, for
example POMWALK_REPOSITORY or POMWALK_CLASSPATH_SEPARATOR.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfigOrFail(cmd)
			if err != nil {
				return err
			}
			path, err := config.Locate(loadOptions(cmd))
			if err != nil {
				return app.fail(cmd, err, types.ExitFailure)
			}
			showConfig(app.stdout, cfg, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig(config.LoadOptions{})
			if err != nil {
				return app.fail(cmd, fmt.Errorf("failed to create config: %w", err), types.ExitFailure)
			}
			if created {
				fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			} else {
				fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loadOptions(cmd)
			defaultPath, err := config.DefaultPath(opts)
			if err != nil {
				return app.fail(cmd, err, types.ExitFailure)
			}
			active, err := config.Locate(opts)
			if err != nil {
				return app.fail(cmd, err, types.ExitFailure)
			}

			fmt.Fprintf(app.stdout, "Config file: %s\n", defaultPath)
			if active == "" {
				fmt.Fprintf(app.stdout, "In use: %s\n", SubtitleStyle.Render("(none, using defaults)"))
			} else {
				fmt.Fprintf(app.stdout, "In use: %s\n", active)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfigOrFail(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

// loadOptions returns the provider options for the --config flag.
func loadOptions(cmd *cobra.Command) config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(sessionFromContext(cmd.Context()).configFile)}
}

func showConfig(w io.Writer, cfg *config.Config, path string) {
	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	value := func(v string) string {
		if v == "" {
			return SubtitleStyle.Render("(default)")
		}
		return valueStyle.Render(v)
	}

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("repository"), value(string(cfg.Repository)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("descriptor"), value(string(cfg.Descriptor)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("exclude_pattern"), value(string(cfg.ExcludePattern)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("placeholders"), value(string(cfg.Placeholders)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("classpath"))
	fmt.Fprintf(w, "  separator: %s\n", valueStyle.Render(fmt.Sprintf("%q", cfg.Classpath.Separator)))
	if len(cfg.Classpath.Prepend) == 0 {
		fmt.Fprintf(w, "  prepend: %s\n", SubtitleStyle.Render("(none)"))
	} else {
		fmt.Fprintf(w, "  prepend: %s\n", valueStyle.Render(strings.Join(cfg.Classpath.Prepend, ", ")))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(string(cfg.Output.Format)))
	fmt.Fprintf(w, "  variable: %s\n", valueStyle.Render(string(cfg.Output.Variable)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("verify"))
	fmt.Fprintf(w, "  checksums: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Verify.Checksums)))
	fmt.Fprintf(w, "  keyring: %s\n", value(string(cfg.Verify.Keyring)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
}
