// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/config"
	"github.com/spatialtools/pomwalk/internal/report"
	"github.com/spatialtools/pomwalk/pkg/types"
)

// classpathFlags are the flags of the classpath command (and of the root
// command, which runs it by default).
type classpathFlags struct {
	walkFlags
	format    string
	prepend   []string
	separator string
	verify    bool
	keyring   string
}

func (f *classpathFlags) register(cmd *cobra.Command) {
	f.walkFlags.register(cmd)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, env, json, yaml or toml (default from config: text)")
	cmd.Flags().StringArrayVar(&f.prepend, "prepend", nil, "entry placed before the resolved artifacts (repeatable), e.g. ./target/classes")
	cmd.Flags().StringVar(&f.separator, "separator", "", "classpath entry separator (default from config: \":\")")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check .sha1/.md5 sidecars of every artifact after the walk")
	cmd.Flags().StringVar(&f.keyring, "keyring", "", "OpenPGP public keyring for checking .asc signatures")
}

func newClasspathCommand(app *App) *cobra.Command {
	var flags classpathFlags

	cmd := &cobra.Command{
		Use:   "classpath [descriptor]",
		Short: "Print the classpath of a descriptor",
		Long: `Walk the descriptor (default ./pom.xml) and print the packaged artifacts
found in the local repository, in discovery order and without duplicates.

Formats:
  text   entries joined by the separator on one line
  env    CLASSPATH=<shell-quoted value>, suitable for eval
  json   a document with the descriptor, repository, classpath,
  yaml   unresolved dependencies and excluded descriptors
  toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasspath(cmd, app, &flags, args)
		},
	}
	flags.register(cmd)

	return cmd
}

func runClasspath(cmd *cobra.Command, app *App, flags *classpathFlags, args []string) error {
	cfg, err := app.loadConfigOrFail(cmd)
	if err != nil {
		return err
	}

	opts := report.OptionsFromConfig(cfg)
	if cmd.Flags().Changed("format") {
		opts.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("separator") {
		opts.Separator = config.Separator(flags.separator)
	}
	if valid, errs := opts.Format.IsValid(); !valid {
		return app.fail(cmd, errs[0], types.ExitFailure)
	}

	prepend := cfg.Classpath.Prepend
	if cmd.Flags().Changed("prepend") {
		prepend = flags.prepend
	}

	plan, err := app.planWalk(cmd, cfg, &flags.walkFlags, args)
	if err != nil {
		return app.fail(cmd, err, types.ExitFailure)
	}

	res, err := plan.run(cmd.Context())
	if err != nil {
		return app.fail(cmd, err, types.ExitFailure)
	}

	if err := report.Write(app.stdout, report.New(res, plan.repo.Root(), prepend), opts); err != nil {
		return app.fail(cmd, err, types.ExitFailure)
	}

	checksums := flags.verify || cfg.Verify.Checksums
	keyring := string(cfg.Verify.Keyring)
	if flags.keyring != "" {
		keyring = flags.keyring
	}
	if !checksums && keyring == "" {
		return nil
	}

	// The classpath stays alone on stdout; the verification summary goes to stderr.
	return app.verifyArtifacts(cmd, plan, res.Classpath, checksums, keyring, app.stderr)
}
