// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/issue"
	"github.com/spatialtools/pomwalk/internal/verify"
	"github.com/spatialtools/pomwalk/pkg/types"
)

func newVerifyCommand(app *App) *cobra.Command {
	var (
		flags   walkFlags
		keyring string
	)

	cmd := &cobra.Command{
		Use:   "verify [descriptor]",
		Short: "Check the artifacts on the classpath against their checksums and signatures",
		Long: `Walk the descriptor, then check every resolved artifact against the
.sha1 and .md5 files next to it in the local repository. With a keyring,
.asc detached signatures are checked too.

Artifacts without any of these files are reported as unverified, which is
not a failure. The command exits with status 3 when any check fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfigOrFail(cmd)
			if err != nil {
				return err
			}

			plan, err := app.planWalk(cmd, cfg, &flags, args)
			if err != nil {
				return app.fail(cmd, err, types.ExitFailure)
			}

			res, err := plan.run(cmd.Context())
			if err != nil {
				return app.fail(cmd, err, types.ExitFailure)
			}

			ring := string(cfg.Verify.Keyring)
			if keyring != "" {
				ring = keyring
			}
			return app.verifyArtifacts(cmd, plan, res.Classpath, true, ring, app.stdout)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&keyring, "keyring", "", "OpenPGP public keyring for checking .asc signatures (default from config)")

	return cmd
}

// verifyArtifacts checks artifacts, prints one line per artifact and a summary
// to out, and fails with ExitVerificationFailed when any check failed.
func (app *App) verifyArtifacts(cmd *cobra.Command, plan *walkPlan, artifacts []string, checksums bool, keyringPath string, out io.Writer) error {
	opts := verify.Options{Checksums: checksums}
	if keyringPath != "" {
		ring, err := verify.LoadKeyring(keyringPath)
		if err != nil {
			return app.fail(cmd, issue.NewErrorContext().
				WithOperation("load keyring").
				WithResource(keyringPath).
				WithSuggestion("Export the publisher's public key with: gpg --export --armor <key-id> > keys.asc").
				WithIssue(issue.VerificationFailedId).
				Wrap(err).
				BuildError(), types.ExitFailure)
		}
		opts.Keyring = ring
	}

	summary, err := verify.New(opts).VerifyAll(cmd.Context(), artifacts)
	if err != nil {
		return app.fail(cmd, err, types.ExitFailure)
	}

	renderSummary(out, plan, summary)

	if err := summary.Err(); err != nil {
		return app.fail(cmd, err, types.ExitVerificationFailed)
	}
	return nil
}

func renderSummary(w io.Writer, plan *walkPlan, summary *verify.Summary) {
	for _, o := range summary.Outcomes {
		status := o.Status()
		fmt.Fprintf(w, "%s %s\n", statusStyle(status).Render(fmt.Sprintf("%-10s", status)), plan.display(o.Artifact))
		for _, c := range o.Checks {
			if c.Status == verify.StatusFailed {
				fmt.Fprintf(w, "           %s: %s\n", c.Kind, c.Detail)
			}
		}
	}

	fmt.Fprintf(w, "\n%s %s, %s, %s\n",
		TitleStyle.Render("Verified:"),
		SuccessStyle.Render(fmt.Sprintf("%d ok", summary.Count(verify.StatusOK))),
		ErrorStyle.Render(fmt.Sprintf("%d failed", summary.Count(verify.StatusFailed))),
		SubtitleStyle.Render(fmt.Sprintf("%d unverified", summary.Count(verify.StatusUnverified))),
	)
}
