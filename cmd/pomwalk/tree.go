// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/config"
	"github.com/spatialtools/pomwalk/internal/report"
	"github.com/spatialtools/pomwalk/pkg/types"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

func newTreeCommand(app *App) *cobra.Command {
	var (
		flags  walkFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "tree [descriptor]",
		Short: "Show how every parent and dependency record was resolved",
		Long: `Walk the descriptor and print the decision taken for every record:

  added         the packaged artifact was put on the classpath
  recursed      its descriptor was walked (children follow)
  skipped-test  test-scoped, ignored
  excluded      its descriptor matched the exclusion pattern
  unresolved    no version could be determined
  missing       neither artifact nor descriptor is in the local repository`,
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

			if format == "" || format == string(config.FormatText) {
				fmt.Fprintln(app.stdout, renderTrace(plan, res.Trace))
				return nil
			}
			if err := report.WriteDocument(app.stdout, res.Trace, config.OutputFormat(format)); err != nil {
				return app.fail(cmd, err, types.ExitFailure)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml or toml")

	return cmd
}

// renderTrace renders the walk trace as a styled tree.
func renderTrace(plan *walkPlan, root *walker.TraceNode) string {
	t := newTraceTree(TitleStyle.Render(plan.display(root.Descriptor)))
	addTraceChildren(t, plan, root.Children)
	return t.String()
}

func newTraceTree(label string) *tree.Tree {
	return tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)
}

func addTraceChildren(t *tree.Tree, plan *walkPlan, nodes []*walker.TraceNode) {
	for _, n := range nodes {
		label := traceLabel(plan, n)
		if len(n.Children) == 0 {
			t.Child(label)
			continue
		}
		sub := newTraceTree(label)
		addTraceChildren(sub, plan, n.Children)
		t.Child(sub)
	}
}

// traceLabel renders "<kind> <coordinate> [decision]" plus the scope when set.
func traceLabel(plan *walkPlan, n *walker.TraceNode) string {
	label := n.Coordinate.String()
	if n.Kind == walker.KindParent {
		label = SubtitleStyle.Render("parent") + " " + label
	}
	if n.Scope != "" {
		label += " " + SubtitleStyle.Render("("+n.Scope+")")
	}
	label += " " + decisionStyle(n.Decision).Render("["+n.Decision.String()+"]")
	if n.Decision == walker.DecisionExcluded && n.Descriptor != "" {
		label += " " + SubtitleStyle.Render(plan.display(n.Descriptor))
	}
	return label
}
