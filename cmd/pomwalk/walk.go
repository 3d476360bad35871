// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spatialtools/pomwalk/internal/config"
	"github.com/spatialtools/pomwalk/internal/issue"
	"github.com/spatialtools/pomwalk/pkg/repository"
	"github.com/spatialtools/pomwalk/pkg/types"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

type (
	// walkFlags are the flags shared by every command that walks a descriptor.
	// They override the matching configuration keys when set.
	walkFlags struct {
		repo    string
		lenient bool
		exclude string
	}

	// walkPlan is a fully resolved walk: which descriptor, against which
	// repository, with which walker options.
	walkPlan struct {
		descriptor string
		repo       repository.Layout
		walker     *walker.Walker
	}
)

func (f *walkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.repo, "repo", "", "local repository root (default $HOME/.m2/repository)")
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "substitute empty text for undefined ${...} placeholders")
	cmd.Flags().StringVar(&f.exclude, "exclude", "", "regular expression of nested descriptors to skip (empty disables; default from config)")
}

// planWalk merges configuration and flags into a walkPlan.
func (app *App) planWalk(cmd *cobra.Command, cfg *config.Config, f *walkFlags, args []string) (*walkPlan, error) {
	descriptor := string(cfg.Descriptor)
	if len(args) > 0 {
		descriptor = args[0]
	}

	root := f.repo
	if root == "" {
		root = string(cfg.Repository)
	}
	if root == "" {
		var err error
		if root, err = repository.DefaultRootWith(app.getenv); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("locate local repository").
				WithSuggestion("Pass --repo or set 'repository' in the config file").
				WithIssue(issue.RepositoryNotFoundId).
				Wrap(err).
				BuildError()
		}
	}

	mode := cfg.Placeholders
	if f.lenient {
		mode = walker.PlaceholderLenient
	}

	pattern := cfg.ExcludePattern
	if cmd.Flags().Changed("exclude") {
		pattern = config.ExcludePattern(f.exclude)
	}
	exclude, err := pattern.Compile()
	if err != nil {
		return nil, err
	}

	layout := repository.New(root)
	return &walkPlan{
		descriptor: descriptor,
		repo:       layout,
		walker: walker.New(walker.Options{
			Repository:   layout,
			Placeholders: mode,
			Exclude:      exclude,
		}),
	}, nil
}

// run walks the planned descriptor. A missing repository root is only a
// warning: every lookup misses and the classpath is empty.
func (p *walkPlan) run(ctx context.Context) (*walker.Result, error) {
	logger := log.FromContext(ctx)
	if info, err := os.Stat(p.repo.Root()); err != nil || !info.IsDir() {
		logger.Warn("Local repository not found", "path", p.repo.Root())
	}

	res, err := p.walker.Walk(ctx, p.descriptor)
	if err != nil {
		return nil, walkFailure(err, p.descriptor)
	}

	for _, c := range res.Unresolved {
		logger.Warn("Unresolved dependency version", "dependency", c.String())
	}
	return res, nil
}

// display renders an artifact or descriptor path relative to the repository
// root when it lies inside it.
func (p *walkPlan) display(path string) string {
	if rel, ok := p.repo.Rel(path); ok {
		return rel
	}
	return path
}

// loadConfigOrFail returns the session configuration, rendering the load
// error when there is one.
func (app *App) loadConfigOrFail(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := sessionFromContext(cmd.Context()).loadedConfig()
	if err != nil {
		return nil, app.fail(cmd, err, types.ExitFailure)
	}
	return cfg, nil
}
