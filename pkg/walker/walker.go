// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/repository"
)

// DefaultExcludePattern matches nested descriptors that are never walked.
const DefaultExcludePattern = "neo4j"

type (
	// Options configures a Walker.
	Options struct {
		// Repository is the local artifact repository layout.
		Repository repository.Layout
		// Placeholders selects strict or lenient placeholder expansion.
		Placeholders PlaceholderMode
		// Exclude matches nested descriptors that must not be walked. Nil
		// disables exclusion.
		Exclude *regexp.Regexp
		// Logger receives the walk trace at debug level. When nil, the logger
		// attached to the context (log.FromContext) is used.
		Logger *log.Logger
	}

	// Walker resolves descriptors against a local repository.
	Walker struct {
		repo    repository.Layout
		mode    PlaceholderMode
		exclude *regexp.Regexp
		logger  *log.Logger
	}

	// Result is the outcome of a walk.
	Result struct {
		// Root is the absolute path of the root descriptor.
		Root string
		// Classpath lists artifact paths in first-discovery order, deduplicated.
		Classpath []string
		// Unresolved lists records whose version could not be determined.
		Unresolved []pom.Coordinate
		// Excluded lists nested descriptors skipped by the exclusion pattern.
		Excluded []string
		// Trace is the decision tree of the walk.
		Trace *TraceNode
	}
)

// New creates a Walker.
func New(opts Options) *Walker {
	return &Walker{
		repo:    opts.Repository,
		mode:    opts.Placeholders,
		exclude: opts.Exclude,
		logger:  opts.Logger,
	}
}

// Repository returns the repository layout the walker resolves against.
func (w *Walker) Repository() repository.Layout { return w.repo }

// Walk walks the descriptor at path and everything it transitively references.
// Parse failures, strict-mode placeholder failures and cyclic references abort
// the walk; unresolved versions and missing files do not.
func (w *Walker) Walk(ctx context.Context, path string) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve descriptor path %s: %w", path, err)
	}

	st := NewState(w.mode)
	st.logger = w.logger
	if st.logger == nil {
		st.logger = log.FromContext(ctx)
	}

	root := &TraceNode{Kind: KindRoot, Descriptor: abs}
	set, err := w.walkDescriptor(ctx, st, abs, root)
	if err != nil {
		return nil, err
	}
	root.settle(true)

	return &Result{
		Root:       abs,
		Classpath:  set.Paths(),
		Unresolved: slices.Clone(st.unresolved),
		Excluded:   slices.Clone(st.excluded),
		Trace:      root,
	}, nil
}

// walkDescriptor parses one descriptor and processes its parent, pins,
// properties and dependencies in that order. node receives the records as
// children.
func (w *Walker) walkDescriptor(ctx context.Context, st *State, path string, node *TraceNode) (*PathSet, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("walk %s: %w", w.display(path), ctx.Err())
	default:
	}

	key := filepath.Clean(path)
	if st.inProgress[key] {
		return nil, &CyclicReferenceError{Chain: w.displayAll(st.cycleFrom(key))}
	}

	st.enter(key)
	defer st.leave(key)

	pad := indent(st.Depth() - 1)
	st.logger.Debug(pad+"Reading descriptor", "path", w.display(key))
	st.logger.Debug(pad + "path: " + strings.Join(w.displayAll(st.Chain()), " => "))

	doc, err := pom.ParseFile(key)
	if err != nil {
		return nil, err
	}
	if node.Kind == KindRoot {
		node.Coordinate = doc.Coordinate()
	}

	set := NewPathSet()

	if doc.Parent != nil {
		contrib, child, err := w.resolve(ctx, st, *doc.Parent, KindParent)
		if err != nil {
			return nil, err
		}
		node.addChild(child)
		set.Merge(contrib)
	}

	for _, raw := range doc.Managed {
		pin, err := raw.Expand(st.expander, st.lenient)
		if err != nil {
			return nil, fmt.Errorf("managed dependency %s: %w", raw.Coordinate(), err)
		}
		if pin.Version == "" {
			continue
		}
		st.Pins.Pin(pin.Key(), pin.Version)
		st.logger.Debug(pad+"Dependency version", "dependency", pin.Key(), "version", pin.Version)
	}

	for _, p := range doc.Properties {
		v, err := st.expander.Expand(p.Value)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}
		st.logger.Debug(pad+"Property", "name", p.Name, "value", v)
		st.Properties.Set(p.Name, v)
	}

	for _, raw := range doc.Dependencies {
		contrib, child, err := w.resolve(ctx, st, raw, KindDependency)
		if err != nil {
			return nil, err
		}
		node.addChild(child)
		set.Merge(contrib)
	}

	return set, nil
}

// display returns p relative to the repository root when it lies inside it.
func (w *Walker) display(p string) string {
	if w.repo.Root() != "" {
		if rel, ok := w.repo.Rel(p); ok {
			return rel
		}
	}
	return p
}

func (w *Walker) displayAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = w.display(p)
	}
	return out
}
