// SPDX-License-Identifier: MPL-2.0

package report

import (
	"slices"
	"strings"

	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

// Report is the machine-readable outcome of one walk.
type Report struct {
	// Descriptor is the absolute path of the walked root descriptor.
	Descriptor string `json:"descriptor" yaml:"descriptor" toml:"descriptor"`
	// Repository is the local repository root the walk resolved against.
	Repository string `json:"repository" yaml:"repository" toml:"repository"`
	// Classpath holds the prepended entries followed by the resolved artifacts.
	Classpath []string `json:"classpath" yaml:"classpath" toml:"classpath"`
	// Unresolved lists dependency records without a determinable version.
	Unresolved []pom.Coordinate `json:"unresolved" yaml:"unresolved" toml:"unresolved"`
	// Excluded lists nested descriptors skipped by the exclusion pattern.
	Excluded []string `json:"excluded" yaml:"excluded" toml:"excluded"`
}

// New builds a Report from a walk result. Prepend entries come first and are
// not deduplicated against the resolved artifacts.
func New(res *walker.Result, repositoryRoot string, prepend []string) *Report {
	classpath := make([]string, 0, len(prepend)+len(res.Classpath))
	classpath = append(classpath, prepend...)
	classpath = append(classpath, res.Classpath...)

	unresolved := slices.Clone(res.Unresolved)
	if unresolved == nil {
		unresolved = []pom.Coordinate{}
	}
	excluded := slices.Clone(res.Excluded)
	if excluded == nil {
		excluded = []string{}
	}

	return &Report{
		Descriptor: res.Root,
		Repository: repositoryRoot,
		Classpath:  classpath,
		Unresolved: unresolved,
		Excluded:   excluded,
	}
}

// Line joins the classpath entries with sep.
func (r *Report) Line(sep string) string {
	return strings.Join(r.Classpath, sep)
}
