// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/repository"
)

const (
	// ProjectVersionProperty is set from the version of a "library" record.
	ProjectVersionProperty = "project.version"

	libraryArtifactID = "library"
	testScopeMarker   = "test"
	jtaMarker         = "jta"
	// JTAFallbackVersion is used for unpinned, versionless records whose
	// artifact id mentions jta.
	JTAFallbackVersion = "1.1.1"
)

var (
	artifactTypes   = []string{"", "jar", "package"}
	descriptorTypes = []string{"", "pom", "descriptor"}
)

// FindVersion returns the version for a versionless record: the pinned version
// for key, else JTAFallbackVersion when artifactID contains "jta", else "".
func FindVersion(pins VersionPins, key, artifactID string) string {
	if v, ok := pins.Lookup(key); ok && v != "" {
		return v
	}
	if strings.Contains(artifactID, jtaMarker) {
		return JTAFallbackVersion
	}
	return ""
}

// resolve processes one parent or dependency record and returns the artifact
// paths it contributes.
func (w *Walker) resolve(ctx context.Context, st *State, raw pom.Dependency, kind NodeKind) (*PathSet, *TraceNode, error) {
	pad := indent(st.Depth() - 1)

	scope, err := st.expander.Expand(raw.Scope)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: scope: %w", kind, raw.Coordinate(), err)
	}
	if strings.Contains(scope, testScopeMarker) {
		// Test records are skipped before their coordinate has to expand.
		shown, _ := raw.Expand(st.lenient, nil)
		st.logger.Debug(pad+"Ignoring test artifact", "artifact", shown.ArtifactID)
		return nil, &TraceNode{Kind: kind, Coordinate: shown.Coordinate(), Scope: scope, Decision: DecisionSkippedTest}, nil
	}

	dep, err := raw.Expand(st.expander, st.lenient)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", kind, raw.Coordinate(), err)
	}
	st.logger.Debug(pad+"Record", "kind", kind.String(), "coordinate", dep.Coordinate().String(), "scope", dep.Scope, "type", dep.Type)

	node := &TraceNode{Kind: kind, Coordinate: dep.Coordinate(), Scope: dep.Scope}

	if dep.ArtifactID == libraryArtifactID {
		st.logger.Debug(pad+"Setting property", "name", ProjectVersionProperty, "value", dep.Version)
		st.Properties.Set(ProjectVersionProperty, dep.Version)
		dep.ArtifactID = dep.LastGroupSegment()
	}

	if dep.Version == "" {
		dep.Version = FindVersion(st.Pins, dep.Key(), dep.ArtifactID)
	}
	coord := dep.Coordinate()
	node.Coordinate = coord

	if !coord.IsResolved() {
		st.logger.Warn(pad+"No version for dependency", "dependency", coord.Key())
		st.addUnresolved(coord)
		node.Decision = DecisionUnresolved
		return nil, node, nil
	}

	stem, err := st.expander.Expand(w.repo.Stem(coord))
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", kind, coord, err)
	}
	jar, descriptor := w.repo.Candidates(stem)

	set := NewPathSet()

	st.logger.Debug(pad+"Testing artifact", "path", jar)
	if repository.Exists(jar) && slices.Contains(artifactTypes, dep.Type) {
		set.Add(jar)
		node.Jar = jar
		st.logger.Debug(pad+"Added artifact to classpath", "path", jar)
	}

	walked := false
	st.logger.Debug(pad+"Testing descriptor", "path", descriptor)
	if repository.Exists(descriptor) && slices.Contains(descriptorTypes, dep.Type) {
		node.Descriptor = descriptor
		if w.excluded(descriptor) {
			st.logger.Debug(pad+"Skipping excluded descriptor", "path", w.display(descriptor))
			st.addExcluded(descriptor)
			node.Decision = DecisionExcluded
		} else {
			nested, err := w.walkDescriptor(ctx, st, descriptor, node)
			if err != nil {
				return nil, nil, fmt.Errorf("%s %s: %w", kind, coord, err)
			}
			set.Merge(nested)
			walked = true
		}
	}

	node.settle(walked)
	return set, node, nil
}

// excluded reports whether a nested descriptor matches the exclusion pattern.
// The pattern is applied to the repository-relative path, or to the full path
// when the descriptor lies outside the repository.
func (w *Walker) excluded(descriptor string) bool {
	if w.exclude == nil {
		return false
	}
	return w.exclude.MatchString(w.display(descriptor))
}
