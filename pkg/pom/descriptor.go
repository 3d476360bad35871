// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"fmt"
	"strings"
)

type (
	// TextExpander substitutes placeholders in a descriptor text value.
	TextExpander interface {
		Expand(text string) (string, error)
	}

	// Dependency is one dependency-shaped record: a parent reference, a
	// dependencyManagement pin or a direct dependency. Elements without a
	// dedicated field are kept in Extra by element name.
	Dependency struct {
		GroupID      string
		ArtifactID   string
		Version      string
		Scope        string
		Type         string
		Classifier   string
		Optional     string
		RelativePath string
		Extra        map[string]string
	}

	// Property is one entry of the properties block.
	Property struct {
		Name  string
		Value string
	}

	// Identity is the descriptor's own coordinate plus its packaging.
	Identity struct {
		GroupID    string
		ArtifactID string
		Version    string
		Packaging  string
	}

	// Document is one parsed descriptor. Records keep document order.
	Document struct {
		// Path is the file the document was read from (may be empty).
		Path         string
		Identity     Identity
		Parent       *Dependency
		Managed      []Dependency
		Properties   []Property
		Dependencies []Dependency
	}
)

// Coordinate returns the record's coordinate as written.
func (d Dependency) Coordinate() Coordinate {
	return Coordinate{GroupID: d.GroupID, ArtifactID: d.ArtifactID, Version: d.Version}
}

// Key returns the "group/artifact" key of the record.
func (d Dependency) Key() string {
	return d.Coordinate().Key()
}

// Expand returns a copy of the record with its placeholders substituted.
// The fields that feed resolution (groupId, artifactId, version, scope, type)
// go through x and the first failure aborts, naming the field. The remaining
// fields, Extra included, go through aux; a field aux cannot expand keeps its
// raw text. A nil aux leaves them raw.
func (d Dependency) Expand(x, aux TextExpander) (Dependency, error) {
	out := d
	strict := []struct {
		name string
		ptr  *string
	}{
		{"groupId", &out.GroupID},
		{"artifactId", &out.ArtifactID},
		{"version", &out.Version},
		{"scope", &out.Scope},
		{"type", &out.Type},
	}
	for _, f := range strict {
		v, err := x.Expand(*f.ptr)
		if err != nil {
			return Dependency{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.ptr = v
	}

	if aux == nil {
		return out, nil
	}
	for _, ptr := range []*string{&out.Classifier, &out.Optional, &out.RelativePath} {
		*ptr = expandOrRaw(aux, *ptr)
	}
	if len(d.Extra) > 0 {
		out.Extra = make(map[string]string, len(d.Extra))
		for name, raw := range d.Extra {
			out.Extra[name] = expandOrRaw(aux, raw)
		}
	}
	return out, nil
}

func expandOrRaw(x TextExpander, raw string) string {
	v, err := x.Expand(raw)
	if err != nil {
		return raw
	}
	return v
}

// LastGroupSegment returns the last dot-separated segment of the group id.
func (d Dependency) LastGroupSegment() string {
	if i := strings.LastIndex(d.GroupID, "."); i >= 0 {
		return d.GroupID[i+1:]
	}
	return d.GroupID
}

// Coordinate returns the descriptor's own coordinate, inheriting group and
// version from the parent reference when the descriptor omits them.
func (doc *Document) Coordinate() Coordinate {
	c := Coordinate{
		GroupID:    doc.Identity.GroupID,
		ArtifactID: doc.Identity.ArtifactID,
		Version:    doc.Identity.Version,
	}
	if doc.Parent != nil {
		if c.GroupID == "" {
			c.GroupID = doc.Parent.GroupID
		}
		if c.Version == "" {
			c.Version = doc.Parent.Version
		}
	}
	return c
}

// IsEmpty reports whether the document declares no parent and no dependencies.
func (doc *Document) IsEmpty() bool {
	return doc.Parent == nil && len(doc.Dependencies) == 0
}
