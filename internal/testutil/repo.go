// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/repository"
)

// Repo builds a local artifact repository under a temporary directory.
type Repo struct {
	t      testing.TB
	layout repository.Layout
}

// NewRepo creates an empty repository in a fresh temporary directory.
func NewRepo(t testing.TB) *Repo {
	t.Helper()
	root := filepath.Join(t.TempDir(), "repository")
	MustMkdirAll(t, root)
	return &Repo{t: t, layout: repository.New(root)}
}

// NewHomeRepo creates an empty repository at <home>/.m2/repository.
func NewHomeRepo(t testing.TB, home string) *Repo {
	t.Helper()
	root := filepath.Join(home, filepath.FromSlash(repository.DefaultRelativeRoot))
	MustMkdirAll(t, root)
	return &Repo{t: t, layout: repository.New(root)}
}

// Root returns the repository root directory.
func (r *Repo) Root() string { return r.layout.Root() }

// Layout returns the repository layout.
func (r *Repo) Layout() repository.Layout { return r.layout }

// Paths returns the artifact and descriptor paths for a coordinate.
func (r *Repo) Paths(gav string) (artifact, descriptor string) {
	return r.layout.Candidates(r.layout.Stem(ParseGAV(gav)))
}

// Jar writes a packaged artifact for "group:artifact:version" and returns its
// path. The content is derived from the coordinate so checksums are stable.
func (r *Repo) Jar(gav string) string {
	r.t.Helper()
	jar, _ := r.Paths(gav)
	MustWriteFile(r.t, jar, []byte("artifact "+gav+"\n"))
	return jar
}

// Descriptor writes a descriptor for "group:artifact:version" whose project
// element contains body, and returns its path.
func (r *Repo) Descriptor(gav, body string) string {
	r.t.Helper()
	_, descriptor := r.Paths(gav)
	MustWriteFile(r.t, descriptor, []byte(Project(body)))
	return descriptor
}

// Sidecar writes a file next to path with the given extension appended.
func (r *Repo) Sidecar(path, ext string, data []byte) string {
	r.t.Helper()
	p := path + ext
	MustWriteFile(r.t, p, data)
	return p
}

// MustMkdirAll creates a directory along with any necessary parents.
// The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// Project wraps body in a project element with an XML declaration.
func Project(body string) string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<project>\n" + body + "\n</project>\n"
}

// Dep renders a dependency element for "group:artifact[:version]" with
// optional extra child elements given as name, value pairs.
func Dep(gav string, extra ...string) string {
	return record("dependency", gav, extra...)
}

// Parent renders a parent element for "group:artifact:version".
func Parent(gav string) string {
	return record("parent", gav)
}

// Dependencies wraps dependency elements in a dependencies element.
func Dependencies(deps ...string) string {
	return "<dependencies>\n" + strings.Join(deps, "\n") + "\n</dependencies>"
}

// Managed wraps dependency elements in a dependencyManagement section.
func Managed(deps ...string) string {
	return "<dependencyManagement>\n" + Dependencies(deps...) + "\n</dependencyManagement>"
}

// Properties renders a properties element from name, value pairs.
func Properties(kv ...string) string {
	var sb strings.Builder
	sb.WriteString("<properties>\n")
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&sb, "<%s>%s</%s>\n", kv[i], kv[i+1], kv[i])
	}
	sb.WriteString("</properties>")
	return sb.String()
}

// ParseGAV splits "group:artifact[:version]" into a coordinate.
func ParseGAV(gav string) pom.Coordinate {
	parts := strings.SplitN(gav, ":", 3)
	c := pom.Coordinate{GroupID: parts[0]}
	if len(parts) > 1 {
		c.ArtifactID = parts[1]
	}
	if len(parts) > 2 {
		c.Version = parts[2]
	}
	return c
}

func record(element, gav string, extra ...string) string {
	c := ParseGAV(gav)
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%s>\n<groupId>%s</groupId>\n<artifactId>%s</artifactId>\n", element, c.GroupID, c.ArtifactID)
	if c.Version != "" {
		fmt.Fprintf(&sb, "<version>%s</version>\n", c.Version)
	}
	for i := 0; i+1 < len(extra); i += 2 {
		fmt.Fprintf(&sb, "<%s>%s</%s>\n", extra[i], extra[i+1], extra[i])
	}
	fmt.Fprintf(&sb, "</%s>", element)
	return sb.String()
}
