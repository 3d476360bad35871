// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialtools/pomwalk/pkg/pom"
)

func TestRepo_WritesCanonicalLayout(t *testing.T) {
	t.Parallel()

	repo := NewRepo(t)
	jar := repo.Jar("com.acme:widget:1.0")
	desc := repo.Descriptor("com.acme:widget:1.0", Dependencies(Dep("com.acme:gadget:2.0", "scope", "runtime")))

	wantJar := filepath.Join(repo.Root(), "com", "acme", "widget", "1.0", "widget-1.0.jar")
	if jar != wantJar {
		t.Errorf("Jar() = %q, want %q", jar, wantJar)
	}
	if filepath.Ext(desc) != ".pom" {
		t.Errorf("Descriptor() = %q, want .pom file", desc)
	}

	doc, err := pom.ParseFile(desc)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(doc.Dependencies) != 1 || doc.Dependencies[0].Scope != "runtime" {
		t.Errorf("Dependencies = %+v", doc.Dependencies)
	}
}

func TestRepo_Sidecar(t *testing.T) {
	t.Parallel()

	repo := NewRepo(t)
	jar := repo.Jar("g:a:1")
	p := repo.Sidecar(jar, ".sha1", []byte("abc"))

	data, err := os.ReadFile(p)
	if err != nil || string(data) != "abc" {
		t.Errorf("sidecar = %q, %v", data, err)
	}
}

func TestNewHomeRepo(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	repo := NewHomeRepo(t, home)
	if want := filepath.Join(home, ".m2", "repository"); repo.Root() != want {
		t.Errorf("Root() = %q, want %q", repo.Root(), want)
	}
}

func TestDescriptorHelpers(t *testing.T) {
	t.Parallel()

	body := Parent("g:p:1") + Managed(Dep("g:a:2")) + Properties("x", "1")
	doc, err := pom.Parse([]byte(Project(body)), "helpers")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Parent == nil || doc.Parent.Version != "1" {
		t.Errorf("Parent = %+v", doc.Parent)
	}
	if len(doc.Managed) != 1 || doc.Managed[0].Version != "2" {
		t.Errorf("Managed = %+v", doc.Managed)
	}
	if len(doc.Properties) != 1 || doc.Properties[0].Name != "x" {
		t.Errorf("Properties = %+v", doc.Properties)
	}
	if !strings.Contains(Dep("g:a"), "<artifactId>a</artifactId>") || strings.Contains(Dep("g:a"), "<version>") {
		t.Errorf("Dep without version rendered %q", Dep("g:a"))
	}
}
