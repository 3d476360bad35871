// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"errors"
	"strings"
	"testing"
)

// upperExpander upper-cases text and rejects anything containing "bad".
type upperExpander struct{}

func (upperExpander) Expand(text string) (string, error) {
	if strings.Contains(text, "bad") {
		return "", errors.New("rejected")
	}
	return strings.ToUpper(text), nil
}

func TestDependency_Expand(t *testing.T) {
	t.Parallel()

	in := Dependency{
		GroupID:    "org.example",
		ArtifactID: "widget",
		Version:    "1.0",
		Extra:      map[string]string{"systemPath": "lib/x.jar"},
	}
	out, err := in.Expand(upperExpander{}, upperExpander{})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if out.GroupID != "ORG.EXAMPLE" || out.ArtifactID != "WIDGET" {
		t.Errorf("Expand() = %+v, want upper-cased fields", out)
	}
	if out.Extra["systemPath"] != "LIB/X.JAR" {
		t.Errorf("Extra not expanded: %v", out.Extra)
	}
	if in.Extra["systemPath"] != "lib/x.jar" {
		t.Error("Expand() mutated the receiver's Extra map")
	}
}

func TestDependency_ExpandNamesFailingField(t *testing.T) {
	t.Parallel()

	_, err := Dependency{GroupID: "g", ArtifactID: "a", Version: "bad"}.Expand(upperExpander{}, upperExpander{})
	if err == nil {
		t.Fatal("Expand() should fail")
	}
	if !strings.HasPrefix(err.Error(), "version:") {
		t.Errorf("error %q should name the version field", err)
	}
}

func TestDependency_ExpandDescriptiveFieldsNeverFail(t *testing.T) {
	t.Parallel()

	in := Dependency{
		GroupID:    "com.sun",
		ArtifactID: "tools",
		Version:    "1.6",
		Classifier: "bad-${os}",
		Extra:      map[string]string{"systemPath": "${java.home}/bad/tools.jar", "note": "ok"},
	}
	out, err := in.Expand(upperExpander{}, upperExpander{})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if out.Classifier != "bad-${os}" || out.Extra["systemPath"] != "${java.home}/bad/tools.jar" {
		t.Errorf("failing descriptive fields should keep raw text, got %+v", out)
	}
	if out.Extra["note"] != "OK" {
		t.Errorf("Extra[note] = %q, want OK", out.Extra["note"])
	}

	raw, err := in.Expand(upperExpander{}, nil)
	if err != nil {
		t.Fatalf("Expand(nil aux) error = %v", err)
	}
	if raw.GroupID != "COM.SUN" || raw.Extra["note"] != "ok" {
		t.Errorf("Expand(nil aux) = %+v, want coordinate expanded and Extra raw", raw)
	}
}

func TestDependency_LastGroupSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		group string
		want  string
	}{
		{"org.example.foo", "foo"},
		{"single", "single"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := (Dependency{GroupID: tt.group}).LastGroupSegment(); got != tt.want {
			t.Errorf("LastGroupSegment(%q) = %q, want %q", tt.group, got, tt.want)
		}
	}
}

func TestCoordinate(t *testing.T) {
	t.Parallel()

	c := Coordinate{GroupID: "com.acme", ArtifactID: "widget", Version: "1.0"}
	if c.Key() != "com.acme/widget" {
		t.Errorf("Key() = %q", c.Key())
	}
	if c.String() != "com.acme:widget:1.0" {
		t.Errorf("String() = %q", c.String())
	}
	if !c.IsResolved() {
		t.Error("IsResolved() = false for versioned coordinate")
	}

	unversioned := Coordinate{GroupID: "com.acme", ArtifactID: "widget"}
	if unversioned.IsResolved() || unversioned.String() != "com.acme:widget" {
		t.Errorf("unversioned coordinate rendered as %q", unversioned.String())
	}

	if valid, errs := (Coordinate{ArtifactID: "x"}).IsValid(); valid || !errors.Is(errs[0], ErrInvalidCoordinate) {
		t.Errorf("IsValid() on coordinate without group = %v, %v", valid, errs)
	}
}
