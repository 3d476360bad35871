// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spatialtools/pomwalk/internal/config"
	"github.com/spatialtools/pomwalk/pkg/pom"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

func sampleReport() *Report {
	res := &walker.Result{
		Root:       "/work/app/pom.xml",
		Classpath:  []string{"/repo/org/x/a/1.0/a-1.0.jar", "/repo/org/x/b/2.0/b-2.0.jar"},
		Unresolved: []pom.Coordinate{{GroupID: "org.x", ArtifactID: "c"}},
		Excluded:   []string{"org/neo4j/neo4j/1.0/neo4j-1.0.pom"},
	}
	return New(res, "/repo", []string{"./target/classes"})
}

func TestNew(t *testing.T) {
	t.Parallel()

	r := sampleReport()
	want := []string{"./target/classes", "/repo/org/x/a/1.0/a-1.0.jar", "/repo/org/x/b/2.0/b-2.0.jar"}
	if diff := cmp.Diff(want, r.Classpath); diff != "" {
		t.Errorf("Classpath mismatch (-want +got):\n%s", diff)
	}
	if r.Descriptor != "/work/app/pom.xml" || r.Repository != "/repo" {
		t.Errorf("Descriptor/Repository = %q, %q", r.Descriptor, r.Repository)
	}
}

func TestNew_EmptyListsAreNotNil(t *testing.T) {
	t.Parallel()

	r := New(&walker.Result{Root: "/p/pom.xml"}, "/repo", nil)
	if r.Classpath == nil || r.Unresolved == nil || r.Excluded == nil {
		t.Fatalf("New() left nil slices: %+v", r)
	}

	var buf bytes.Buffer
	if err := Write(&buf, r, Options{Format: config.FormatJSON}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"unresolved": []`) {
		t.Errorf("json output should carry empty arrays, got:\n%s", buf.String())
	}
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), Options{Format: config.FormatText, Separator: ":"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "./target/classes:/repo/org/x/a/1.0/a-1.0.jar:/repo/org/x/b/2.0/b-2.0.jar\n"
	if got := buf.String(); got != want {
		t.Errorf("text output = %q, want %q", got, want)
	}
}

func TestWrite_TextEmptyClasspath(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&walker.Result{Root: "/p/pom.xml"}, "/repo", nil)
	if err := Write(&buf, r, Options{Format: config.FormatText, Separator: ":"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "\n" {
		t.Errorf("text output = %q, want a bare newline", got)
	}
}

func TestWrite_Env(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		classpath []string
		sep       config.Separator
		want      string
	}{
		{"plain", []string{"./target/classes", "/repo/a.jar"}, ":", "CLASSPATH=./target/classes:/repo/a.jar\n"},
		{"space", []string{"/my repo/a.jar", "/b.jar"}, ":", "CLASSPATH='/my repo/a.jar:/b.jar'\n"},
		{"semicolon separator", []string{"a.jar", "b.jar"}, ";", "CLASSPATH='a.jar;b.jar'\n"},
		{"empty", nil, ":", "CLASSPATH=''\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			r := &Report{Classpath: tt.classpath}
			opts := Options{Format: config.FormatEnv, Separator: tt.sep, Variable: "CLASSPATH"}
			if err := Write(&buf, r, opts); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("env output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite_EnvRejectsBadVariable(t *testing.T) {
	t.Parallel()

	opts := Options{Format: config.FormatEnv, Separator: ":", Variable: "CLASS-PATH"}
	err := Write(&bytes.Buffer{}, sampleReport(), opts)
	if !errors.Is(err, config.ErrInvalidVariableName) {
		t.Errorf("Write() error = %v, want ErrInvalidVariableName", err)
	}
}

func TestWrite_Documents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format config.OutputFormat
		decode func([]byte, any) error
	}{
		{config.FormatJSON, json.Unmarshal},
		{config.FormatYAML, yaml.Unmarshal},
		{config.FormatTOML, toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			want := sampleReport()
			var buf bytes.Buffer
			if err := Write(&buf, want, Options{Format: tt.format}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			var got Report
			if err := tt.decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode %s output: %v\n%s", tt.format, err, buf.String())
			}
			if diff := cmp.Diff(want, &got); diff != "" {
				t.Errorf("%s document mismatch (-want +got):\n%s", tt.format, diff)
			}
		})
	}
}

func TestWrite_YAMLKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), Options{Format: config.FormatYAML}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	for _, key := range []string{"descriptor: /work/app/pom.xml", "group_id: org.x", "artifact_id: c"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("yaml output missing %q:\n%s", key, buf.String())
		}
	}
	if strings.Contains(buf.String(), "version:") {
		t.Errorf("unresolved coordinate should omit the empty version:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, sampleReport(), Options{Format: "xml"})
	if !errors.Is(err, config.ErrInvalidOutputFormat) {
		t.Errorf("Write() error = %v, want ErrInvalidOutputFormat", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.FormatEnv
	cfg.Output.Variable = "CP"
	cfg.Classpath.Separator = ";"

	want := Options{Format: config.FormatEnv, Separator: ";", Variable: "CP"}
	if got := OptionsFromConfig(cfg); got != want {
		t.Errorf("OptionsFromConfig() = %+v, want %+v", got, want)
	}
}

func TestWriteDocument_RejectsLineFormats(t *testing.T) {
	t.Parallel()

	for _, f := range []config.OutputFormat{config.FormatText, config.FormatEnv} {
		err := WriteDocument(&bytes.Buffer{}, sampleReport(), f)
		if !errors.Is(err, config.ErrInvalidOutputFormat) {
			t.Errorf("WriteDocument(%s) error = %v, want ErrInvalidOutputFormat", f, err)
		}
	}
}

func TestWriteDocument_Trace(t *testing.T) {
	t.Parallel()

	trace := &walker.TraceNode{
		Kind:       walker.KindRoot,
		Decision:   walker.DecisionRecursed,
		Descriptor: "/work/app/pom.xml",
		Children: []*walker.TraceNode{{
			Kind:       walker.KindDependency,
			Coordinate: pom.Coordinate{GroupID: "org.x", ArtifactID: "a", Version: "1.0"},
			Decision:   walker.DecisionAdded,
			Jar:        "/repo/org/x/a/1.0/a-1.0.jar",
		}},
	}

	var buf bytes.Buffer
	if err := WriteDocument(&buf, trace, config.FormatJSON); err != nil {
		t.Fatalf("WriteDocument() error = %v", err)
	}
	var got walker.TraceNode
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(trace, &got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}
