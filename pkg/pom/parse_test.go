// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.example</groupId>
    <artifactId>example-parent</artifactId>
    <version>7</version>
    <relativePath>../parent</relativePath>
  </parent>
  <artifactId>spatial</artifactId>
  <version>0.9-SNAPSHOT</version>
  <packaging>jar</packaging>
  <properties>
    <geotools.version>2.7.1</geotools.version>
    <jts.version> 1.11 </jts.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.vividsolutions</groupId>
        <artifactId>jts</artifactId>
        <version>${jts.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>org.geotools</groupId>
      <artifactId>gt-main</artifactId>
      <version>${geotools.version}</version>
      <exclusions>
        <exclusion>
          <groupId>javax.media</groupId>
          <artifactId>jai_core</artifactId>
        </exclusion>
      </exclusions>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.8</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
  <build>
    <plugins>
      <plugin>
        <artifactId>maven-compiler-plugin</artifactId>
        <dependencies>
          <dependency>
            <groupId>plugin.only</groupId>
            <artifactId>ignored</artifactId>
          </dependency>
        </dependencies>
      </plugin>
    </plugins>
  </build>
</project>
`

func TestParse_Sample(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleDescriptor), "pom.xml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantIdentity := Identity{ArtifactID: "spatial", Version: "0.9-SNAPSHOT", Packaging: "jar"}
	if diff := cmp.Diff(wantIdentity, doc.Identity); diff != "" {
		t.Errorf("Identity mismatch (-want +got):\n%s", diff)
	}

	wantParent := &Dependency{GroupID: "org.example", ArtifactID: "example-parent", Version: "7", RelativePath: "../parent"}
	if diff := cmp.Diff(wantParent, doc.Parent); diff != "" {
		t.Errorf("Parent mismatch (-want +got):\n%s", diff)
	}

	wantProps := []Property{
		{Name: "geotools.version", Value: "2.7.1"},
		{Name: "jts.version", Value: "1.11"},
	}
	if diff := cmp.Diff(wantProps, doc.Properties); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}

	wantManaged := []Dependency{{GroupID: "com.vividsolutions", ArtifactID: "jts", Version: "${jts.version}"}}
	if diff := cmp.Diff(wantManaged, doc.Managed); diff != "" {
		t.Errorf("Managed mismatch (-want +got):\n%s", diff)
	}

	wantDeps := []Dependency{
		{GroupID: "org.geotools", ArtifactID: "gt-main", Version: "${geotools.version}", Extra: map[string]string{"exclusions": ""}},
		{GroupID: "junit", ArtifactID: "junit", Version: "4.8", Scope: "test"},
	}
	if diff := cmp.Diff(wantDeps, doc.Dependencies); diff != "" {
		t.Errorf("Dependencies mismatch (-want +got):\n%s", diff)
	}

	if got := doc.Coordinate(); got.String() != "org.example:spatial:0.9-SNAPSHOT" {
		t.Errorf("Coordinate() = %s, want group inherited from parent", got)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty document", "", "empty document"},
		{"unclosed element", "<project><dependencies>", "syntax error"},
		{"wrong root element", "<settings><localRepository/></settings>", "root element is <settings>"},
		{"unknown encoding", `<?xml version="1.0" encoding="EBCDIC"?><project/>`, "unsupported descriptor encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse([]byte(tt.input), "broken.pom")
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", doc)
			}
			if doc != nil {
				t.Error("Parse() returned a partial document alongside an error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error should wrap ErrParse, got: %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error should be *ParseError, got %T", err)
			}
			if pe.Path != "broken.pom" {
				t.Errorf("ParseError.Path = %q, want broken.pom", pe.Path)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_Latin1(t *testing.T) {
	t.Parallel()

	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<project><properties><author>Jos\xe9</author></properties></project>")
	doc, err := Parse(data, "latin1.pom")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Properties) != 1 || doc.Properties[0].Value != "José" {
		t.Errorf("Properties = %+v, want author=José", doc.Properties)
	}
}

func TestParse_MinimalDescriptorIsEmpty(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`<project><artifactId>lonely</artifactId></project>`), "pom.xml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !doc.IsEmpty() {
		t.Errorf("IsEmpty() = false for descriptor without parent or dependencies")
	}
}

func TestParseFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "pom.xml"))
	if err == nil {
		t.Fatal("ParseFile() on missing file should fail")
	}
	if !errors.Is(err, ErrParse) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap both ErrParse and fs.ErrNotExist, got: %v", err)
	}
}

func TestParseFile_ReadsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pom.xml")
	if err := os.WriteFile(path, []byte(sampleDescriptor), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if doc.Path != path {
		t.Errorf("Document.Path = %q, want %q", doc.Path, path)
	}
	if len(doc.Dependencies) != 2 {
		t.Errorf("len(Dependencies) = %d, want 2", len(doc.Dependencies))
	}
}
