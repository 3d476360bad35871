// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// MaxDescriptorSize bounds the bytes read for a single descriptor.
const MaxDescriptorSize = 8 << 20

// rootElement is the local name every descriptor's document element must have.
const rootElement = "project"

type (
	xmlProject struct {
		XMLName      xml.Name
		GroupID      string        `xml:"groupId"`
		ArtifactID   string        `xml:"artifactId"`
		Version      string        `xml:"version"`
		Packaging    string        `xml:"packaging"`
		Parent       *xmlRecord    `xml:"parent"`
		Managed      []xmlRecord   `xml:"dependencyManagement>dependencies>dependency"`
		Properties   xmlProperties `xml:"properties"`
		Dependencies []xmlRecord   `xml:"dependencies>dependency"`
	}

	// xmlRecord collects the direct child elements of a dependency-shaped
	// element as name/text pairs.
	xmlRecord struct {
		dep Dependency
	}

	xmlProperties struct {
		list []Property
	}
)

// ParseFile reads and parses the descriptor at path.
// Read failures are reported as *ParseError just like malformed markup.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	//nolint:errcheck // read-only file
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxDescriptorSize+1))
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	return Parse(data, path)
}

// Parse decodes one descriptor. name is used for error messages and recorded
// as Document.Path.
func Parse(data []byte, name string) (*Document, error) {
	if len(data) > MaxDescriptorSize {
		return nil, &ParseError{Path: name, Cause: fmt.Errorf("descriptor exceeds %d bytes", MaxDescriptorSize)}
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var p xmlProject
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &ParseError{Path: name, Cause: err}
	}
	if p.XMLName.Local != rootElement {
		return nil, &ParseError{Path: name, Cause: fmt.Errorf("root element is <%s>, want <%s>", p.XMLName.Local, rootElement)}
	}

	doc := &Document{
		Path: name,
		Identity: Identity{
			GroupID:    strings.TrimSpace(p.GroupID),
			ArtifactID: strings.TrimSpace(p.ArtifactID),
			Version:    strings.TrimSpace(p.Version),
			Packaging:  strings.TrimSpace(p.Packaging),
		},
		Properties: p.Properties.list,
	}
	if p.Parent != nil {
		parent := p.Parent.dep
		doc.Parent = &parent
	}
	for _, r := range p.Managed {
		doc.Managed = append(doc.Managed, r.dep)
	}
	for _, r := range p.Dependencies {
		doc.Dependencies = append(doc.Dependencies, r.dep)
	}
	return doc, nil
}

// UnmarshalXML reads every direct child element as a text field. Nested
// content (for example exclusions) is skipped; only direct text is kept.
func (r *xmlRecord) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	return eachChild(d, func(name, text string) {
		r.dep.set(name, text)
	})
}

// UnmarshalXML reads the properties block in document order.
func (p *xmlProperties) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	return eachChild(d, func(name, text string) {
		p.list = append(p.list, Property{Name: name, Value: text})
	})
}

// eachChild walks the direct children of the current element, calling fn with
// each child's local name and trimmed character data, and consumes the
// enclosing end element.
func eachChild(d *xml.Decoder, fn func(name, text string)) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var text string
			if err := d.DecodeElement(&text, &t); err != nil {
				return err
			}
			fn(t.Name.Local, strings.TrimSpace(text))
		case xml.EndElement:
			return nil
		}
	}
}

func (d *Dependency) set(name, value string) {
	switch name {
	case "groupId":
		d.GroupID = value
	case "artifactId":
		d.ArtifactID = value
	case "version":
		d.Version = value
	case "scope":
		d.Scope = value
	case "type":
		d.Type = value
	case "classifier":
		d.Classifier = value
	case "optional":
		d.Optional = value
	case "relativePath":
		d.RelativePath = value
	default:
		if d.Extra == nil {
			d.Extra = make(map[string]string)
		}
		d.Extra[name] = value
	}
}

// charsetReader supports the single-byte encodings older descriptors declare.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("unsupported descriptor encoding %q", charset)
	}
}
