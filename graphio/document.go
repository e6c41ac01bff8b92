// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for an unsupported extension or Format.
	ErrUnknownFormat = errors.New("graphio: unknown document format")

	// ErrMalformedEdge is returned for an edge without exactly two endpoints.
	ErrMalformedEdge = errors.New("graphio: edge must have exactly two endpoints")

	// ErrEmptyID is returned for an empty node ID or endpoint.
	ErrEmptyID = errors.New("graphio: empty node id")

	// ErrMalformedDocument is returned when a document cannot be parsed or
	// does not hold exactly one graph.
	ErrMalformedDocument = errors.New("graphio: malformed document")
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Document is a format-neutral undirected graph description.
type Document struct {
	Name  string
	Nodes []string
	Edges [][2]string
}

// FormatFromPath maps .yaml/.yml to FormatYAML and .hcl to FormatHCL.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the document at path. The file's base name without extension is
// the fallback graph name.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	return Decode(f, strings.TrimSuffix(base, filepath.Ext(base)), format)
}

// Decode reads one document from r. name is used when the document does not
// name its graph; for HCL it is also the file name in diagnostics.
func Decode(r io.Reader, name string, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(r)
	case FormatHCL:
		doc, err = decodeHCL(r, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if doc.Name == "" {
		doc.Name = name
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate rejects empty node IDs and endpoints.
func (d *Document) Validate() error {
	for i, n := range d.Nodes {
		if n == "" {
			return fmt.Errorf("graphio: node #%d: %w", i, ErrEmptyID)
		}
	}
	for i, e := range d.Edges {
		if e[0] == "" || e[1] == "" {
			return fmt.Errorf("graphio: edge #%d (%q,%q): %w", i, e[0], e[1], ErrEmptyID)
		}
	}

	return nil
}

// Graph builds an undirected simple core.Graph from d. Repeated edges
// collapse; a self-loop fails with core.ErrLoopNotAllowed.
func (d *Document) Graph() (*core.Graph, error) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Literal(d.Nodes, d.Edges, builder.WithImplicitVertices()))
	if err != nil {
		return nil, fmt.Errorf("graphio: graph %q: %w", d.Name, err)
	}

	return g, nil
}

// FromGraph describes g as a Document, listing vertices in sorted order and
// edges in Edge.ID order.
func FromGraph(name string, g *core.Graph) *Document {
	doc := &Document{Name: name, Nodes: g.Vertices()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]string{e.From, e.To})
	}

	return doc
}
