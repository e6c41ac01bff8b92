// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclFile struct {
	Graphs []*hclGraph `hcl:"graph,block"`
}

type hclGraph struct {
	Name  string     `hcl:"name,label"`
	Nodes []string   `hcl:"nodes,optional"`
	Edges []*hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// decodeHCL parses r as native HCL syntax. filename only labels diagnostics.
func decodeHCL(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", filename, err)
	}

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrMalformedDocument, filename, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMalformedDocument, filename, diags)
	}
	if len(parsed.Graphs) != 1 {
		return nil, fmt.Errorf("%w: %s holds %d graph blocks, want 1", ErrMalformedDocument, filename, len(parsed.Graphs))
	}

	g := parsed.Graphs[0]
	doc := &Document{Name: g.Name, Nodes: g.Nodes}
	for _, e := range g.Edges {
		doc.Edges = append(doc.Edges, [2]string{e.From, e.To})
	}

	return doc, nil
}
