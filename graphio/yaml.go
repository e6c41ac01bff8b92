// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Name  string     `yaml:"name,omitempty"`
	Nodes []string   `yaml:"nodes,omitempty"`
	Edges [][]string `yaml:"edges"`
}

// decodeYAML reads the first YAML document of r. Empty input is an empty graph.
func decodeYAML(r io.Reader) (*Document, error) {
	var yd yamlDocument
	if err := yaml.NewDecoder(r).Decode(&yd); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %v", ErrMalformedDocument, err)
	}

	doc := &Document{Name: yd.Name, Nodes: yd.Nodes}
	for i, e := range yd.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("graphio: edge #%d %v: %w", i, e, ErrMalformedEdge)
		}
		doc.Edges = append(doc.Edges, [2]string{e[0], e[1]})
	}

	return doc, nil
}

// EncodeYAML writes d in the format decodeYAML reads.
func EncodeYAML(w io.Writer, d *Document) error {
	yd := yamlDocument{Name: d.Name, Nodes: d.Nodes, Edges: make([][]string, 0, len(d.Edges))}
	for _, e := range d.Edges {
		yd.Edges = append(yd.Edges, []string{e[0], e[1]})
	}

	return encodeYAML(w, yd)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("graphio: encode yaml: %w", err)
	}

	return enc.Close()
}
