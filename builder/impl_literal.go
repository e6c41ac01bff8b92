// SPDX-License-Identifier: MIT
//
// impl_literal.go - Literal(ids, edges): a graph spelled out vertex by vertex.
// Used by graphio to materialize documents and by tests for small fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// LiteralOption tunes Literal.
type LiteralOption func(*literalConfig)

type literalConfig struct {
	implicit bool
}

// WithImplicitVertices lets edges introduce vertices missing from ids.
// Without it an undeclared endpoint fails with ErrUnknownEndpoint.
func WithImplicitVertices() LiteralOption {
	return func(c *literalConfig) { c.implicit = true }
}

// Literal returns a Constructor adding ids in the given order and then each
// edge pair in the given order. Repeated edges are skipped on simple graphs;
// a self-loop is an error unless the graph allows loops.
//
// Errors:
//   - core.ErrEmptyVertexID for an empty id or endpoint.
//   - ErrUnknownEndpoint for an undeclared endpoint (see WithImplicitVertices).
//   - core.ErrLoopNotAllowed for u-u on a loop-free graph.
func Literal(ids []string, edges [][2]string, opts ...LiteralOption) Constructor {
	var lc literalConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&lc)
		}
	}

	return func(g *core.Graph, _ builderConfig) error {
		if err := addVertices(g, MethodLiteral, ids); err != nil {
			return err
		}

		for i, e := range edges {
			if e[0] == "" || e[1] == "" {
				return fmt.Errorf("%s: edge #%d (%q,%q): %w", MethodLiteral, i, e[0], e[1], core.ErrEmptyVertexID)
			}
			if !lc.implicit {
				for _, end := range e {
					if !g.HasVertex(end) {
						return fmt.Errorf("%s: edge #%d endpoint %q: %w", MethodLiteral, i, end, ErrUnknownEndpoint)
					}
				}
			}
			if err := link(g, MethodLiteral, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
