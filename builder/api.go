// SPDX-License-Identifier: MIT
//
// api.go - BuildGraph orchestrator and the Constructor type.
//
// Contract:
//   - BuildGraph creates g from gopts, resolves one builderConfig from bopts
//     and runs constructors in order against the same g.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters before touching g and respect the graph's
// mode flags (directed, loops, multigraph).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts and applies cons in order.
// The first failing constructor aborts the build; its error is wrapped as
// "BuildGraph: %w" and no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph with a freshly resolved config.
// A nil g fails with ErrConstructFailed.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
