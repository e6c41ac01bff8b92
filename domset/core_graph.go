// SPDX-License-Identifier: MIT
//
// core_graph.go - adapter from core.Graph and the label-aware SolveCore.

package domset

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// CoreGraph is an immutable Graph snapshot of an undirected core.Graph.
// Vertex IDs, sorted ascending, map to NodeIDs 0..n-1.
type CoreGraph struct {
	labels []string
	ids    map[string]NodeID
	balls  [][]NodeID
}

// FromCore snapshots g. Later changes to g are not observed.
//
// Errors: ErrGraphNil, ErrDirectedGraph.
//
// Complexity: O(V log V + E).
func FromCore(g *core.Graph) (*CoreGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}

	labels := g.Vertices()
	ids := make(map[string]NodeID, len(labels))
	for i, l := range labels {
		ids[l] = NodeID(i)
	}

	balls := make([][]NodeID, len(labels))
	for i, l := range labels {
		nb, err := g.ClosedNeighborhood(l)
		if err != nil {
			return nil, fmt.Errorf("domset: vertex %q: %w", l, err)
		}
		ball := make([]NodeID, len(nb))
		for k, m := range nb {
			ball[k] = ids[m]
		}
		balls[i] = ball
	}

	return &CoreGraph{labels: labels, ids: ids, balls: balls}, nil
}

// Nodes returns 0..n-1.
func (g *CoreGraph) Nodes() []NodeID {
	out := make([]NodeID, len(g.labels))
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// ClosedNeighborhood returns n and its neighbors.
func (g *CoreGraph) ClosedNeighborhood(n NodeID) ([]NodeID, error) {
	if n < 0 || int(n) >= len(g.balls) {
		return nil, fmt.Errorf("domset: node %d: %w", n, ErrNodeNotFound)
	}
	out := make([]NodeID, len(g.balls[n]))
	copy(out, g.balls[n])

	return out, nil
}

// Label returns the core vertex ID of n, or "" for an unknown node.
func (g *CoreGraph) Label(n NodeID) string {
	if n < 0 || int(n) >= len(g.labels) {
		return ""
	}

	return g.labels[n]
}

// Labels maps ns to vertex IDs, preserving order.
func (g *CoreGraph) Labels(ns []NodeID) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = g.Label(n)
	}

	return out
}

// Lookup returns the NodeID of vertex id.
func (g *CoreGraph) Lookup(id string) (NodeID, bool) {
	n, ok := g.ids[id]
	return n, ok
}

// CoreResult is a Result translated back to core vertex IDs.
type CoreResult struct {
	Result
	// Labels are the vertex IDs of Set, sorted ascending.
	Labels []string
	// Components is the number of connected components solved separately
	// (1 unless WithSplitComponents was given).
	Components int
}

// SolveCore solves g and reports the dominators by vertex ID.
// With WithSplitComponents each connected component is solved on its own and
// the sets are joined; a minimum dominating set of a disconnected graph is the
// union of per-component minima. Statistics are summed and RootBound becomes
// the sum of component root bounds.
//
// Errors: those of FromCore and Solve.
func SolveCore(g *core.Graph, opts ...Option) (*CoreResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}

	if !o.SplitComponents {
		cg, err := FromCore(g)
		if err != nil {
			return nil, err
		}
		res, err := Solve(cg, opts...)
		if err != nil {
			return nil, err
		}
		return &CoreResult{Result: *res, Labels: cg.Labels(res.Set), Components: 1}, nil
	}

	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}
	comps, err := core.ConnectedComponents(g)
	if err != nil {
		return nil, fmt.Errorf("domset: %w", err)
	}

	var labels []string
	total := Result{}
	for i, members := range comps {
		keep := make(map[string]bool, len(members))
		for _, m := range members {
			keep[m] = true
		}
		cg, err := FromCore(core.InducedSubgraph(g, keep))
		if err != nil {
			return nil, err
		}
		res, err := Solve(cg, opts...)
		if err != nil {
			return nil, fmt.Errorf("domset: component %d of %d: %w", i+1, len(comps), err)
		}
		labels = append(labels, cg.Labels(res.Set)...)
		total.Expanded += res.Expanded
		total.Generated += res.Generated
		total.Pruned += res.Pruned
		total.RootBound += res.RootBound
		if res.MaxFrontier > total.MaxFrontier {
			total.MaxFrontier = res.MaxFrontier
		}
	}

	// NodeIDs of the whole graph, so Set and Labels line up with FromCore(g).
	full, err := FromCore(g)
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		n, _ := full.Lookup(l)
		total.Set = append(total.Set, n)
	}
	sortNodes(total.Set)
	total.Size = len(total.Set)

	return &CoreResult{Result: total, Labels: full.Labels(total.Set), Components: len(comps)}, nil
}
