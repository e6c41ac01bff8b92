// SPDX-License-Identifier: MIT
//
// graph.go - the Graph capability consumed by the solver and AdjacencyGraph,
// a plain in-memory implementation over nodes 0..n-1.

package domset

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Graph is the read-only view the solver needs: a fixed node set and each
// node's closed neighborhood (the node plus every adjacent node).
// ClosedNeighborhood must fail with an error wrapping ErrNodeNotFound for a
// node outside Nodes(). The graph must not change while a search runs.
type Graph interface {
	Nodes() []NodeID
	ClosedNeighborhood(n NodeID) ([]NodeID, error)
}

// AdjacencyGraph is an undirected simple graph over NodeIDs 0..n-1.
type AdjacencyGraph struct {
	adj [][]NodeID // sorted open neighborhoods
}

// NewAdjacencyGraph builds a graph with nodes 0..n-1 and the given edges.
// Self-loops are ignored and repeated edges are collapsed. An endpoint outside
// [0, n) fails with ErrNodeNotFound; a negative n with ErrNodeNotFound too.
//
// Complexity: O(n + E log E).
func NewAdjacencyGraph(n int, edges [][2]NodeID) (*AdjacencyGraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("domset: node count %d: %w", n, ErrNodeNotFound)
	}

	adj := make([][]NodeID, n)
	for _, e := range edges {
		for _, end := range e {
			if end < 0 || int(end) >= n {
				return nil, fmt.Errorf("domset: edge (%d,%d): node %d: %w", e[0], e[1], end, ErrNodeNotFound)
			}
		}
		if e[0] == e[1] {
			continue
		}
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}

	return &AdjacencyGraph{adj: adj}, nil
}

// Nodes returns 0..n-1.
func (g *AdjacencyGraph) Nodes() []NodeID {
	out := make([]NodeID, len(g.adj))
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// ClosedNeighborhood returns n and its neighbors, sorted ascending.
func (g *AdjacencyGraph) ClosedNeighborhood(n NodeID) ([]NodeID, error) {
	if n < 0 || int(n) >= len(g.adj) {
		return nil, fmt.Errorf("domset: node %d: %w", n, ErrNodeNotFound)
	}

	ball := make([]NodeID, 0, len(g.adj[n])+1)
	ball = append(ball, g.adj[n]...)
	i, _ := slices.BinarySearch(ball, n)
	ball = slices.Insert(ball, i, n)

	return ball, nil
}

// NodeCount returns the number of nodes.
func (g *AdjacencyGraph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct undirected edges.
func (g *AdjacencyGraph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}
