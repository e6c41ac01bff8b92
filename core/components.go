// File: components.go
// Role: Connected-component discovery over undirected topology.
// Determinism:
//   - Components are ordered by their smallest vertex ID; members sorted lex asc.

package core

import (
	"errors"
	"sort"
)

// ErrDirectedComponents indicates ConnectedComponents was called on a graph with directed edges.
var ErrDirectedComponents = errors.New("core: connected components require an undirected graph")

// ConnectedComponents partitions the vertices of an undirected graph into its
// connected components using breadth-first sweeps seeded in Vertices() order.
// Isolated vertices form singleton components.
//
// Errors:
//   - ErrDirectedComponents if g is directed or holds directed edges.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func ConnectedComponents(g *Graph) ([][]string, error) {
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrDirectedComponents
	}

	adj := g.AdjacencyList()
	order := g.Vertices()
	seen := make(map[string]bool, len(order))

	var comps [][]string
	var start, u, v string
	for _, start = range order {
		if seen[start] {
			continue
		}
		queue := []string{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u = queue[qi]
			for _, v = range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(queue)
		comps = append(comps, queue)
	}

	return comps, nil
}
