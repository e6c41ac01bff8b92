// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, ClosedNeighborhood, AdjacencyList)
//       and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() and ClosedNeighborhood() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id (outgoing edges).
//   - Undirected edges: every incident edge; self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges collected.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted lexicographically ascending.
// A self-loop makes id its own neighbor.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound.
//
// Complexity:
//   - Time O(k log k), Space O(k), where k is the number of distinct neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ClosedNeighborhood returns id together with every vertex adjacent to it
// (the "ball" of radius one), unique and sorted lex asc.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound.
//
// Complexity:
//   - Time O(k log k), Space O(k).
func (g *Graph) ClosedNeighborhood(id string) ([]string, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	i := sort.SearchStrings(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids, nil // self-loop already lists id
	}
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its sorted neighbor IDs.
// Returned slices are freshly allocated and safe to retain.
//
// Complexity:
//   - Time O(V + E + Σ sort(deg(v))), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		buf := make([]string, 0, len(toMap))
		for to, edgeSet := range toMap {
			if len(edgeSet) > 0 {
				buf = append(buf, to)
			}
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency guarantees that adjacencyList[from] and adjacencyList[from][to] are initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for the edge endpoints,
// pruning buckets that become empty. Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}
