// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the storage layer the domination
// solvers read their topology from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Edges carry no weight: every algorithm built on this package works on
// plain topology.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)            // sorted by Edge.ID
//	NeighborIDs(id string) ([]string, error)         // unique, sorted
//	ClosedNeighborhood(id string) ([]string, error)  // id ∪ NeighborIDs(id), sorted
//	AdjacencyList() map[string][]string              // snapshot
//	Vertices() []string                              // O(V·log V), sorted
//	Edges() []*Edge                                  // O(E·log E), sorted
//	Degree(id string) (int, error)                   // distinct neighbors
//
//	// Views
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//	ConnectedComponents(g) ([][]string, error)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
