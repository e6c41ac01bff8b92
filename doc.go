// Package domset is an exact solver for the minimum dominating set problem:
// the smallest set D of vertices such that every vertex is in D or adjacent
// to a member of D.
//
// 🚀 What is in the box?
//
//	• Core primitives: thread-safe undirected/directed Graph, Vertex, Edge
//	• Builders: path, cycle, star, wheel, complete, bipartite, grid, random
//	  and literal graphs with deterministic IDs and seeds
//	• Solver: best-first branch-and-bound over immutable partial solutions
//	  (S = chosen, T = excluded) ordered by an admissible lower bound
//	• Documents: YAML and HCL graph files, YAML/text solve reports
//	• CLI: cmd/domset, load or generate a graph and print the optimum
//
// Subpackages:
//
//	core/     - Graph, Vertex, Edge, views, connected components
//	builder/  - deterministic graph constructors
//	domset/   - PartialSolution, Branch, Frontier, Solve, SolveCore, verification
//	graphio/  - YAML/HCL documents and reports
//	cmd/      - the domset binary
//
// Quick ASCII example:
//
//	    a───b───c
//
// has the single-vertex dominating set {b}; `domset -gen path:3` prints it.
//
//	go install github.com/katalvlaran/domset/cmd/domset@latest
package domset
