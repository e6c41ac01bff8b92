// Package domset finds minimum dominating sets by best-first branch-and-bound.
//
// A dominating set D of an undirected graph G = (V, E) contains, for every
// node v, v itself or a neighbor of v. The search explores partial solutions
// (S, T): S is committed to D, T is committed to stay out of D, and the rest
// U = V \ (S ∪ T) is undecided.
//
// For each partial solution:
//
//	covered   = ∪ N[s] for s ∈ S           (closed neighborhoods)
//	w(u)      = |N[u] \ covered|  for u ∈ U (coverage potential)
//	maxW      = max w, lowest NodeID on ties
//	bound     = |S| + |V \ covered| / maxW  (admissible)
//
// The frontier is a min-heap on the bound. Solve pops the cheapest state,
// returns its S once nothing is left uncovered and otherwise branches on the
// maxW node: one child adds it to S, the other to T. A child in which some
// uncovered node has its whole closed neighborhood in T cannot be completed;
// its bound is +Inf and it is dropped.
//
// Inputs:
//
//	NewAdjacencyGraph(n, edges)  nodes 0..n-1
//	FromCore(g)                  a core.Graph, with Label/Lookup translation
//	any Graph implementation     Nodes + ClosedNeighborhood
//
// Entry points:
//
//	Solve(g, opts...)      (*Result, error)
//	SolveCore(g, opts...)  (*CoreResult, error)
//	IsDominatingSet(g, set) / Undominated(g, set)
//
// Building blocks (exported for inspection and tests):
//
//	NewPartialSolution(g, S, T), Branch(ps, n), NewFrontier()
//
// Options: WithContext, WithMaxExpansions, WithBound, WithSplitComponents,
// WithOnPush, WithOnExpand, WithOnSolved.
//
// Partial solutions are immutable and own no mutable shared state, so they
// may be inspected from hooks or other goroutines. Solve itself is
// single-threaded.
package domset
