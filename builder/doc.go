// Package builder provides deterministic topology constructors over core.Graph.
// They produce the fixture families the domination solver is exercised on and
// materialize graphs read from documents (Literal).
//
// Entry point:
//
//	g, err := builder.BuildGraph(gopts, bopts, builder.Cycle(6), builder.Star(4))
//
// Constructors (impl_*.go):
//
//	Path(n)                 P_n, n ≥ 2
//	Cycle(n)                C_n, n ≥ 3
//	Star(n)                 hub "Center" + n-1 leaves, n ≥ 2
//	Wheel(n)                C_{n-1} + hub "Center", n ≥ 4
//	Complete(n)             K_n, n ≥ 1
//	CompleteBipartite(a, b) K_{a,b} with "L<i>" / "R<j>" IDs
//	Grid(r, c)              r×c lattice, IDs "r,c"
//	RandomSparse(n, p)      G(n, p); needs WithSeed/WithRand when 0<p<1
//	RandomRegular(n, d)     random d-regular, undirected only
//	Literal(ids, edges)     explicit vertex and edge lists
//
// Options: WithIDScheme (DefaultIDFn, LetterIDFn, ExcelColumnIDFn, PrefixIDFn),
// WithSeed, WithRand, WithPartitionPrefix. Option constructors never panic.
//
// Directed graphs receive both arcs of every generated edge so each topology
// stays symmetric. Errors wrap the sentinels in errors.go with the
// constructor's method tag; branch with errors.Is.
package builder
