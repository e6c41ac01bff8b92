package domset_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/domset"
)

func TestSolve_KnownInstances(t *testing.T) {
	tests := []struct {
		name string
		g    func(t *testing.T) domset.Graph
		want []domset.NodeID
	}{
		{"P3", func(t *testing.T) domset.Graph { return pathGraph(t, 3) }, []domset.NodeID{1}},
		{"two triangles", func(t *testing.T) domset.Graph { return twoTriangles(t) }, []domset.NodeID{0, 3}},
		{"star 9 leaves", func(t *testing.T) domset.Graph { return starGraph(t, 9) }, []domset.NodeID{0}},
		{"K5", func(t *testing.T) domset.Graph {
			var edges [][2]domset.NodeID
			for i := 0; i < 5; i++ {
				for j := i + 1; j < 5; j++ {
					edges = append(edges, [2]domset.NodeID{domset.NodeID(i), domset.NodeID(j)})
				}
			}
			return mustGraph(t, 5, edges)
		}, []domset.NodeID{0}},
		{"single node", func(t *testing.T) domset.Graph { return mustGraph(t, 1, nil) }, []domset.NodeID{0}},
		{"isolated nodes", func(t *testing.T) domset.Graph { return mustGraph(t, 3, nil) }, []domset.NodeID{0, 1, 2}},
		{"empty graph", func(t *testing.T) domset.Graph { return mustGraph(t, 0, nil) }, []domset.NodeID{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := domset.Solve(tc.g(t))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Set)
			assert.Equal(t, len(tc.want), res.Size)
		})
	}
}

func TestSolve_P3Stats(t *testing.T) {
	res, err := domset.Solve(pathGraph(t, 3))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, 3, res.Generated)
	assert.Equal(t, 0, res.Pruned)
	assert.Equal(t, 2, res.MaxFrontier)
	assert.Equal(t, 1.0, res.RootBound)
}

func TestSolve_TenNodeScenario(t *testing.T) {
	g := mustGraph(t, 10, tenNodeEdges)
	res, err := domset.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Size)

	ok, err := domset.IsDominatingSet(g, res.Set)
	require.NoError(t, err)
	assert.True(t, ok, "returned set %v does not dominate", res.Set)

	for u := domset.NodeID(0); u < 10; u++ {
		for v := u + 1; v < 10; v++ {
			ok, err := domset.IsDominatingSet(g, []domset.NodeID{u, v})
			require.NoError(t, err)
			assert.False(t, ok, "{%d,%d} dominates", u, v)
		}
	}
	assert.Equal(t, 1+2*res.Expanded, res.Generated)
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	bounds := []domset.BoundAlgo{domset.BoundFractional, domset.BoundCeil, domset.BoundNone}
	for iter := 0; iter < 60; iter++ {
		n := 1 + rng.Intn(11)
		g := randomGraph(t, rng, n, 0.1+0.4*rng.Float64())
		want := bruteForceCompletion(t, g, nil, nil)

		for _, b := range bounds {
			res, err := domset.Solve(g, domset.WithBound(b))
			require.NoError(t, err)
			assert.Equal(t, want, res.Size, "iter %d bound %s", iter, b)

			ok, err := domset.IsDominatingSet(g, res.Set)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	}
}

func TestSolve_PartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := randomGraph(t, rng, 12, 0.25)

	pushes := 0
	check := func(ps *domset.PartialSolution) {
		pushes++
		s, tt, u := ps.S(), ps.T(), ps.Undecided()
		seen := make(map[domset.NodeID]int)
		for _, group := range [][]domset.NodeID{s, tt, u} {
			for _, n := range group {
				seen[n]++
			}
		}
		assert.Len(t, seen, 12)
		for n, c := range seen {
			assert.Equal(t, 1, c, "node %d in %d classes", n, c)
		}
		assert.True(t, ps.IsFeasible())
	}

	res, err := domset.Solve(g, domset.WithOnPush(check))
	require.NoError(t, err)
	assert.Equal(t, res.Generated-res.Pruned, pushes)
}

func TestSolve_Hooks(t *testing.T) {
	g := mustGraph(t, 10, tenNodeEdges)
	var expands int
	var solved *domset.PartialSolution

	res, err := domset.Solve(g,
		domset.WithOnExpand(func(ps *domset.PartialSolution, n domset.NodeID) {
			expands++
			w, ok := ps.MaxWNode()
			assert.True(t, ok)
			assert.Equal(t, w, n)
			assert.False(t, ps.Decided(n))
		}),
		domset.WithOnSolved(func(ps *domset.PartialSolution) { solved = ps }),
	)
	require.NoError(t, err)

	assert.Equal(t, res.Expanded, expands)
	require.NotNil(t, solved)
	assert.True(t, solved.IsDominated())
	assert.Equal(t, res.Set, solved.S())
}

func TestSolve_Errors(t *testing.T) {
	g := mustGraph(t, 10, tenNodeEdges)

	_, err := domset.Solve(nil)
	assert.ErrorIs(t, err, domset.ErrGraphNil)

	_, err = domset.Solve(g, domset.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, domset.ErrOptionViolation)

	_, err = domset.Solve(g, domset.WithBound(domset.BoundAlgo(9)))
	assert.ErrorIs(t, err, domset.ErrOptionViolation)

	_, err = domset.Solve(g, domset.WithMaxExpansions(1))
	assert.ErrorIs(t, err, domset.ErrExpansionLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = domset.Solve(g, domset.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseBound(t *testing.T) {
	for _, b := range []domset.BoundAlgo{domset.BoundFractional, domset.BoundCeil, domset.BoundNone} {
		got, err := domset.ParseBound(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := domset.ParseBound("tight")
	assert.ErrorIs(t, err, domset.ErrOptionViolation)
	assert.Equal(t, "BoundAlgo(7)", domset.BoundAlgo(7).String())
}

// rawGraph lets tests hand the solver malformed neighborhoods.
type rawGraph struct {
	nodes []domset.NodeID
	balls map[domset.NodeID][]domset.NodeID
}

func (g rawGraph) Nodes() []domset.NodeID { return g.nodes }

func (g rawGraph) ClosedNeighborhood(n domset.NodeID) ([]domset.NodeID, error) {
	b, ok := g.balls[n]
	if !ok {
		return nil, domset.ErrNodeNotFound
	}
	return b, nil
}

func TestSolve_GraphContract(t *testing.T) {
	sparse := rawGraph{
		nodes: []domset.NodeID{30, 10, 20},
		balls: map[domset.NodeID][]domset.NodeID{10: {10, 20}, 20: {10, 20, 30}, 30: {20}},
	}
	res, err := domset.Solve(sparse)
	require.NoError(t, err)
	assert.Equal(t, []domset.NodeID{20}, res.Set)

	dup := rawGraph{nodes: []domset.NodeID{1, 1}, balls: map[domset.NodeID][]domset.NodeID{1: {1}}}
	_, err = domset.Solve(dup)
	assert.ErrorIs(t, err, domset.ErrDuplicateNode)

	unknown := rawGraph{nodes: []domset.NodeID{1}, balls: map[domset.NodeID][]domset.NodeID{1: {1, 2}}}
	_, err = domset.Solve(unknown)
	assert.ErrorIs(t, err, domset.ErrNodeNotFound)

	missing := rawGraph{nodes: []domset.NodeID{1, 2}, balls: map[domset.NodeID][]domset.NodeID{1: {1}}}
	_, err = domset.Solve(missing)
	assert.ErrorIs(t, err, domset.ErrNodeNotFound)

	asym := rawGraph{
		nodes: []domset.NodeID{1, 2},
		balls: map[domset.NodeID][]domset.NodeID{1: {1, 2}, 2: {2}},
	}
	_, err = domset.Solve(asym)
	assert.ErrorIs(t, err, domset.ErrAsymmetricGraph)
}

func TestNewAdjacencyGraph(t *testing.T) {
	g, err := domset.NewAdjacencyGraph(4, [][2]domset.NodeID{{0, 1}, {1, 0}, {2, 2}, {1, 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []domset.NodeID{0, 1, 2, 3}, g.Nodes())

	ball, err := g.ClosedNeighborhood(1)
	require.NoError(t, err)
	assert.Equal(t, []domset.NodeID{0, 1, 3}, ball)
	ball, err = g.ClosedNeighborhood(2)
	require.NoError(t, err)
	assert.Equal(t, []domset.NodeID{2}, ball)

	_, err = g.ClosedNeighborhood(4)
	assert.ErrorIs(t, err, domset.ErrNodeNotFound)

	_, err = domset.NewAdjacencyGraph(2, [][2]domset.NodeID{{0, 2}})
	assert.ErrorIs(t, err, domset.ErrNodeNotFound)
	_, err = domset.NewAdjacencyGraph(-1, nil)
	assert.ErrorIs(t, err, domset.ErrNodeNotFound)
}
