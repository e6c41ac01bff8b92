package domset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
)

func tenNodeCore(t *testing.T) *core.Graph {
	t.Helper()
	var edges [][2]string
	for _, e := range tenNodeEdges {
		edges = append(edges, [2]string{builder.LetterIDFn(int(e[0])), builder.LetterIDFn(int(e[1]))})
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterIDs()},
		builder.Path(2), // a-b is part of the fixture anyway
		builder.Literal(nil, edges, builder.WithImplicitVertices()))
	require.NoError(t, err)
	require.Equal(t, 10, g.VertexCount())
	return g
}

func TestFromCore(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Literal([]string{"c", "a", "b"}, [][2]string{{"a", "b"}, {"b", "c"}}))
	require.NoError(t, err)

	cg, err := domset.FromCore(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, cg.Labels(cg.Nodes()))
	n, ok := cg.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, domset.NodeID(1), n)
	_, ok = cg.Lookup("zz")
	assert.False(t, ok)
	assert.Equal(t, "", cg.Label(-1))
	assert.Equal(t, "", cg.Label(3))

	ball, err := cg.ClosedNeighborhood(1)
	require.NoError(t, err)
	assert.Equal(t, []domset.NodeID{0, 1, 2}, ball)
	_, err = cg.ClosedNeighborhood(3)
	assert.ErrorIs(t, err, domset.ErrNodeNotFound)

	// The snapshot ignores later mutations.
	_, err = g.AddEdge("a", "c")
	require.NoError(t, err)
	ball, err = cg.ClosedNeighborhood(0)
	require.NoError(t, err)
	assert.Equal(t, []domset.NodeID{0, 1}, ball)
}

func TestFromCore_Errors(t *testing.T) {
	_, err := domset.FromCore(nil)
	assert.ErrorIs(t, err, domset.ErrGraphNil)

	directed, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(3))
	require.NoError(t, err)
	_, err = domset.FromCore(directed)
	assert.ErrorIs(t, err, domset.ErrDirectedGraph)

	_, err = domset.SolveCore(directed)
	assert.ErrorIs(t, err, domset.ErrDirectedGraph)
	_, err = domset.SolveCore(directed, domset.WithSplitComponents(true))
	assert.ErrorIs(t, err, domset.ErrDirectedGraph)
	_, err = domset.SolveCore(nil)
	assert.ErrorIs(t, err, domset.ErrGraphNil)
	_, err = domset.SolveCore(directed, domset.WithMaxExpansions(-3))
	assert.ErrorIs(t, err, domset.ErrOptionViolation)
}

func TestSolveCore_TenNode(t *testing.T) {
	g := tenNodeCore(t)
	res, err := domset.SolveCore(g)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Size)
	assert.Len(t, res.Labels, 3)
	assert.Equal(t, 1, res.Components)

	cg, err := domset.FromCore(g)
	require.NoError(t, err)
	ok, err := domset.IsDominatingSet(cg, res.Set)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSolveCore_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(10))
	require.NoError(t, err)

	res, err := domset.SolveCore(g)
	require.NoError(t, err)
	assert.Equal(t, []string{builder.CenterVertexID}, res.Labels)
}

func TestSolveCore_SplitComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Literal(
		[]string{"a", "b", "c", "x", "y", "z", "solo"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}},
	))
	require.NoError(t, err)

	split, err := domset.SolveCore(g, domset.WithSplitComponents(true))
	require.NoError(t, err)
	assert.Equal(t, 3, split.Components)
	assert.Equal(t, []string{"a", "solo", "y"}, split.Labels)
	assert.Equal(t, []domset.NodeID{0, 3, 5}, split.Set)
	assert.Equal(t, 3, split.Size)

	whole, err := domset.SolveCore(g)
	require.NoError(t, err)
	assert.Equal(t, split.Size, whole.Size)
	assert.Equal(t, 1, whole.Components)
}

func TestSolveCore_SplitMatchesWhole(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(14, 0.12))
		require.NoError(t, err)

		split, err := domset.SolveCore(g, domset.WithSplitComponents(true))
		require.NoError(t, err)
		whole, err := domset.SolveCore(g)
		require.NoError(t, err)
		assert.Equal(t, whole.Size, split.Size, "seed %d", seed)

		cg, err := domset.FromCore(g)
		require.NoError(t, err)
		ok, err := domset.IsDominatingSet(cg, split.Set)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d", seed)
	}
}
