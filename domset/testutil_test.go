package domset_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/domset"
)

// tenNodeEdges is the a..j fixture (a=0 ... j=9); its domination number is 3.
var tenNodeEdges = [][2]domset.NodeID{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {2, 5},
	{2, 9}, {3, 4}, {3, 6}, {5, 8}, {7, 8}, {1, 7},
}

func mustGraph(t testing.TB, n int, edges [][2]domset.NodeID) *domset.AdjacencyGraph {
	t.Helper()
	g, err := domset.NewAdjacencyGraph(n, edges)
	require.NoError(t, err)
	return g
}

func pathGraph(t testing.TB, n int) *domset.AdjacencyGraph {
	var edges [][2]domset.NodeID
	for i := 1; i < n; i++ {
		edges = append(edges, [2]domset.NodeID{domset.NodeID(i - 1), domset.NodeID(i)})
	}
	return mustGraph(t, n, edges)
}

func starGraph(t testing.TB, leaves int) *domset.AdjacencyGraph {
	var edges [][2]domset.NodeID
	for i := 1; i <= leaves; i++ {
		edges = append(edges, [2]domset.NodeID{0, domset.NodeID(i)})
	}
	return mustGraph(t, leaves+1, edges)
}

func twoTriangles(t testing.TB) *domset.AdjacencyGraph {
	return mustGraph(t, 6, [][2]domset.NodeID{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
}

// randomGraph samples G(n, p) from rng.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *domset.AdjacencyGraph {
	var edges [][2]domset.NodeID
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]domset.NodeID{domset.NodeID(i), domset.NodeID(j)})
			}
		}
	}
	return mustGraph(t, n, edges)
}

// ballMasks returns the closed neighborhood of every node as a bit mask.
func ballMasks(t testing.TB, g domset.Graph) []uint32 {
	t.Helper()
	nodes := g.Nodes()
	masks := make([]uint32, len(nodes))
	for i, n := range nodes {
		ball, err := g.ClosedNeighborhood(n)
		require.NoError(t, err)
		for _, m := range ball {
			masks[i] |= 1 << uint(m)
		}
	}
	return masks
}

// bruteForceCompletion returns the smallest dominating set size D with
// S ⊆ D and D ∩ T = ∅, or -1 when none exists. Nodes must be 0..n-1, n ≤ 20.
func bruteForceCompletion(t testing.TB, g domset.Graph, s, tt []domset.NodeID) int {
	t.Helper()
	masks := ballMasks(t, g)
	n := len(masks)
	all := uint32(1)<<uint(n) - 1

	var sMask, tMask uint32
	for _, v := range s {
		sMask |= 1 << uint(v)
	}
	for _, v := range tt {
		tMask |= 1 << uint(v)
	}

	best := -1
	for d := uint32(0); d <= all; d++ {
		if d&sMask != sMask || d&tMask != 0 {
			continue
		}
		var cov uint32
		for i := 0; i < n; i++ {
			if d&(1<<uint(i)) != 0 {
				cov |= masks[i]
			}
		}
		if cov != all {
			continue
		}
		if size := bits.OnesCount32(d); best < 0 || size < best {
			best = size
		}
	}
	return best
}

// randomSplit draws disjoint S and T from 0..n-1.
func randomSplit(rng *rand.Rand, n int) (s, tt []domset.NodeID) {
	for i := 0; i < n; i++ {
		switch rng.Intn(4) {
		case 0:
			s = append(s, domset.NodeID(i))
		case 1:
			tt = append(tt, domset.NodeID(i))
		}
	}
	return s, tt
}
