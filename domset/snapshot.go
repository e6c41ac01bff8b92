// SPDX-License-Identifier: MIT
//
// snapshot.go - dense bitset image of a Graph taken once per search.
//
// Nodes are sorted ascending and renumbered to positions 0..n-1, so "lowest
// position" and "lowest NodeID" coincide. balls[p] holds the closed
// neighborhood of the node at position p.

package domset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

type snapshot struct {
	nodes []NodeID
	index map[NodeID]uint
	balls []*bitset.BitSet
}

// newSnapshot queries every closed neighborhood of g exactly once.
//
// Errors: ErrGraphNil, ErrDuplicateNode, ErrNodeNotFound (a neighborhood names
// an unknown node, or g itself fails), ErrAsymmetricGraph.
//
// Complexity: O(V log V + Σ|N[v]|) time, O(V²/64) bits.
func newSnapshot(g Graph) (*snapshot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := slices.Clone(g.Nodes())
	slices.Sort(nodes)
	n := uint(len(nodes))

	index := make(map[NodeID]uint, n)
	for p, id := range nodes {
		if p > 0 && nodes[p-1] == id {
			return nil, fmt.Errorf("domset: node %d: %w", id, ErrDuplicateNode)
		}
		index[id] = uint(p)
	}

	balls := make([]*bitset.BitSet, n)
	var p uint
	for p = 0; p < n; p++ {
		ball, err := g.ClosedNeighborhood(nodes[p])
		if err != nil {
			return nil, fmt.Errorf("domset: neighborhood of %d: %w", nodes[p], err)
		}
		b := bitset.New(n)
		b.Set(p) // a node always dominates itself
		for _, m := range ball {
			q, ok := index[m]
			if !ok {
				return nil, fmt.Errorf("domset: neighbor %d of %d: %w", m, nodes[p], ErrNodeNotFound)
			}
			b.Set(q)
		}
		balls[p] = b
	}

	for p = 0; p < n; p++ {
		for q, ok := balls[p].NextSet(0); ok; q, ok = balls[p].NextSet(q + 1) {
			if !balls[q].Test(p) {
				return nil, fmt.Errorf("domset: %d ∈ N[%d] but %d ∉ N[%d]: %w",
					nodes[q], nodes[p], nodes[p], nodes[q], ErrAsymmetricGraph)
			}
		}
	}

	return &snapshot{nodes: nodes, index: index, balls: balls}, nil
}

func (s *snapshot) size() uint { return uint(len(s.nodes)) }

// pos maps a NodeID to its position.
func (s *snapshot) pos(id NodeID) (uint, error) {
	p, ok := s.index[id]
	if !ok {
		return 0, fmt.Errorf("domset: node %d: %w", id, ErrNodeNotFound)
	}

	return p, nil
}

// set converts ids to a bitset; duplicates collapse.
func (s *snapshot) set(ids []NodeID) (*bitset.BitSet, error) {
	b := bitset.New(s.size())
	for _, id := range ids {
		p, err := s.pos(id)
		if err != nil {
			return nil, err
		}
		b.Set(p)
	}

	return b, nil
}

// ids converts b back to NodeIDs, ascending.
func (s *snapshot) ids(b *bitset.BitSet) []NodeID {
	out := make([]NodeID, 0, b.Count())
	for p, ok := b.NextSet(0); ok; p, ok = b.NextSet(p + 1) {
		out = append(out, s.nodes[p])
	}

	return out
}
