// SPDX-License-Identifier: MIT
//
// partial.go - PartialSolution: one immutable (S, T) decision state.
//
// S holds committed dominators, T committed non-dominators and the undecided
// set U = V \ (S ∪ T) is derived. Every derived quantity (covered set, w over
// U, maxW with its node, feasibility, lower bound) is computed once in
// newPartial; no method mutates the receiver.

package domset

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// PartialSolution is a read-only search state. Build one with
// NewPartialSolution or Branch.
type PartialSolution struct {
	snap  *snapshot
	bound BoundAlgo

	s, t    *bitset.BitSet
	covered *bitset.BitSet

	uncovered uint
	w         []int // per position; -1 for decided nodes
	maxW      int
	maxWPos   uint
	hasMax    bool // U ≠ ∅
	feasible  bool
	lb        float64
}

// NewPartialSolution evaluates the state (S=s, T=t) of g under BoundFractional.
// Repeated IDs in s or t collapse.
//
// Errors:
//   - ErrGraphNil, or any snapshot error of g.
//   - ErrNodeNotFound if s or t names an unknown node.
//   - ErrOverlap if a node is in both s and t.
//
// Complexity: O(V·V/64) for the snapshot plus O(V·V/64) for evaluation.
func NewPartialSolution(g Graph, s, t []NodeID) (*PartialSolution, error) {
	snap, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}

	return partialFromIDs(snap, s, t, BoundFractional)
}

func partialFromIDs(snap *snapshot, s, t []NodeID, bound BoundAlgo) (*PartialSolution, error) {
	sb, err := snap.set(s)
	if err != nil {
		return nil, fmt.Errorf("domset: S: %w", err)
	}
	tb, err := snap.set(t)
	if err != nil {
		return nil, fmt.Errorf("domset: T: %w", err)
	}
	if both := sb.Intersection(tb); both.Any() {
		return nil, fmt.Errorf("domset: nodes %v: %w", snap.ids(both), ErrOverlap)
	}

	return newPartial(snap, sb, tb, bound), nil
}

// newPartial takes ownership of s and t, which must be disjoint.
func newPartial(snap *snapshot, s, t *bitset.BitSet, bound BoundAlgo) *PartialSolution {
	n := snap.size()
	ps := &PartialSolution{
		snap:    snap,
		bound:   bound,
		s:       s,
		t:       t,
		covered: bitset.New(n),
		w:       make([]int, n),
	}

	for p, ok := s.NextSet(0); ok; p, ok = s.NextSet(p + 1) {
		ps.covered.InPlaceUnion(snap.balls[p])
	}
	ps.uncovered = n - ps.covered.Count()

	// w over U only; strict ">" keeps the lowest position on ties.
	var p uint
	for p = 0; p < n; p++ {
		if s.Test(p) || t.Test(p) {
			ps.w[p] = -1
			continue
		}
		wp := int(snap.balls[p].DifferenceCardinality(ps.covered))
		ps.w[p] = wp
		if !ps.hasMax || wp > ps.maxW {
			ps.maxW, ps.maxWPos, ps.hasMax = wp, p, true
		}
	}

	// Infeasible: an uncovered node whose whole ball was excluded.
	ps.feasible = true
	for p = 0; p < n && ps.uncovered > 0; p++ {
		if !ps.covered.Test(p) && snap.balls[p].DifferenceCardinality(t) == 0 {
			ps.feasible = false
			break
		}
	}

	ps.lb = ps.lowerBound()

	return ps
}

func (ps *PartialSolution) lowerBound() float64 {
	size := float64(ps.s.Count())
	switch {
	case ps.uncovered == 0:
		return size
	case !ps.feasible || ps.maxW == 0:
		return math.Inf(1)
	}

	rest := float64(ps.uncovered) / float64(ps.maxW)
	switch ps.bound {
	case BoundCeil:
		return size + math.Ceil(rest)
	case BoundNone:
		return size
	default:
		return size + rest
	}
}

// LowerBound returns an admissible bound on the size of any dominating set
// extending S and avoiding T:
//   - |S| when S already dominates;
//   - +Inf when no such set exists;
//   - |S| + |uncovered|/maxW otherwise (policy-dependent, see BoundAlgo).
func (ps *PartialSolution) LowerBound() float64 { return ps.lb }

// IsDominated reports whether S covers every node.
func (ps *PartialSolution) IsDominated() bool { return ps.uncovered == 0 }

// IsFeasible reports whether some dominating set extends S while avoiding T,
// i.e. every uncovered node still has a closed-neighborhood member outside T.
func (ps *PartialSolution) IsFeasible() bool { return ps.feasible }

// CoveredNodes returns the union of N[s] over s ∈ S, ascending.
func (ps *PartialSolution) CoveredNodes() []NodeID { return ps.snap.ids(ps.covered) }

// UncoveredNodes returns V minus CoveredNodes, ascending.
func (ps *PartialSolution) UncoveredNodes() []NodeID {
	return ps.snap.ids(ps.covered.Complement())
}

// UncoveredCount returns |UncoveredNodes()| without allocating.
func (ps *PartialSolution) UncoveredCount() int { return int(ps.uncovered) }

// CoveragePotential returns |N[n] − covered|: how many uncovered nodes n
// would cover if it joined S. Defined for every node, decided or not.
func (ps *PartialSolution) CoveragePotential(n NodeID) (int, error) {
	p, err := ps.snap.pos(n)
	if err != nil {
		return 0, err
	}

	return int(ps.snap.balls[p].DifferenceCardinality(ps.covered)), nil
}

// W returns the coverage potential of every undecided node.
func (ps *PartialSolution) W() map[NodeID]int {
	out := make(map[NodeID]int, len(ps.w))
	for p, wp := range ps.w {
		if wp >= 0 {
			out[ps.snap.nodes[p]] = wp
		}
	}

	return out
}

// MaxW returns the largest coverage potential over U, or 0 when U is empty.
func (ps *PartialSolution) MaxW() int { return ps.maxW }

// MaxWNode returns the undecided node with the largest coverage potential,
// the lowest NodeID among ties. ok is false when every node is decided.
func (ps *PartialSolution) MaxWNode() (n NodeID, ok bool) {
	if !ps.hasMax {
		return 0, false
	}

	return ps.snap.nodes[ps.maxWPos], true
}

// S returns the committed dominators, ascending.
func (ps *PartialSolution) S() []NodeID { return ps.snap.ids(ps.s) }

// T returns the committed non-dominators, ascending.
func (ps *PartialSolution) T() []NodeID { return ps.snap.ids(ps.t) }

// Undecided returns U = V \ (S ∪ T), ascending.
func (ps *PartialSolution) Undecided() []NodeID {
	return ps.snap.ids(ps.s.Union(ps.t).Complement())
}

// Size returns |S|.
func (ps *PartialSolution) Size() int { return int(ps.s.Count()) }

// Contains reports whether n ∈ S.
func (ps *PartialSolution) Contains(n NodeID) bool {
	p, err := ps.snap.pos(n)
	return err == nil && ps.s.Test(p)
}

// Decided reports whether n ∈ S ∪ T.
func (ps *PartialSolution) Decided(n NodeID) bool {
	p, err := ps.snap.pos(n)
	return err == nil && (ps.s.Test(p) || ps.t.Test(p))
}

// Bound returns the lower bound policy this state was evaluated with.
func (ps *PartialSolution) Bound() BoundAlgo { return ps.bound }
