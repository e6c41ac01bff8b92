// SPDX-License-Identifier: MIT

package domset

import "fmt"

// Branch splits ps on the undecided node n into two fresh children:
// withNode evaluates (S ∪ {n}, T) and withoutNode evaluates (S, T ∪ {n}).
// Children share the parent's immutable graph snapshot and nothing mutable,
// and inherit its bound policy. Equal inputs give structurally equal children.
//
// Errors: ErrNilSolution, ErrNodeNotFound, ErrNodeDecided.
func Branch(ps *PartialSolution, n NodeID) (withNode, withoutNode *PartialSolution, err error) {
	if ps == nil {
		return nil, nil, ErrNilSolution
	}
	p, err := ps.snap.pos(n)
	if err != nil {
		return nil, nil, err
	}
	if ps.s.Test(p) || ps.t.Test(p) {
		return nil, nil, fmt.Errorf("domset: branch on %d: %w", n, ErrNodeDecided)
	}

	withNode = newPartial(ps.snap, ps.s.Clone().Set(p), ps.t.Clone(), ps.bound)
	withoutNode = newPartial(ps.snap, ps.s.Clone(), ps.t.Clone().Set(p), ps.bound)

	return withNode, withoutNode, nil
}
