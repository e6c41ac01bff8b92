// SPDX-License-Identifier: MIT

package domset

import "golang.org/x/exp/slices"

// IsDominatingSet reports whether every node of g is in set or adjacent to a
// member of set. It reads g directly and shares no code path with the search,
// so it can vouch for Solve's output.
//
// Errors: ErrGraphNil, ErrNodeNotFound for members outside g.
func IsDominatingSet(g Graph, set []NodeID) (bool, error) {
	left, err := Undominated(g, set)
	if err != nil {
		return false, err
	}

	return len(left) == 0, nil
}

// Undominated returns the nodes of g that set fails to dominate, ascending.
func Undominated(g Graph, set []NodeID) ([]NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	covered := make(map[NodeID]bool)
	for _, s := range set {
		ball, err := g.ClosedNeighborhood(s)
		if err != nil {
			return nil, err
		}
		covered[s] = true
		for _, m := range ball {
			covered[m] = true
		}
	}

	var out []NodeID
	for _, n := range g.Nodes() {
		if !covered[n] {
			out = append(out, n)
		}
	}
	sortNodes(out)

	return out, nil
}

func sortNodes(ns []NodeID) { slices.Sort(ns) }
