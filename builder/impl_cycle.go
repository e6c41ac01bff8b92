// SPDX-License-Identifier: MIT
//
// impl_cycle.go - Cycle(n): the path 0..n-1 closed by the edge (n-1)-0.
// Complexity: O(n).

package builder

import "github.com/katalvlaran/domset/core"

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		ids := sequentialIDs(cfg, 0, n)
		if err := addVertices(g, MethodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
