// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n): every unordered pair i<j joined once.
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/domset/core"

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Any single vertex dominates K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		ids := sequentialIDs(cfg, 0, n)
		if err := addVertices(g, MethodComplete, ids); err != nil {
			return err
		}

		return linkAll(g, MethodComplete, ids)
	}
}
