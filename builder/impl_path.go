// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n): vertices idFn(0..n-1), edges (i-1)-i in index order.
// Complexity: O(n).

package builder

import "github.com/katalvlaran/domset/core"

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Its minimum dominating sets have size ⌈n/3⌉.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		ids := sequentialIDs(cfg, 0, n)
		if err := addVertices(g, MethodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
