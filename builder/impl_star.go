// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n): hub CenterVertexID plus leaves idFn(1..n-1).
// Complexity: O(n).

package builder

import "github.com/katalvlaran/domset/core"

// Star returns a Constructor that builds a star with n vertices (n ≥ 2):
// the hub "Center" and n-1 leaves, each joined to the hub only.
// {Center} is its unique minimum dominating set for n ≥ 3.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(g, MethodStar, []string{CenterVertexID}); err != nil {
			return err
		}

		leaves := sequentialIDs(cfg, 1, n)
		if err := addVertices(g, MethodStar, leaves); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := link(g, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
