// SPDX-License-Identifier: MIT
//
// impl_bipartite.go - CompleteBipartite(n1, n2) with side IDs "<left><i>" and
// "<right><j>" taken from WithPartitionPrefix (defaults "L"/"R").
// Complexity: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
// Edges are emitted left-major: (L0,R0), (L0,R1), ..., (L1,R0), ...
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := sequentialIDs(builderConfig{idFn: PrefixIDFn(cfg.leftPrefix)}, 0, n1)
		right := sequentialIDs(builderConfig{idFn: PrefixIDFn(cfg.rightPrefix)}, 0, n2)
		if err := addVertices(g, MethodCompleteBipartite, left); err != nil {
			return err
		}
		if err := addVertices(g, MethodCompleteBipartite, right); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := link(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
