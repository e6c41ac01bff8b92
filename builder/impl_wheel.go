// SPDX-License-Identifier: MIT
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) over idFn(0..n-2) plus spokes from Center.
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Wheel returns a Constructor that builds the wheel W_n (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}
		if err := addVertices(g, MethodWheel, []string{CenterVertexID}); err != nil {
			return err
		}

		for _, rim := range sequentialIDs(cfg, 0, n-1) {
			if err := link(g, MethodWheel, CenterVertexID, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
