// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice with IDs "r,c".
// Vertices row-major; each cell links right then down.
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Grid returns a Constructor that builds a rows×cols grid graph (both ≥ 1).
// Vertex IDs ignore the configured ID scheme and are always "r,c".
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, id(r, c), err)
				}
			}
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, MethodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, MethodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
