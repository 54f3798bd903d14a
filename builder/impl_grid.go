// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_grid.go - Grid(rows, cols) with 4-neighborhood.
//
// Contract:
//   - rows, cols ≥ 1; cell (r,c) has index r·cols + c (row-major).
//   - For each cell in row-major order: right neighbor first, then down.
//   - Edges are symmetric (see link).
//
// Complexity: O(rows·cols) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := nodeIDs(cfg, 0, rows*cols)
		if err := addNodes(methodGrid, b, ids); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := gridLink(b, cfg, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := gridLink(b, cfg, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

func gridLink(b *core.Builder, cfg builderConfig, u, v core.NodeID) error {
	w := cfg.weight()
	if err := link(b, u, v, w); err != nil {
		return fmt.Errorf("%s: link(%d-%d, w=%d): %w", methodGrid, u, v, w, err)
	}

	return nil
}
