// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are fixed coordinates "r,c"; cfg.idFn is not consulted.
//   - For each cell in row-major order, emits the right edge then the bottom edge.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order.
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Right and bottom neighbors.
		link := func(u, v string) error {
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", methodGrid, u, v, w, err)
			}
			return nil
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
