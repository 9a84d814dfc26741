// SPDX-License-Identifier: MIT
// Package: carve/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Node labels use a fixed, documented scheme "r,c" (row-major order).
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds rows*cols nodes in row-major order; cell (r,c) is base + r*cols + c (see GridID).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//     In directed graphs, also emits the reverse arc for symmetry.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/carve/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := core.NodeID(g.NodeCount())
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(fmt.Sprintf(gridIDFmt, r, c))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(base, cols, r, c)
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, GridID(base, cols, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, GridID(base, cols, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
