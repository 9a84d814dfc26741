// SPDX-License-Identifier: MIT
// Package: carve/builder
//
// impl_star.go — implementation of Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; hub labelled "Center" first, then n-1 leaves via cfg.idFn; spokes hub—leaf.
//   • Wheel: n ≥ 4; a ring of n-1 nodes (Cycle order) first, then the hub and its spokes.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/carve/core"
)

const (
	methodStar    = "Star"
	minStarNodes  = 2
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with n nodes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.AddNode(centerLabel)
		for _, leaf := range addLabelled(g, n-1, cfg.idFn) {
			if err := connect(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		ring := addLabelled(g, n-1, cfg.idFn)
		for i := range ring {
			if err := connect(g, cfg, methodWheel, ring[i], ring[(i+1)%len(ring)]); err != nil {
				return err
			}
		}
		hub := g.AddNode(centerLabel)
		for _, r := range ring {
			if err := connect(g, cfg, methodWheel, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
