// SPDX-License-Identifier: MIT
// Package: carve/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append nodes to the arena; handles of earlier constructors stay valid.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/carve/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append nodes only; never touch nodes added by earlier constructors.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add a second
// component next to the first one.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// GridID returns the handle of cell (r, c) in a rows×cols Grid that was the
// first constructor applied to its graph. base offsets later grids.
func GridID(base core.NodeID, cols, r, c int) core.NodeID {
	return base + core.NodeID(r*cols+c)
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)                  P_n, n ≥ 2, edges i—i+1.
// Cycle(n)                 C_n, n ≥ 3, edges i—(i+1)%n.
// Star(n)                  hub "Center" + n-1 leaves, n ≥ 2.
// Wheel(n)                 C_{n-1} + hub "Center", n ≥ 4.
// Complete(n)              K_n, n ≥ 1.
// CompleteBipartite(a, b)  K_{a,b}, a,b ≥ 1.
// Grid(rows, cols)         4-neighborhood grid, labels "r,c", row-major.
// RandomSparse(n, p)       Erdős–Rényi-like; needs WithSeed/WithRand for 0<p<1.
