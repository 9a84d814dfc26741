// SPDX-License-Identifier: MIT
// Package: carve/builder
//
// impl_complete.go — implementation of Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   • Complete: n ≥ 1; edges for every i<j in (i asc, j asc) order.
//   • CompleteBipartite: n1, n2 ≥ 1; left nodes "<lp><i>" first, then right
//     nodes "<rp><j>"; edges in (left asc, right asc) order.
//
// Complexity: O(n²) and O(n1*n2) edges respectively.

package builder

import (
	"fmt"

	"github.com/katalvlaran/carve/core"
)

const (
	methodComplete          = "Complete"
	minCompleteNodes        = 1
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := addLabelled(g, n, cfg.idFn)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}

		left := addLabelled(g, n1, SymbolNumberIDFn(cfg.leftPrefix))
		right := addLabelled(g, n2, SymbolNumberIDFn(cfg.rightPrefix))
		for _, u := range left {
			for _, v := range right {
				if err := connect(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
