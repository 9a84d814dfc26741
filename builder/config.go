// SPDX-License-Identifier: MIT
// Package: carve/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...) used as node labels
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/carve/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Label strategy: index -> label (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn

	// Bipartite label prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	centerLabel        = "Center"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// addLabelled appends n nodes labelled by label(0..n-1) and returns their handles.
func addLabelled(g *core.Graph, n int, label IDFn) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(label(i))
	}

	return ids
}

// connect adds a—b with the configured weight, and the reverse arc b→a when
// the graph is directed so that neighborhoods stay symmetric.
func connect(g *core.Graph, cfg builderConfig, method string, a, b core.NodeID) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.Connect(a, b, core.WithWeight(w)); err != nil {
		return builderErrorf(method, "Connect(%d,%d): %w", a, b, err)
	}
	if g.Directed() {
		if _, err := g.Connect(b, a, core.WithWeight(w)); err != nil {
			return builderErrorf(method, "Connect(%d,%d): %w", b, a, err)
		}
	}

	return nil
}
