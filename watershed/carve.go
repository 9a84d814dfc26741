package watershed

import (
	"context"
	"fmt"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/growth"
	"github.com/katalvlaran/carve/rng"
)

// Carve partitions g from seeds and connects a spanning tree of g into maze:
// a shuffled depth-first tree inside every territory, joined across territories
// by one selected floodgate per edge of a spanning tree of the reduced graph.
// maze must share g's node handles (g.CloneEmpty() for a *core.Graph).
//
// The partition is returned even when carving fails part way.
func Carve(ctx context.Context, g core.View, maze core.Mutable, seeds []core.NodeID, opts ...Option) (*Partition, error) {
	if maze == nil {
		return nil, fmt.Errorf("%w: nil maze", ErrCarve)
	}
	p, err := New(g, seeds, opts...)
	if err != nil {
		return nil, err
	}
	if err = p.Run(ctx); err != nil {
		return p, err
	}

	for _, t := range p.terrs {
		id := t.id
		e, err := growth.NewDepthFirst(g,
			growth.WithStart(t.seed),
			growth.WithFilter(func(n core.NodeID) bool {
				holder, ok := p.owner[n]
				return ok && holder == id
			}),
			growth.WithShuffle(true),
			growth.WithRand(rng.Derive(p.rnd, uint64(id))),
			growth.WithCarveInto(maze),
			growth.WithLogger(p.log),
		)
		if err != nil {
			return p, fmt.Errorf("%w: territory %d: %w", ErrCarve, id, err)
		}
		if err = e.Run(ctx); err != nil {
			return p, fmt.Errorf("%w: territory %d: %w", ErrCarve, id, err)
		}
	}

	rg, err := p.ReducedGraph()
	if err != nil {
		return p, err
	}
	span, err := growth.NewDepthFirst(rg,
		growth.WithStart(0),
		growth.WithShuffle(true),
		growth.WithRand(p.rnd),
		growth.WithLogger(p.log),
	)
	if err != nil {
		return p, fmt.Errorf("%w: reduced graph: %w", ErrCarve, err)
	}
	if err = span.Run(ctx); err != nil {
		return p, fmt.Errorf("%w: reduced graph: %w", ErrCarve, err)
	}

	for _, pass := range span.Result().Passages {
		re, ok := rg.EdgeBetween(pass.From, pass.To)
		if !ok {
			return p, fmt.Errorf("%w: reduced edge %d-%d missing", ErrCarve, pass.From, pass.To)
		}
		fg, err := p.Select(re)
		if err != nil {
			return p, err
		}
		if _, err = maze.Connect(fg.From, fg.To); err != nil {
			return p, fmt.Errorf("%w: floodgate %d-%d: %w", ErrCarve, fg.From, fg.To, err)
		}
	}
	p.log.Debug().Int("territories", len(p.terrs)).Int("joins", len(span.Result().Passages)).Msg("watershed: carved")

	return p, nil
}
