package walls

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/circuit"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/report"
	"github.com/katalvlaran/carve/rng"
)

// Builder removes circuit-closing edges from g until none remain.
type Builder struct {
	g    core.Mutable
	opts Options
	rep  *report.Report
	log  zerolog.Logger

	removed []core.Edge
	chi     int
	done    bool
}

// New prepares a Builder over g. g is modified in place by Step and Run.
func New(g core.Mutable, opts ...Option) (*Builder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.Locator == nil {
		rnd := rng.OrDefault(o.Rand)
		logger := o.Logger
		o.Locator = func(v core.View) (*circuit.Locator, error) {
			return circuit.NewDepthFirst(v,
				circuit.WithShuffle(true),
				circuit.WithRand(rnd),
				circuit.WithLogger(logger),
			)
		}
	}

	b := &Builder{g: g, opts: o, rep: o.Report, log: o.Logger}
	if b.rep == nil {
		b.rep = report.New("walls")
	}
	b.rep.Set(report.Cells, g.NodeCount())
	b.rep.Set(report.Walls, 0)
	b.rep.Set(report.Passages, g.EdgeCount())
	if o.EulerCheck {
		b.chi = core.EulerCharacteristic(g)
	}

	return b, nil
}

// More reports whether the last search could still find a circuit.
func (b *Builder) More() bool { return !b.done }

// Step locates one circuit and removes its closing edge. When no circuit is
// left the Builder is done and Step is a no-op.
func (b *Builder) Step() error { return b.StepContext(context.Background()) }

// StepContext is Step with the circuit search bound to ctx. A cancelled
// search leaves g untouched and returns ctx.Err().
func (b *Builder) StepContext(ctx context.Context) error {
	if b.done {
		return nil
	}
	b.rep.Inc(report.Steps)

	l, err := b.opts.Locator(b.g)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocate, err)
	}
	res, err := l.Run(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrLocate, err)
	}
	if res == nil {
		b.done = true
		b.log.Debug().Int("walls", len(b.removed)).Msg("walls: spanning forest reached")
		return nil
	}

	wall := *res.Edge
	if err = b.g.Disconnect(wall.ID); err != nil {
		return fmt.Errorf("%w: edge %d: %w", ErrDisconnect, wall.ID, err)
	}
	b.removed = append(b.removed, wall)
	b.rep.Inc(report.Walls)
	b.rep.Set(report.Passages, b.g.EdgeCount())
	b.log.Debug().Int("edge", int(wall.ID)).Int("from", int(wall.From)).Int("to", int(wall.To)).Msg("walls: removed")

	if b.opts.EulerCheck {
		chi := core.EulerCharacteristic(b.g)
		if chi != b.chi-1 {
			return fmt.Errorf("%w: χ %d → %d after removing edge %d", ErrInvariant, b.chi, chi, wall.ID)
		}
		b.chi = chi
	}

	return nil
}

// Run steps until no circuit remains or ctx is done.
func (b *Builder) Run(ctx context.Context) error {
	for b.More() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.StepContext(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Removed returns copies of the removed edges in removal order.
func (b *Builder) Removed() []core.Edge {
	out := make([]core.Edge, len(b.removed))
	copy(out, b.removed)

	return out
}

// Report returns the reporting sink.
func (b *Builder) Report() *report.Report { return b.rep }
