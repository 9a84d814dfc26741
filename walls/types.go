package walls

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/circuit"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/report"
)

// Sentinel errors for wall building.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("walls: graph is nil")

	// ErrOptionViolation is returned for an invalid option.
	ErrOptionViolation = errors.New("walls: invalid option supplied")

	// ErrLocate wraps a failure of the circuit search.
	ErrLocate = errors.New("walls: circuit search failed")

	// ErrDisconnect wraps a failure to remove a located edge.
	ErrDisconnect = errors.New("walls: edge removal failed")

	// ErrInvariant is returned when a removal did not lower χ by exactly one.
	ErrInvariant = errors.New("walls: euler characteristic invariant violated")
)

// LocatorFactory builds a fresh Locator over the current state of the graph.
type LocatorFactory func(g core.View) (*circuit.Locator, error)

// Option configures a Builder.
type Option func(*Options)

// Options holds builder parameters.
type Options struct {
	Locator    LocatorFactory
	EulerCheck bool

	Rand   *rand.Rand
	Report *report.Report
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns the shuffled depth-first locator, no Euler check and
// a Nop logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLocator sets the factory used for every circuit search.
// A nil factory → ErrOptionViolation.
func WithLocator(f LocatorFactory) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil locator factory", ErrOptionViolation)
			return
		}
		o.Locator = f
	}
}

// WithEulerCheck recomputes χ after every removal.
func WithEulerCheck() Option {
	return func(o *Options) { o.EulerCheck = true }
}

// WithRand sets the random stream of the default locator.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithReport sets the reporting sink.
func WithReport(r *report.Report) Option {
	return func(o *Options) {
		if r != nil {
			o.Report = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
