package circuit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/report"
)

// Sentinel errors for circuit location.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("circuit: graph is nil")

	// ErrQueueNil is returned when a nil queue is supplied.
	ErrQueueNil = errors.New("circuit: queue is nil")

	// ErrQueueNotEmpty is returned when the supplied queue already holds items.
	ErrQueueNotEmpty = errors.New("circuit: queue is not empty")

	// ErrStartNotFound is returned when the start node is absent from the graph.
	ErrStartNotFound = errors.New("circuit: start node not found")

	// ErrOptionViolation is returned for an invalid option or key mode.
	ErrOptionViolation = errors.New("circuit: invalid option supplied")

	// ErrIncident is returned when the graph fails to list a node's edges.
	ErrIncident = errors.New("circuit: incident edge iteration error")
)

// Result is a located circuit: Edge closes a cycle between Node and Other.
// For a self-loop Node == Other.
type Result struct {
	Node  core.NodeID
	Edge  *core.Edge
	Other core.NodeID
}

// String renders the closing edge as "u -e- v".
func (r *Result) String() string {
	if r == nil {
		return "<none>"
	}

	return fmt.Sprintf("%d -%d- %d", r.Node, r.Edge.ID, r.Other)
}

// Arrival is the priority key of a queued node: the node and the edge it
// arrived by (core.NoEdge for a seed). Which fields are set depends on KeyMode.
type Arrival struct {
	Node core.NodeID
	Edge core.EdgeID
}

// KeyMode selects the priority key of NewPriority.
type KeyMode int

const (
	// KeyVertex keys priorities by node only.
	KeyVertex KeyMode = iota
	// KeyEdge keys priorities by arrival edge only.
	KeyEdge
	// KeyVertexEdge keys priorities by (node, arrival edge).
	KeyVertexEdge
)

// Key projects (node, edge) onto the fields selected by m.
func (m KeyMode) Key(n core.NodeID, e core.EdgeID) Arrival {
	switch m {
	case KeyVertex:
		return Arrival{Node: n}
	case KeyEdge:
		return Arrival{Edge: e}
	default:
		return Arrival{Node: n, Edge: e}
	}
}

// Option configures a Locator.
type Option func(*Options)

// Options holds locator parameters.
type Options struct {
	Start    core.NodeID
	HasStart bool
	Shuffle  bool
	Cache    bool

	Rand   *rand.Rand
	Report *report.Report
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns random start, native edge order, no cache, Nop logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithStart sets the first seed. A negative handle → ErrOptionViolation.
func WithStart(id core.NodeID) Option {
	return func(o *Options) {
		if id < 0 {
			o.err = fmt.Errorf("%w: negative start %d", ErrOptionViolation, id)
			return
		}
		o.Start = id
		o.HasStart = true
	}
}

// WithShuffle randomizes each node's incident edge order.
func WithShuffle(on bool) Option {
	return func(o *Options) { o.Shuffle = on }
}

// WithCache memoizes priority lookups (NewPriority only).
func WithCache(on bool) Option {
	return func(o *Options) { o.Cache = on }
}

// WithRand sets the random stream.
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
