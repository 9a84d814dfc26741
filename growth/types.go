package growth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/report"
)

// Sentinel errors for frontier growth.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("growth: graph is nil")

	// ErrQueueNil is returned when a nil queue (or queue factory) is supplied.
	ErrQueueNil = errors.New("growth: queue is nil")

	// ErrQueueNotEmpty is returned when the supplied queue already holds items.
	ErrQueueNotEmpty = errors.New("growth: queue is not empty")

	// ErrStartNotFound is returned when the start node is absent or filtered out.
	ErrStartNotFound = errors.New("growth: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("growth: invalid option supplied")

	// ErrNeighbors is returned when the graph fails to list a node's neighbors.
	ErrNeighbors = errors.New("growth: neighbor iteration error")

	// ErrCarve is returned when the carve target rejects a passage.
	ErrCarve = errors.New("growth: carve target rejected passage")

	// ErrNoSeeds is returned when a Tournament is given no seeds.
	ErrNoSeeds = errors.New("growth: no seeds")

	// ErrSeedNotFound is returned for a Tournament seed missing from the graph.
	ErrSeedNotFound = errors.New("growth: seed not found")

	// ErrDuplicateSeed is returned when a Tournament seed repeats.
	ErrDuplicateSeed = errors.New("growth: duplicate seed")

	// ErrSchedulerNotEmpty is returned when a Tournament receives a scheduler already holding tasks.
	ErrSchedulerNotEmpty = errors.New("growth: scheduler not empty at setup")

	// ErrRetiredTask is returned when a scheduler hands back a task that already retired.
	ErrRetiredTask = errors.New("growth: scheduler returned retired task")
)

// CollisionPolicy decides what a Tournament task does after its territory
// merged into another one.
type CollisionPolicy int

const (
	// Close stops the colliding task.
	Close CollisionPolicy = iota
	// Restart lets the colliding task claim a fresh random seed and continue.
	Restart
)

// String returns the policy name.
func (p CollisionPolicy) String() string {
	switch p {
	case Close:
		return "close"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// Option configures an Engine or a Tournament. Invalid options are recorded
// and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds growth parameters.
type Options struct {
	// Start is the first node; used only when HasStart is set.
	Start    core.NodeID
	HasStart bool

	// Arity bounds the children admitted per node. 0 = unbounded.
	Arity int

	// Shuffle randomizes each node's neighbor order.
	Shuffle bool

	// AdmitAll admits up to the remaining arity per step instead of one.
	AdmitAll bool

	// StopWhenAllVisited ends the run once every eligible node is visited.
	StopWhenAllVisited bool

	// Filter restricts growth to nodes for which it returns true. nil = all.
	Filter func(core.NodeID) bool

	// Target receives a Connect for every admitted passage, if non-nil.
	Target core.Mutable

	// Collision is the Tournament collision policy.
	Collision CollisionPolicy

	Rand   *rand.Rand
	Report *report.Report
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - random start, unbounded arity, native neighbor order
//   - one admission per step, run until the queue drains
//   - no filter, no carve target, Close on collision
//   - nil Rand (the constructor substitutes the default deterministic stream)
//   - nil Report (the constructor creates one), Nop logger.
func DefaultOptions() Options {
	return Options{
		Collision: Close,
		Logger:    zerolog.Nop(),
	}
}

// WithStart sets the start node.
func WithStart(id core.NodeID) Option {
	return func(o *Options) {
		o.Start = id
		o.HasStart = true
	}
}

// WithArity bounds the children per node.
//
//	n > 0: at most n children
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithArity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: arity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Arity = n
	}
}

// WithShuffle selects shuffled (true) or graph-native (false) neighbor order.
func WithShuffle(on bool) Option {
	return func(o *Options) { o.Shuffle = on }
}

// WithAdmitAll admits up to the remaining arity at once.
func WithAdmitAll() Option {
	return func(o *Options) { o.AdmitAll = true }
}

// WithStopWhenAllVisited stops once every eligible node is visited.
func WithStopWhenAllVisited() Option {
	return func(o *Options) { o.StopWhenAllVisited = true }
}

// WithFilter restricts growth to nodes accepted by fn.
func WithFilter(fn func(core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithCarveInto connects every admitted passage in m.
func WithCarveInto(m core.Mutable) Option {
	return func(o *Options) { o.Target = m }
}

// WithCollision sets the Tournament collision policy.
func WithCollision(p CollisionPolicy) Option {
	return func(o *Options) {
		if p != Close && p != Restart {
			o.err = fmt.Errorf("%w: unknown collision policy %v", ErrOptionViolation, p)
			return
		}
		o.Collision = p
	}
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

// Passage is one tree edge From→To (parent→child, or collider→claimed node).
type Passage struct {
	From core.NodeID
	To   core.NodeID
}

// Result holds the outcome of a growth run:
//   - Passages: tree edges in admission order.
//   - Parent: child → parent for every admitted node (roots absent).
//   - Order: nodes in the order they were visited, roots included.
//   - Visited: len(Order).
type Result struct {
	Passages []Passage
	Parent   map[core.NodeID]core.NodeID
	Order    []core.NodeID
	Visited  int
}

// PathTo walks Parent links from id back to its root and returns root…id.
func (r *Result) PathTo(id core.NodeID) []core.NodeID {
	path := []core.NodeID{id}
	for {
		p, ok := r.Parent[id]
		if !ok {
			break
		}
		path = append(path, p)
		id = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func newResult(n int) *Result {
	return &Result{
		Passages: make([]Passage, 0, n),
		Parent:   make(map[core.NodeID]core.NodeID, n),
		Order:    make([]core.NodeID, 0, n),
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
