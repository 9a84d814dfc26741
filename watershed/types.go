package watershed

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/queue"
	"github.com/katalvlaran/carve/report"
)

// Sentinel errors for partitioning.
var (
	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("watershed: graph is nil")

	// ErrTooFewSeeds is returned for fewer than two seeds.
	ErrTooFewSeeds = errors.New("watershed: at least two seeds required")

	// ErrDuplicateSeed is returned when a seed is listed twice.
	ErrDuplicateSeed = errors.New("watershed: duplicate seed")

	// ErrSeedNotFound is returned when a seed is absent from the graph.
	ErrSeedNotFound = errors.New("watershed: seed not found")

	// ErrQueueNil is returned when the queue factory yields nil.
	ErrQueueNil = errors.New("watershed: queue factory returned nil")

	// ErrOptionViolation is returned for an invalid option.
	ErrOptionViolation = errors.New("watershed: invalid option supplied")

	// ErrNeighbors wraps a neighbor lookup failure.
	ErrNeighbors = errors.New("watershed: neighbor iteration error")

	// ErrDisconnected is returned when flooding stops with nodes unclaimed.
	ErrDisconnected = errors.New("watershed: graph is not connected")

	// ErrNotFinished is returned by accessors that need a completed partition.
	ErrNotFinished = errors.New("watershed: partition not finished")

	// ErrNoFloodgate is returned by Select for territories that never touched.
	ErrNoFloodgate = errors.New("watershed: no floodgate between territories")

	// ErrCarve wraps a failure while carving a maze from the partition.
	ErrCarve = errors.New("watershed: carve failed")
)

// Claim is one queued attempt: From asks to add its neighbor Target to the
// claimer's territory.
type Claim struct {
	Target core.NodeID
	From   core.NodeID
}

// Floodgate is a candidate connector: From lies in the lower-numbered
// territory, To in the higher one, and the two are adjacent in the graph.
type Floodgate struct {
	From core.NodeID
	To   core.NodeID
}

// QueueFactory returns a fresh, empty claim queue for one territory.
type QueueFactory func() queue.Queue[Claim]

// Option configures a Partition.
type Option func(*Options)

// Options holds partition parameters.
type Options struct {
	Queue   QueueFactory
	Shuffle bool

	// Filter restricts flooding to nodes for which it returns true. nil = all.
	Filter func(core.NodeID) bool

	Rand   *rand.Rand
	Report *report.Report
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns FIFO claim queues, native neighbor order and a Nop logger.
func DefaultOptions() Options {
	return Options{
		Queue:  func() queue.Queue[Claim] { return queue.NewFIFO[Claim]() },
		Logger: zerolog.Nop(),
	}
}

// WithQueue sets the per-territory queue factory. nil → ErrOptionViolation.
func WithQueue(f QueueFactory) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil queue factory", ErrOptionViolation)
			return
		}
		o.Queue = f
	}
}

// WithShuffle randomizes the order in which a claimed node queues its neighbors.
func WithShuffle(on bool) Option {
	return func(o *Options) { o.Shuffle = on }
}

// WithFilter restricts the partition to the nodes accepted by fn, e.g. one
// connected region of a larger arena. Seeds must pass the filter.
func WithFilter(fn func(core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithRand sets the random stream used by shuffling and Select.
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
