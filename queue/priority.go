package queue

import (
	"fmt"
	"math/rand"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/carve/rng"
)

// PriorityOption configures a Priority queue.
type PriorityOption func(*priorityConfig)

type priorityConfig struct {
	rnd   *rand.Rand
	cache bool
}

// WithRand sets the stream used to fill priority misses.
func WithRand(r *rand.Rand) PriorityOption {
	return func(c *priorityConfig) {
		if r != nil {
			c.rnd = r
		}
	}
}

// WithCache memoizes every resolved priority for the life of the queue.
func WithCache(on bool) PriorityOption {
	return func(c *priorityConfig) { c.cache = on }
}

// entry is one heap slot. seq is the insertion counter.
type entry[T any] struct {
	item T
	prio float64
	seq  uint64
}

// Priority is a min-priority Queue: the item with the lowest priority leaves first.
type Priority[T comparable] struct {
	heap *priorityqueue.Queue
	src  *Memo[T]
	tie  TiePolicy
	seq  uint64
}

// NewPriority builds a priority queue over src. Misses in src (or every
// lookup when src is nil) draw a uniform random priority.
//
// Returns ErrUnknownTiePolicy for a tie value outside Stable/Antistable/Unstable.
func NewPriority[T comparable](src Source[T], tie TiePolicy, opts ...PriorityOption) (*Priority[T], error) {
	if !tie.valid() {
		return nil, fmt.Errorf("NewPriority(%v): %w", tie, ErrUnknownTiePolicy)
	}
	cfg := priorityConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Priority[T]{
		src: Fallback(src, rng.OrDefault(cfg.rnd), cfg.cache),
		tie: tie,
	}
	p.heap = priorityqueue.NewWith(p.compare)

	return p, nil
}

// compare orders entries by priority, then by the tie policy.
func (p *Priority[T]) compare(a, b interface{}) int {
	x, y := a.(entry[T]), b.(entry[T])
	if c := utils.Float64Comparator(x.prio, y.prio); c != 0 {
		return c
	}
	switch p.tie {
	case Stable:
		return utils.UInt64Comparator(x.seq, y.seq)
	case Antistable:
		return utils.UInt64Comparator(y.seq, x.seq)
	default:
		return 0
	}
}

// Enter adds item with the priority resolved from the source.
func (p *Priority[T]) Enter(item T) {
	prio, _ := p.src.Lookup(item)
	p.EnterWith(item, prio)
}

// EnterWith adds item with an explicit priority, bypassing the source.
func (p *Priority[T]) EnterWith(item T, prio float64) {
	p.seq++
	p.heap.Enqueue(entry[T]{item: item, prio: prio, seq: p.seq})
}

// Leave removes the lowest-priority item.
func (p *Priority[T]) Leave() (T, bool) {
	v, ok := p.heap.Dequeue()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(entry[T]).item, true
}

// Peek returns the lowest-priority item.
func (p *Priority[T]) Peek() (T, bool) {
	v, ok := p.heap.Peek()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(entry[T]).item, true
}

// DiscardTop drops the lowest-priority item.
func (p *Priority[T]) DiscardTop() bool {
	_, ok := p.heap.Dequeue()
	return ok
}

// Len returns the number of queued items.
func (p *Priority[T]) Len() int { return p.heap.Size() }

// IsEmpty reports whether the queue holds nothing.
func (p *Priority[T]) IsEmpty() bool { return p.heap.Empty() }

// Tie returns the configured tie-break policy.
func (p *Priority[T]) Tie() TiePolicy { return p.tie }

// Source returns the resolving source (including its memo).
func (p *Priority[T]) Source() *Memo[T] { return p.src }

var _ Queue[int] = (*Priority[int])(nil)
