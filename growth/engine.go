package growth

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/queue"
	"github.com/katalvlaran/carve/report"
	"github.com/katalvlaran/carve/rng"
)

// record is the visit record of one queued node: its neighbor cursor and the
// number of children admitted so far. Retired records are deleted.
type record struct {
	nbrs     []core.NodeID
	pos      int
	children int
}

// Engine grows one spanning tree from a start node.
type Engine struct {
	g    core.View
	q    queue.Queue[core.NodeID]
	opts Options
	rnd  *rand.Rand
	rep  *report.Report
	log  zerolog.Logger

	visited  *bitset.BitSet
	records  map[core.NodeID]*record
	eligible int
	res      *Result
	done     bool
}

// New prepares an Engine over g driven by q. q must be empty; the start node
// is entered into it immediately.
func New(g core.View, q queue.Queue[core.NodeID], opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if q == nil {
		return nil, ErrQueueNil
	}
	if !q.IsEmpty() {
		return nil, fmt.Errorf("%w: %d items", ErrQueueNotEmpty, q.Len())
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		g:       g,
		q:       q,
		opts:    o,
		rnd:     rng.OrDefault(o.Rand),
		rep:     o.Report,
		log:     o.Logger,
		records: make(map[core.NodeID]*record),
	}
	if e.rep == nil {
		e.rep = report.New("growth")
	}

	nodes := eligibleNodes(g, o.Filter)
	e.eligible = len(nodes)
	e.visited = bitset.New(uint(g.NodeCount()))
	e.res = newResult(len(nodes))
	e.rep.Set(report.Cells, e.eligible)
	e.rep.Set(report.Passages, 0)

	var start core.NodeID
	switch {
	case o.HasStart:
		if !g.HasNode(o.Start) || (o.Filter != nil && !o.Filter(o.Start)) {
			return nil, fmt.Errorf("%w: %d", ErrStartNotFound, o.Start)
		}
		start = o.Start
	case len(nodes) == 0:
		e.finish()
		return e, nil
	default:
		start, _ = rng.Pick(nodes, e.rnd)
	}

	e.log.Debug().Int("start", int(start)).Int("cells", e.eligible).Msg("growth: seeded")
	e.visit(start)
	e.q.Enter(start)
	e.rep.Max(report.MaxQueueLength, e.q.Len())
	if !e.More() {
		e.finish()
	}

	return e, nil
}

// NewDepthFirst grows with a LIFO queue (recursive backtracker).
func NewDepthFirst(g core.View, opts ...Option) (*Engine, error) {
	return New(g, queue.NewLIFO[core.NodeID](), opts...)
}

// NewBreadthFirst grows with a FIFO queue.
func NewBreadthFirst(g core.View, opts ...Option) (*Engine, error) {
	return New(g, queue.NewFIFO[core.NodeID](), opts...)
}

// NewPrim grows with a priority queue over random, memoized node weights and
// stable ties.
func NewPrim(g core.View, opts ...Option) (*Engine, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	r := rng.OrDefault(o.Rand)
	q, err := queue.NewPriority[core.NodeID](nil, queue.Stable, queue.WithRand(r), queue.WithCache(true))
	if err != nil {
		return nil, err
	}

	return New(g, q, append(opts, WithRand(r))...)
}

// More reports whether another Step would change state.
func (e *Engine) More() bool {
	if e.done || e.q.IsEmpty() {
		return false
	}
	if e.opts.StopWhenAllVisited && len(e.res.Order) >= e.eligible {
		return false
	}

	return true
}

// Step performs one transition: retire the front node or admit neighbors of it.
// Calling Step when More() is false is a no-op.
func (e *Engine) Step() error {
	if !e.More() {
		e.finish()
		return nil
	}
	e.rep.Inc(report.Steps)

	front, _ := e.q.Peek()
	rec, err := e.recordOf(front)
	if err != nil {
		return err
	}

	budget := 1
	if e.opts.AdmitAll {
		budget = -1 // unlimited
		if e.opts.Arity > 0 {
			budget = e.opts.Arity - rec.children
		}
	}
	if e.opts.Arity > 0 && rec.children >= e.opts.Arity {
		budget = 0
	}

	admitted := 0
	for budget != 0 {
		next, ok := e.nextUnvisited(rec)
		if !ok {
			break
		}
		if err = e.admit(front, next); err != nil {
			return err
		}
		rec.children++
		admitted++
		budget--
	}

	if admitted == 0 {
		e.q.DiscardTop()
		delete(e.records, front)
	}
	if !e.More() {
		e.finish()
	}

	return nil
}

// Run steps until More() is false or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	for e.More() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
	e.finish()

	return nil
}

// Result returns the (possibly partial) outcome.
func (e *Engine) Result() *Result { return e.res }

// Report returns the reporting sink.
func (e *Engine) Report() *report.Report { return e.rep }

// Visited reports whether id has been admitted.
func (e *Engine) Visited(id core.NodeID) bool {
	return id >= 0 && e.visited.Test(uint(id))
}

// recordOf returns the visit record of id, loading its neighbor list on first use.
func (e *Engine) recordOf(id core.NodeID) (*record, error) {
	if rec, ok := e.records[id]; ok {
		return rec, nil
	}
	nbrs, err := loadNeighbors(e.g, id, e.opts.Shuffle, e.rnd)
	if err != nil {
		return nil, err
	}
	rec := &record{nbrs: nbrs}
	e.records[id] = rec

	return rec, nil
}

// nextUnvisited advances rec's cursor to the next eligible unvisited neighbor.
func (e *Engine) nextUnvisited(rec *record) (core.NodeID, bool) {
	for rec.pos < len(rec.nbrs) {
		nb := rec.nbrs[rec.pos]
		rec.pos++
		if e.Visited(nb) || (e.opts.Filter != nil && !e.opts.Filter(nb)) {
			continue
		}
		return nb, true
	}

	return 0, false
}

func (e *Engine) visit(id core.NodeID) {
	e.visited.Set(uint(id))
	e.res.Order = append(e.res.Order, id)
	e.res.Visited = len(e.res.Order)
}

// admit records the passage parent→child and enters child.
func (e *Engine) admit(parent, child core.NodeID) error {
	if e.opts.Target != nil {
		if _, err := e.opts.Target.Connect(parent, child); err != nil {
			return fmt.Errorf("%w: %d-%d: %w", ErrCarve, parent, child, err)
		}
	}
	e.visit(child)
	e.res.Parent[child] = parent
	e.res.Passages = append(e.res.Passages, Passage{From: parent, To: child})
	e.rep.Inc(report.Passages)
	e.q.Enter(child)
	e.rep.Max(report.MaxQueueLength, e.q.Len())

	return nil
}

// finish publishes final counters once.
func (e *Engine) finish() {
	if e.done {
		return
	}
	e.done = true
	e.rep.Set(report.Unvisited, e.eligible-len(e.res.Order))
	e.log.Debug().
		Int("passages", len(e.res.Passages)).
		Int("unvisited", e.eligible-len(e.res.Order)).
		Msg("growth: finished")
}

// eligibleNodes lists the nodes of g accepted by filter.
func eligibleNodes(g core.View, filter func(core.NodeID) bool) []core.NodeID {
	all := g.Nodes()
	if filter == nil {
		return all
	}
	out := make([]core.NodeID, 0, len(all))
	for _, id := range all {
		if filter(id) {
			out = append(out, id)
		}
	}

	return out
}

// loadNeighbors fetches the neighbor list of id, shuffled on request.
func loadNeighbors(g core.View, id core.NodeID, shuffle bool, r *rand.Rand) ([]core.NodeID, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrNeighbors, id, err)
	}
	if shuffle {
		nbrs = rng.Shuffled(nbrs, r)
	}

	return nbrs, nil
}
