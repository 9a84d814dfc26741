package circuit

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

// visit is the active record of a queued node: its incident edge cursor and
// the edge it arrived by. Records are deleted when the node finishes.
type visit struct {
	edges   []*core.Edge
	pos     int
	arrival core.EdgeID
}

// link is the arrival of a visited node in the search forest.
type link struct {
	from core.NodeID
	edge core.EdgeID
}

// Locator searches for one circuit.
type Locator struct {
	g    core.View
	q    queue.Queue[core.NodeID]
	opts Options
	rnd  *rand.Rand
	rep  *report.Report
	log  zerolog.Logger

	nodes    []core.NodeID
	nextSeed int
	visited  *bitset.BitSet
	finished *bitset.BitSet
	records  map[core.NodeID]*visit
	links    map[core.NodeID]link

	result *Result
	done   bool
}

// New prepares a Locator over g driven by the empty queue q.
func New(g core.View, q queue.Queue[core.NodeID], opts ...Option) (*Locator, error) {
	if q == nil {
		return nil, ErrQueueNil
	}
	if !q.IsEmpty() {
		return nil, fmt.Errorf("%w: %d items", ErrQueueNotEmpty, q.Len())
	}
	l, err := newLocator(g, opts)
	if err != nil {
		return nil, err
	}
	l.q = q
	if err = l.seedFirst(); err != nil {
		return nil, err
	}

	return l, nil
}

// NewDepthFirst locates with a LIFO queue.
func NewDepthFirst(g core.View, opts ...Option) (*Locator, error) {
	return New(g, queue.NewLIFO[core.NodeID](), opts...)
}

// NewBreadthFirst locates with a FIFO queue.
func NewBreadthFirst(g core.View, opts ...Option) (*Locator, error) {
	return New(g, queue.NewFIFO[core.NodeID](), opts...)
}

// NewPriority locates with a priority queue whose priorities come from src,
// keyed by mode. Missing priorities (or all, for a nil src) are uniform random
// draws, memoized per key when WithCache(true) is set.
func NewPriority(g core.View, src queue.Source[Arrival], mode KeyMode, tie queue.TiePolicy, opts ...Option) (*Locator, error) {
	if mode < KeyVertex || mode > KeyVertexEdge {
		return nil, fmt.Errorf("%w: key mode %d", ErrOptionViolation, mode)
	}
	l, err := newLocator(g, opts)
	if err != nil {
		return nil, err
	}
	keys := &arrivalSource{
		l:    l,
		mode: mode,
		src:  queue.Fallback(src, l.rnd, l.opts.Cache),
	}
	l.q, err = queue.NewPriority[core.NodeID](keys, tie, queue.WithRand(l.rnd))
	if err != nil {
		return nil, err
	}
	if err = l.seedFirst(); err != nil {
		return nil, err
	}

	return l, nil
}

func newLocator(g core.View, opts []Option) (*Locator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	l := &Locator{
		g:        g,
		opts:     o,
		rnd:      rng.OrDefault(o.Rand),
		rep:      o.Report,
		log:      o.Logger,
		nodes:    g.Nodes(),
		records:  make(map[core.NodeID]*visit),
		links:    make(map[core.NodeID]link),
	}
	l.visited = bitset.New(uint(len(l.nodes)))
	l.finished = bitset.New(uint(len(l.nodes)))
	if l.rep == nil {
		l.rep = report.New("circuit")
	}
	l.rep.Set(report.Cells, len(l.nodes))
	l.rep.Set(report.ComponentsFound, 0)
	l.rep.Set(report.ComponentsFinished, 0)

	return l, nil
}

// seedFirst enters the start node (given or random).
func (l *Locator) seedFirst() error {
	if l.opts.HasStart {
		if !l.g.HasNode(l.opts.Start) {
			return fmt.Errorf("%w: %d", ErrStartNotFound, l.opts.Start)
		}
		l.seed(l.opts.Start)
		return nil
	}
	start, ok := rng.Pick(l.nodes, l.rnd)
	if !ok {
		l.finish()
		return nil
	}
	l.seed(start)

	return nil
}

func (l *Locator) seed(id core.NodeID) {
	l.visited.Set(uint(id))
	l.records[id] = nil
	l.q.Enter(id)
	l.rep.Inc(report.ComponentsFound)
	l.rep.Max(report.MaxQueueLength, l.q.Len())
	l.log.Debug().Int("seed", int(id)).Msg("circuit: component seeded")
}

// More reports whether the search is still running.
func (l *Locator) More() bool { return !l.done }

// Step performs one transition of the search.
func (l *Locator) Step() error {
	if l.done {
		return nil
	}
	l.rep.Inc(report.Steps)

	front, ok := l.q.Peek()
	if !ok {
		l.rep.Inc(report.ComponentsFinished)
		if next, found := l.nextUnreached(); found {
			l.seed(next)
		} else {
			l.finish()
		}
		return nil
	}

	rec, err := l.recordOf(front)
	if err != nil {
		return err
	}
	for rec.pos < len(rec.edges) {
		e := rec.edges[rec.pos]
		rec.pos++
		if e.ID == rec.arrival {
			continue
		}
		if e.IsLoop() {
			l.found(front, e, front)
			return nil
		}
		other := e.Other(front)
		if !l.visited.Test(uint(other)) {
			l.visited.Set(uint(other))
			l.links[other] = link{from: front, edge: e.ID}
			l.records[other] = nil
			l.q.Enter(other)
			l.rep.Max(report.MaxQueueLength, l.q.Len())
			return nil
		}
		l.found(front, e, other)
		return nil
	}

	l.q.DiscardTop()
	delete(l.records, front)
	l.finished.Set(uint(front))

	return nil
}

// Run steps until a circuit is found, the graph is exhausted, or ctx is done.
func (l *Locator) Run(ctx context.Context) (*Result, error) {
	for l.More() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := l.Step(); err != nil {
			return nil, err
		}
	}

	return l.result, nil
}

// Find runs the search to completion. A nil Result means no circuit exists.
func (l *Locator) Find() (*Result, error) {
	return l.Run(context.Background())
}

// Result returns the located circuit, or nil.
func (l *Locator) Result() *Result { return l.result }

// Report returns the reporting sink.
func (l *Locator) Report() *report.Report { return l.rep }

// Visited reports whether id was reached.
func (l *Locator) Visited(id core.NodeID) bool { return id >= 0 && l.visited.Test(uint(id)) }

// Finished reports whether id was retired with every edge examined.
func (l *Locator) Finished(id core.NodeID) bool { return id >= 0 && l.finished.Test(uint(id)) }

// Cycle reconstructs the node sequence of the located circuit, starting at
// Node and ending at Other; Edge closes it. nil when no circuit was found.
func (l *Locator) Cycle() []core.NodeID {
	if l.result == nil {
		return nil
	}
	u, v := l.result.Node, l.result.Other
	if u == v {
		return []core.NodeID{u}
	}

	up := l.ancestry(u)
	depth := make(map[core.NodeID]int, len(up))
	for i, n := range up {
		depth[n] = i
	}
	var down []core.NodeID
	meet := v
	for {
		if _, ok := depth[meet]; ok {
			break
		}
		down = append(down, meet)
		meet = l.links[meet].from
	}

	cycle := append([]core.NodeID(nil), up[:depth[meet]+1]...)
	for i := len(down) - 1; i >= 0; i-- {
		cycle = append(cycle, down[i])
	}

	return cycle
}

// ancestry returns id, parent(id), ..., root.
func (l *Locator) ancestry(id core.NodeID) []core.NodeID {
	out := []core.NodeID{id}
	for {
		lk, ok := l.links[id]
		if !ok {
			return out
		}
		id = lk.from
		out = append(out, id)
	}
}

// arrivalOf returns the arrival edge of a visited node (NoEdge for seeds).
func (l *Locator) arrivalOf(id core.NodeID) core.EdgeID {
	return l.links[id].edge
}

func (l *Locator) recordOf(id core.NodeID) (*visit, error) {
	if rec := l.records[id]; rec != nil {
		return rec, nil
	}
	edges, err := l.g.IncidentEdges(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrIncident, id, err)
	}
	if l.opts.Shuffle {
		edges = rng.Shuffled(edges, l.rnd)
	}
	rec := &visit{edges: edges, arrival: l.arrivalOf(id)}
	l.records[id] = rec

	return rec, nil
}

// nextUnreached advances the seed cursor to the next unvisited node.
func (l *Locator) nextUnreached() (core.NodeID, bool) {
	for l.nextSeed < len(l.nodes) {
		id := l.nodes[l.nextSeed]
		l.nextSeed++
		if !l.visited.Test(uint(id)) {
			return id, true
		}
	}

	return 0, false
}

func (l *Locator) found(u core.NodeID, e *core.Edge, v core.NodeID) {
	l.result = &Result{Node: u, Edge: e, Other: v}
	l.log.Debug().Int("node", int(u)).Int("edge", int(e.ID)).Int("other", int(v)).Msg("circuit: found")
	l.finish()
}

func (l *Locator) finish() { l.done = true }

// arrivalSource prices a queued node through its Arrival key.
type arrivalSource struct {
	l    *Locator
	mode KeyMode
	src  *queue.Memo[Arrival]
}

func (a *arrivalSource) Lookup(id core.NodeID) (float64, bool) {
	return a.src.Lookup(a.mode.Key(id, a.l.arrivalOf(id)))
}
