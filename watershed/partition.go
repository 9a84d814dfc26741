package watershed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/queue"
	"github.com/katalvlaran/carve/report"
	"github.com/katalvlaran/carve/rng"
)

type territory struct {
	id    int
	seed  core.NodeID
	nodes []core.NodeID
	q     queue.Queue[Claim]
}

// Partition floods g from several seeds in round-robin rounds.
type Partition struct {
	g    core.View
	opts Options
	rnd  *rand.Rand
	rep  *report.Report
	log  zerolog.Logger

	terrs     []*territory
	owner     map[core.NodeID]int
	gates     gateStore
	floodgate int
	eligible  int

	done bool
	err  error
}

// New claims the seeds of g and queues their neighbors.
func New(g core.View, seeds []core.NodeID, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(seeds) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSeeds, len(seeds))
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	p := &Partition{
		g:     g,
		opts:  o,
		rnd:   rng.OrDefault(o.Rand),
		rep:   o.Report,
		log:   o.Logger,
		owner: make(map[core.NodeID]int, g.NodeCount()),
		gates: newGateStore(),
	}
	if p.rep == nil {
		p.rep = report.New("watershed")
	}
	p.eligible = countEligible(g, o.Filter)

	for i, s := range seeds {
		if !g.HasNode(s) || !p.admits(s) {
			return nil, fmt.Errorf("%w: %d", ErrSeedNotFound, s)
		}
		if _, dup := p.owner[s]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSeed, s)
		}
		q := o.Queue()
		if q == nil {
			return nil, fmt.Errorf("%w: territory %d", ErrQueueNil, i)
		}
		t := &territory{id: i, seed: s, q: q}
		p.terrs = append(p.terrs, t)
		p.owner[s] = i
		t.nodes = append(t.nodes, s)
	}
	for _, t := range p.terrs {
		if err = p.expand(t, t.seed); err != nil {
			return nil, err
		}
	}

	p.rep.Set(report.Cells, p.eligible)
	p.rep.Set(report.Territories, len(p.terrs))
	p.rep.Set(report.Rounds, 0)
	p.log.Debug().Int("territories", len(p.terrs)).Msg("watershed: seeded")

	return p, nil
}

// More reports whether another round may claim something.
func (p *Partition) More() bool { return !p.done }

// Step runs one round: every territory pops its claim queue until one claim
// succeeds or the queue is empty, so claims hitting nodes already held do not
// cost a territory its turn. The round that claims nothing ends the partition
// and returns ErrDisconnected if eligible nodes were left unclaimed.
func (p *Partition) Step() error {
	if p.done {
		return p.err
	}
	p.rep.Inc(report.Rounds)

	progress := false
	for _, t := range p.terrs {
		for !t.q.IsEmpty() {
			c, _ := t.q.Leave()
			ok, err := p.attempt(t, c)
			if err != nil {
				return err
			}
			if ok {
				progress = true
				break
			}
		}
	}
	if !progress {
		p.finish()
		return p.err
	}

	return nil
}

// Run steps until the partition ends or ctx is done.
func (p *Partition) Run(ctx context.Context) error {
	for p.More() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := p.Step(); err != nil {
			return err
		}
	}

	return nil
}

// attempt resolves one claim; ok reports a successful claim.
func (p *Partition) attempt(t *territory, c Claim) (bool, error) {
	holder, held := p.owner[c.Target]
	switch {
	case !held:
		p.owner[c.Target] = t.id
		t.nodes = append(t.nodes, c.Target)
		return true, p.expand(t, c.Target)
	case holder != t.id:
		p.addGate(t.id, c.From, holder, c.Target)
	}

	return false, nil
}

// expand queues the unclaimed neighbors of id for t and records floodgates
// toward neighbors already held by other territories.
func (p *Partition) expand(t *territory, id core.NodeID) error {
	nbrs, err := p.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %d: %w", ErrNeighbors, id, err)
	}
	if p.opts.Shuffle {
		nbrs = rng.Shuffled(nbrs, p.rnd)
	}
	for _, nb := range nbrs {
		if !p.admits(nb) {
			continue
		}
		holder, held := p.owner[nb]
		switch {
		case !held:
			t.q.Enter(Claim{Target: nb, From: id})
		case holder != t.id:
			p.addGate(t.id, id, holder, nb)
		}
	}
	p.rep.Max(report.MaxQueueLength, t.q.Len())

	return nil
}

func (p *Partition) addGate(tu int, u core.NodeID, tv int, v core.NodeID) {
	if p.gates.add(tu, u, tv, v) {
		p.floodgate++
		p.rep.Set(report.Floodgates, p.floodgate)
	}
}

func (p *Partition) admits(id core.NodeID) bool {
	return p.opts.Filter == nil || p.opts.Filter(id)
}

// countEligible counts the nodes of g accepted by filter.
func countEligible(g core.View, filter func(core.NodeID) bool) int {
	if filter == nil {
		return g.NodeCount()
	}
	n := 0
	for _, id := range g.Nodes() {
		if filter(id) {
			n++
		}
	}

	return n
}

func (p *Partition) finish() {
	p.done = true
	unclaimed := p.eligible - len(p.owner)
	p.rep.Set(report.Unvisited, unclaimed)
	if unclaimed > 0 {
		p.err = fmt.Errorf("%w: %d nodes unclaimed", ErrDisconnected, unclaimed)
		p.log.Warn().Int("unclaimed", unclaimed).Msg("watershed: flooding stalled")
		return
	}
	p.log.Debug().
		Int("rounds", p.rep.Counter(report.Rounds)).
		Int("floodgates", p.floodgate).
		Msg("watershed: partitioned")
}

// Err returns ErrDisconnected (wrapped) once a stalled partition has ended.
func (p *Partition) Err() error { return p.err }

// Report returns the reporting sink.
func (p *Partition) Report() *report.Report { return p.rep }

// Seeds returns the seed of every territory.
func (p *Partition) Seeds() []core.NodeID {
	out := make([]core.NodeID, len(p.terrs))
	for i, t := range p.terrs {
		out[i] = t.seed
	}

	return out
}

// Territories returns the claimed nodes of each territory in claim order.
func (p *Partition) Territories() [][]core.NodeID {
	out := make([][]core.NodeID, len(p.terrs))
	for i, t := range p.terrs {
		out[i] = append([]core.NodeID(nil), t.nodes...)
	}

	return out
}

// Owner returns the territory holding id.
func (p *Partition) Owner(id core.NodeID) (int, bool) {
	t, ok := p.owner[id]
	return t, ok
}

// Floodgates returns the candidates recorded between territories a and b,
// oriented from the lower-numbered territory.
func (p *Partition) Floodgates(a, b int) []Floodgate {
	return append([]Floodgate(nil), p.gates.get(a, b)...)
}

// ReducedGraph returns a graph with node i standing for territory i and one
// edge per touching pair, weighted by its number of candidates.
func (p *Partition) ReducedGraph() (*core.Graph, error) {
	if !p.done {
		return nil, ErrNotFinished
	}
	rg := core.NewGraph()
	for _, t := range p.terrs {
		rg.AddNode(fmt.Sprintf("T%d", t.id))
	}
	var err error
	p.gates.each(func(lo, hi int, list []Floodgate) bool {
		_, err = rg.Connect(core.NodeID(lo), core.NodeID(hi), core.WithWeight(float64(len(list))))
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return rg, nil
}

// Select picks one candidate uniformly for the reduced edge e.
func (p *Partition) Select(e *core.Edge) (Floodgate, error) {
	if !p.done {
		return Floodgate{}, ErrNotFinished
	}
	if e == nil {
		return Floodgate{}, fmt.Errorf("%w: nil edge", ErrNoFloodgate)
	}
	list := p.gates.get(int(e.From), int(e.To))
	if len(list) == 0 {
		return Floodgate{}, fmt.Errorf("%w: %d-%d", ErrNoFloodgate, e.From, e.To)
	}

	return list[p.rnd.Intn(len(list))], nil
}

// TouchingPairs returns the number of territory pairs with a floodgate.
func (p *Partition) TouchingPairs() int { return p.gates.pairs() }
