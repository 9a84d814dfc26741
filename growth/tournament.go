package growth

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

// task is one frontier of a Tournament.
type task struct {
	id        int
	territory int
	q         queue.Queue[core.NodeID]
	retired   bool
}

// Tournament grows several territories at once, one task step per Step.
// Territories are merged through a union-find over territory ids; at most
// one live task holds any territory root.
type Tournament struct {
	g        core.View
	newQueue func() queue.Queue[core.NodeID]
	sched    Scheduler
	opts     Options
	rnd      *rand.Rand
	rep      *report.Report
	log      zerolog.Logger

	tasks    []*task
	owner    map[core.NodeID]int // claimed node → territory (resolve with find)
	parent   []int               // union-find over territory ids
	records  map[core.NodeID]*record
	eligible []core.NodeID
	roots    int
	res      *Result
	done     bool
}

// NewTournament creates one task per seed, each with a fresh queue from
// newQueue, and registers them with sched (a RoundRobin when nil). sched must
// be empty.
func NewTournament(
	g core.View,
	seeds []core.NodeID,
	newQueue func() queue.Queue[core.NodeID],
	sched Scheduler,
	opts ...Option,
) (*Tournament, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if newQueue == nil {
		return nil, ErrQueueNil
	}
	if sched == nil {
		sched = NewRoundRobin()
	}
	if sched.Len() != 0 {
		return nil, fmt.Errorf("%w: %d tasks", ErrSchedulerNotEmpty, sched.Len())
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	t := &Tournament{
		g:        g,
		newQueue: newQueue,
		sched:    sched,
		opts:     o,
		rnd:      rng.OrDefault(o.Rand),
		rep:      o.Report,
		log:      o.Logger,
		owner:    make(map[core.NodeID]int),
		records:  make(map[core.NodeID]*record),
		eligible: eligibleNodes(g, o.Filter),
	}
	if t.rep == nil {
		t.rep = report.New("tournament")
	}
	t.res = newResult(len(t.eligible))
	t.rep.Set(report.Cells, len(t.eligible))
	t.rep.Set(report.Passages, 0)

	for _, s := range seeds {
		if !g.HasNode(s) || (o.Filter != nil && !o.Filter(s)) {
			return nil, fmt.Errorf("%w: %d", ErrSeedNotFound, s)
		}
		if _, dup := t.owner[s]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSeed, s)
		}
		tk := &task{id: len(t.tasks), q: newQueue()}
		if tk.q == nil {
			return nil, ErrQueueNil
		}
		if !tk.q.IsEmpty() {
			return nil, fmt.Errorf("%w: task %d", ErrQueueNotEmpty, tk.id)
		}
		tk.territory = t.newTerritory()
		t.claim(s, tk.territory)
		tk.q.Enter(s)
		t.tasks = append(t.tasks, tk)
		sched.Add(tk.id)
	}
	t.log.Debug().Int("tasks", len(t.tasks)).Msg("tournament: seeded")

	return t, nil
}

// More reports whether any task is still scheduled.
func (t *Tournament) More() bool { return !t.done && t.sched.Len() > 0 }

// Step runs one step of the task the scheduler hands out.
func (t *Tournament) Step() error {
	if !t.More() {
		t.finish()
		return nil
	}
	id, _ := t.sched.Next()
	if id < 0 || id >= len(t.tasks) || t.tasks[id].retired {
		return fmt.Errorf("%w: task %d", ErrRetiredTask, id)
	}
	tk := t.tasks[id]
	t.rep.Inc(report.Steps)

	front, ok := tk.q.Peek()
	if !ok {
		t.retire(tk, "drained")
		return t.after()
	}
	rec, err := t.recordOf(front)
	if err != nil {
		return err
	}

	mine := t.find(tk.territory)
	for rec.pos < len(rec.nbrs) {
		nb := rec.nbrs[rec.pos]
		rec.pos++
		if t.opts.Filter != nil && !t.opts.Filter(nb) {
			continue
		}
		terr, claimed := t.owner[nb]
		if !claimed {
			if err = t.passage(front, nb); err != nil {
				return err
			}
			t.claim(nb, mine)
			t.res.Parent[nb] = front
			tk.q.Enter(nb)
			t.rep.Max(report.MaxQueueLength, tk.q.Len())
			return t.after()
		}
		other := t.find(terr)
		if other == mine {
			continue
		}
		if err = t.passage(front, nb); err != nil {
			return err
		}
		t.collide(tk, mine, other)
		return t.after()
	}

	tk.q.DiscardTop()
	delete(t.records, front)
	if tk.q.IsEmpty() {
		t.retire(tk, "drained")
	}

	return t.after()
}

// Run steps until every task retired or ctx is done.
func (t *Tournament) Run(ctx context.Context) error {
	for t.More() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := t.Step(); err != nil {
			return err
		}
	}
	t.finish()

	return nil
}

// Result returns the (possibly partial) outcome.
func (t *Tournament) Result() *Result { return t.res }

// Report returns the reporting sink.
func (t *Tournament) Report() *report.Report { return t.rep }

// Owner returns the current territory root of a claimed node.
func (t *Tournament) Owner(id core.NodeID) (int, bool) {
	terr, ok := t.owner[id]
	if !ok {
		return 0, false
	}

	return t.find(terr), true
}

// Territories returns the number of territories not merged into another.
func (t *Tournament) Territories() int { return t.roots }

// collide merges territory mine into other and applies the collision policy to tk.
func (t *Tournament) collide(tk *task, mine, other int) {
	t.parent[mine] = other
	t.roots--
	t.rep.Inc(report.Collisions)

	holder := t.holderOf(other, tk)
	if holder == nil {
		// nobody grows other any more: adopt it
		tk.territory = other
		t.log.Debug().Int("task", tk.id).Int("territory", other).Msg("tournament: adopted territory")
		return
	}
	for !tk.q.IsEmpty() {
		v, _ := tk.q.Leave()
		holder.q.Enter(v)
	}
	t.rep.Max(report.MaxQueueLength, holder.q.Len())
	t.log.Debug().Int("task", tk.id).Int("into", holder.id).Msg("tournament: collision")

	if t.opts.Collision == Restart {
		if seed, ok := t.freshSeed(); ok {
			tk.territory = t.newTerritory()
			t.claim(seed, tk.territory)
			tk.q.Enter(seed)
			t.rep.Inc(report.Restarts)
			return
		}
	}
	t.retire(tk, "closed")
}

// holderOf returns the live task growing root, other than skip.
func (t *Tournament) holderOf(root int, skip *task) *task {
	for _, tk := range t.tasks {
		if tk != skip && !tk.retired && t.find(tk.territory) == root {
			return tk
		}
	}

	return nil
}

// freshSeed picks a random unclaimed eligible node.
func (t *Tournament) freshSeed() (core.NodeID, bool) {
	free := make([]core.NodeID, 0, len(t.eligible)-len(t.owner))
	for _, id := range t.eligible {
		if _, ok := t.owner[id]; !ok {
			free = append(free, id)
		}
	}

	return rng.Pick(free, t.rnd)
}

func (t *Tournament) newTerritory() int {
	id := len(t.parent)
	t.parent = append(t.parent, id)
	t.roots++

	return id
}

// find resolves a territory to its root, halving paths on the way.
func (t *Tournament) find(x int) int {
	for t.parent[x] != x {
		t.parent[x] = t.parent[t.parent[x]]
		x = t.parent[x]
	}

	return x
}

func (t *Tournament) claim(id core.NodeID, territory int) {
	t.owner[id] = territory
	t.res.Order = append(t.res.Order, id)
	t.res.Visited = len(t.res.Order)
}

func (t *Tournament) passage(from, to core.NodeID) error {
	if t.opts.Target != nil {
		if _, err := t.opts.Target.Connect(from, to); err != nil {
			return fmt.Errorf("%w: %d-%d: %w", ErrCarve, from, to, err)
		}
	}
	t.res.Passages = append(t.res.Passages, Passage{From: from, To: to})
	t.rep.Inc(report.Passages)

	return nil
}

func (t *Tournament) retire(tk *task, why string) {
	tk.retired = true
	t.sched.Remove(tk.id)
	t.log.Debug().Int("task", tk.id).Str("reason", why).Msg("tournament: task retired")
}

func (t *Tournament) recordOf(id core.NodeID) (*record, error) {
	if rec, ok := t.records[id]; ok {
		return rec, nil
	}
	nbrs, err := loadNeighbors(t.g, id, t.opts.Shuffle, t.rnd)
	if err != nil {
		return nil, err
	}
	rec := &record{nbrs: nbrs}
	t.records[id] = rec

	return rec, nil
}

func (t *Tournament) after() error {
	if !t.More() {
		t.finish()
	}

	return nil
}

func (t *Tournament) finish() {
	if t.done {
		return
	}
	t.done = true
	t.rep.Set(report.Unvisited, len(t.eligible)-len(t.owner))
	t.rep.Set(report.Territories, t.roots)
	t.log.Debug().
		Int("passages", len(t.res.Passages)).
		Int("territories", t.roots).
		Msg("tournament: finished")
}
