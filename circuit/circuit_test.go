package circuit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/carve/builder"
	"github.com/katalvlaran/carve/circuit"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/growth"
	"github.com/katalvlaran/carve/queue"
	"github.com/katalvlaran/carve/report"
	"github.com/katalvlaran/carve/rng"
)

type ctor func(core.View, ...circuit.Option) (*circuit.Locator, error)

func priority(tie queue.TiePolicy, mode circuit.KeyMode) ctor {
	return func(g core.View, opts ...circuit.Option) (*circuit.Locator, error) {
		return circuit.NewPriority(g, nil, mode, tie, append(opts, circuit.WithCache(true))...)
	}
}

var ctors = map[string]ctor{
	"depth-first":          circuit.NewDepthFirst,
	"breadth-first":        circuit.NewBreadthFirst,
	"priority-vertex":      priority(queue.Stable, circuit.KeyVertex),
	"priority-edge":        priority(queue.Antistable, circuit.KeyEdge),
	"priority-vertex-edge": priority(queue.Unstable, circuit.KeyVertexEdge),
}

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// assertCircuit checks that res closes the node sequence returned by Cycle.
func assertCircuit(t *testing.T, g core.View, l *circuit.Locator, res *circuit.Result) {
	t.Helper()
	require.NotNil(t, res)
	require.NotNil(t, res.Edge)
	ends := []core.NodeID{res.Edge.From, res.Edge.To}
	assert.ElementsMatch(t, ends, []core.NodeID{res.Node, res.Other})

	cyc := l.Cycle()
	require.NotEmpty(t, cyc)
	assert.Equal(t, res.Node, cyc[0])
	assert.Equal(t, res.Other, cyc[len(cyc)-1])
	for i := 1; i < len(cyc); i++ {
		a, b := cyc[i-1], cyc[i]
		assert.True(t, g.IsConnected(a, b) || g.IsConnected(b, a), "%d and %d not adjacent", a, b)
	}
	seen := make(map[core.NodeID]bool, len(cyc))
	for _, id := range cyc {
		assert.False(t, seen[id], "node %d repeated in cycle", id)
		seen[id] = true
	}
}

func TestLocator_FindsCircuit(t *testing.T) {
	graphs := map[string]builder.Constructor{
		"cycle":    builder.Cycle(7),
		"complete": builder.Complete(5),
		"grid":     builder.Grid(4, 4),
		"wheel":    builder.Wheel(6),
	}
	for gname, cons := range graphs {
		for cname, newLocator := range ctors {
			t.Run(gname+"/"+cname, func(t *testing.T) {
				g := build(t, cons)
				l, err := newLocator(g, circuit.WithShuffle(true), circuit.WithRand(rng.New(5)))
				require.NoError(t, err)
				res, err := l.Find()
				require.NoError(t, err)
				assertCircuit(t, g, l, res)
				assert.Same(t, res, l.Result())
				assert.False(t, l.More())
				assert.GreaterOrEqual(t, len(l.Cycle()), 3)
			})
		}
	}
}

func TestLocator_ForestHasNoCircuit(t *testing.T) {
	graphs := map[string][]builder.Constructor{
		"path":        {builder.Path(8)},
		"star":        {builder.Star(6)},
		"two-paths":   {builder.Path(3), builder.Path(4)},
		"path-a-star": {builder.Path(5), builder.Star(4)},
	}
	for gname, cons := range graphs {
		for cname, newLocator := range ctors {
			t.Run(gname+"/"+cname, func(t *testing.T) {
				g := build(t, cons...)
				rep := report.New("circuit")
				l, err := newLocator(g, circuit.WithStart(0), circuit.WithReport(rep))
				require.NoError(t, err)
				res, err := l.Find()
				require.NoError(t, err)
				assert.Nil(t, res)
				assert.Nil(t, l.Cycle())

				k := core.ComponentCount(g)
				assert.Equal(t, k, rep.Counter(report.ComponentsFound))
				assert.Equal(t, k, rep.Counter(report.ComponentsFinished))
				for _, id := range g.Nodes() {
					assert.True(t, l.Finished(id), "node %d not finished", id)
				}
			})
		}
	}
}

func TestLocator_CircuitInLaterComponent(t *testing.T) {
	g := build(t, builder.Path(3), builder.Cycle(4))
	l, err := circuit.NewDepthFirst(g, circuit.WithStart(0))
	require.NoError(t, err)
	res, err := l.Find()
	require.NoError(t, err)
	assertCircuit(t, g, l, res)

	assert.Equal(t, 2, l.Report().Counter(report.ComponentsFound))
	assert.Equal(t, 1, l.Report().Counter(report.ComponentsFinished))
	assert.GreaterOrEqual(t, res.Node, core.NodeID(3))
}

func TestLocator_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	g.AddNodes(3)
	_, err := g.Connect(0, 1)
	require.NoError(t, err)
	_, err = g.Connect(1, 2)
	require.NoError(t, err)
	loop, err := g.Connect(2, 2)
	require.NoError(t, err)

	l, err := circuit.NewDepthFirst(g, circuit.WithStart(0))
	require.NoError(t, err)
	res, err := l.Find()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, core.NodeID(2), res.Node)
	assert.Equal(t, core.NodeID(2), res.Other)
	assert.Equal(t, loop.ID, res.Edge.ID)
	assert.Equal(t, []core.NodeID{2}, l.Cycle())
}

func TestLocator_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	g.AddNodes(2)
	first, err := g.Connect(0, 1)
	require.NoError(t, err)
	second, err := g.Connect(0, 1)
	require.NoError(t, err)

	l, err := circuit.NewBreadthFirst(g, circuit.WithStart(0))
	require.NoError(t, err)
	res, err := l.Find()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, second.ID, res.Edge.ID)
	assert.NotEqual(t, first.ID, res.Edge.ID)
	assert.Len(t, l.Cycle(), 2)
}

func TestLocator_ArcsAreLinks(t *testing.T) {
	// 0→1→2 and 0→2 is acyclic as a digraph but closes a circuit as links
	g := core.NewGraph(core.WithDirected(true))
	g.AddNodes(3)
	for _, p := range [][2]core.NodeID{{0, 1}, {1, 2}, {0, 2}} {
		_, err := g.Connect(p[0], p[1])
		require.NoError(t, err)
	}
	l, err := circuit.NewDepthFirst(g, circuit.WithStart(2))
	require.NoError(t, err)
	res, err := l.Find()
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestLocator_CarvedTreePlusOneEdge(t *testing.T) {
	g := build(t, builder.Grid(3, 3))
	maze := g.CloneEmpty()
	e, err := growth.NewDepthFirst(g, growth.WithStart(0), growth.WithCarveInto(maze))
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))
	require.Equal(t, 8, maze.EdgeCount())

	l, err := circuit.NewDepthFirst(maze)
	require.NoError(t, err)
	res, err := l.Find()
	require.NoError(t, err)
	require.Nil(t, res)

	var extra *core.Edge
	for _, ge := range g.Edges() {
		if !maze.IsConnected(ge.From, ge.To) {
			extra = ge
			break
		}
	}
	require.NotNil(t, extra)
	_, err = maze.Connect(extra.From, extra.To)
	require.NoError(t, err)

	l, err = circuit.NewDepthFirst(maze)
	require.NoError(t, err)
	res, err = l.Find()
	require.NoError(t, err)
	assertCircuit(t, maze, l, res)
	assert.Contains(t, l.Cycle(), extra.From)
	assert.Contains(t, l.Cycle(), extra.To)
}

func TestLocator_PrioritySources(t *testing.T) {
	g := build(t, builder.Grid(3, 4))
	table := queue.Table[circuit.Arrival]{
		{Node: 0}: 0.5,
		{Node: 5}: 0.1,
	}
	fn := queue.Func[circuit.Arrival](func(a circuit.Arrival) float64 { return float64(a.Edge) })

	for name, src := range map[string]queue.Source[circuit.Arrival]{"table": table, "func": fn, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			run := func() *circuit.Result {
				l, err := circuit.NewPriority(g, src, circuit.KeyVertexEdge, queue.Stable,
					circuit.WithRand(rng.New(9)), circuit.WithCache(true))
				require.NoError(t, err)
				res, err := l.Find()
				require.NoError(t, err)
				assertCircuit(t, g, l, res)
				return res
			}
			a, b := run(), run()
			assert.Equal(t, a.Node, b.Node)
			assert.Equal(t, a.Other, b.Other)
			assert.Equal(t, a.Edge.ID, b.Edge.ID)
		})
	}
}

func TestLocator_Errors(t *testing.T) {
	g := build(t, builder.Cycle(3))

	_, err := circuit.New(nil, queue.NewLIFO[core.NodeID]())
	assert.ErrorIs(t, err, circuit.ErrGraphNil)

	_, err = circuit.New(g, nil)
	assert.ErrorIs(t, err, circuit.ErrQueueNil)

	stale := queue.NewLIFO[core.NodeID]()
	stale.Enter(2)
	_, err = circuit.New(g, stale, circuit.WithStart(0))
	assert.ErrorIs(t, err, circuit.ErrQueueNotEmpty)

	_, err = circuit.NewDepthFirst(g, circuit.WithStart(42))
	assert.ErrorIs(t, err, circuit.ErrStartNotFound)

	_, err = circuit.NewBreadthFirst(g, circuit.WithStart(-1))
	assert.ErrorIs(t, err, circuit.ErrOptionViolation)

	_, err = circuit.NewPriority(g, nil, circuit.KeyMode(9), queue.Stable)
	assert.ErrorIs(t, err, circuit.ErrOptionViolation)

	_, err = circuit.NewPriority(g, nil, circuit.KeyVertex, queue.TiePolicy(9))
	assert.ErrorIs(t, err, queue.ErrUnknownTiePolicy)
}

func TestLocator_Cancelled(t *testing.T) {
	g := build(t, builder.Cycle(5))
	l, err := circuit.NewDepthFirst(g)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := l.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
	assert.True(t, l.More())
}

func TestLocator_EmptyGraph(t *testing.T) {
	l, err := circuit.NewDepthFirst(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, l.More())
	res, err := l.Find()
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, "<none>", res.String())
}

func TestKeyMode_Key(t *testing.T) {
	assert.Equal(t, circuit.Arrival{Node: 3}, circuit.KeyVertex.Key(3, 7))
	assert.Equal(t, circuit.Arrival{Edge: 7}, circuit.KeyEdge.Key(3, 7))
	assert.Equal(t, circuit.Arrival{Node: 3, Edge: 7}, circuit.KeyVertexEdge.Key(3, 7))
}
