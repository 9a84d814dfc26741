package growth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/carve/builder"
	"github.com/katalvlaran/carve/core"
	"github.com/katalvlaran/carve/growth"
	"github.com/katalvlaran/carve/queue"
	"github.com/katalvlaran/carve/report"
	"github.com/katalvlaran/carve/rng"
)

func grid(t *testing.T, rows, cols int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	return g
}

// carved returns the spanning structure of res as a graph over g's arena.
func carved(t *testing.T, g *core.Graph, res *growth.Result) *core.Graph {
	t.Helper()
	out := g.CloneEmpty()
	for _, p := range res.Passages {
		_, err := out.Connect(p.From, p.To)
		require.NoError(t, err)
	}

	return out
}

// assertSpanningTree checks V−1 edges, one component and unique admission.
func assertSpanningTree(t *testing.T, g *core.Graph, res *growth.Result) {
	t.Helper()
	v := g.NodeCount()
	assert.Len(t, res.Passages, v-1)
	assert.Equal(t, v, res.Visited)

	seen := make(map[core.NodeID]bool, v)
	for _, id := range res.Order {
		assert.False(t, seen[id], "node %d admitted twice", id)
		seen[id] = true
	}

	tree := carved(t, g, res)
	assert.Equal(t, 1, core.ComponentCount(tree))
	assert.Zero(t, core.EulerCharacteristic(tree))
}

func TestEngine_SpanningTreeAcrossDisciplines(t *testing.T) {
	ctors := map[string]func(core.View, ...growth.Option) (*growth.Engine, error){
		"depth-first":   growth.NewDepthFirst,
		"breadth-first": growth.NewBreadthFirst,
		"prim":          growth.NewPrim,
	}
	for name, ctor := range ctors {
		for _, shuffle := range []bool{false, true} {
			t.Run(name, func(t *testing.T) {
				g := grid(t, 5, 6)
				e, err := ctor(g, growth.WithShuffle(shuffle), growth.WithRand(rng.New(9)))
				require.NoError(t, err)
				require.NoError(t, e.Run(context.Background()))
				assertSpanningTree(t, g, e.Result())
				assert.Zero(t, e.Report().Counter(report.Unvisited))
				assert.Equal(t, 29, e.Report().Counter(report.Passages))
			})
		}
	}
}

// TestEngine_Grid3x3LIFO covers the 3×3 scenario: 8 passages, one component.
func TestEngine_Grid3x3LIFO(t *testing.T) {
	g := grid(t, 3, 3)
	maze := g.CloneEmpty()
	e, err := growth.New(g, queue.NewLIFO[core.NodeID](), growth.WithStart(0), growth.WithCarveInto(maze))
	require.NoError(t, err)
	for e.More() {
		require.NoError(t, e.Step())
	}

	assert.Equal(t, 8, maze.EdgeCount())
	assert.Equal(t, 1, core.ComponentCount(maze))
	assert.Equal(t, core.NodeID(0), e.Result().Order[0])
}

func TestEngine_BreadthFirstLayers(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	e, err := growth.NewBreadthFirst(g, growth.WithStart(0))
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	// every leaf hangs off the hub
	for _, leaf := range []core.NodeID{1, 2, 3, 4} {
		assert.Equal(t, []core.NodeID{0, leaf}, e.Result().PathTo(leaf))
	}
}

func TestEngine_BoundedArity(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)

	e, err := growth.NewDepthFirst(g, growth.WithStart(0), growth.WithArity(2))
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	assert.Len(t, e.Result().Passages, 2)
	assert.Equal(t, 3, e.Report().Counter(report.Unvisited))
}

func TestEngine_AdmitAll(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)

	e, err := growth.NewDepthFirst(g, growth.WithStart(0), growth.WithAdmitAll(), growth.WithArity(3))
	require.NoError(t, err)
	require.NoError(t, e.Step())
	assert.Len(t, e.Result().Passages, 3, "one step admits up to the arity")

	require.NoError(t, e.Run(context.Background()))
	assert.Len(t, e.Result().Passages, 3)
}

func TestEngine_StopWhenAllVisited(t *testing.T) {
	g := grid(t, 4, 4)
	e, err := growth.NewBreadthFirst(g, growth.WithStart(0), growth.WithStopWhenAllVisited())
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	assertSpanningTree(t, g, e.Result())
	assert.False(t, e.More())
}

func TestEngine_Filter(t *testing.T) {
	g := grid(t, 3, 3)
	// left two columns only
	left := func(id core.NodeID) bool { return int(id)%3 < 2 }
	e, err := growth.NewDepthFirst(g, growth.WithStart(0), growth.WithFilter(left))
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	assert.Len(t, e.Result().Passages, 5)
	for _, id := range e.Result().Order {
		assert.True(t, left(id))
	}

	_, err = growth.NewDepthFirst(g, growth.WithStart(2), growth.WithFilter(left))
	assert.ErrorIs(t, err, growth.ErrStartNotFound)
}

func TestEngine_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Path(2))
	require.NoError(t, err)
	e, err := growth.NewDepthFirst(g, growth.WithStart(0))
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	assert.Len(t, e.Result().Passages, 2)
	assert.Equal(t, 2, e.Report().Counter(report.Unvisited))
	assert.False(t, e.Visited(3))
}

func TestEngine_Errors(t *testing.T) {
	g := grid(t, 2, 2)

	_, err := growth.New(nil, queue.NewFIFO[core.NodeID]())
	assert.ErrorIs(t, err, growth.ErrGraphNil)

	_, err = growth.New(g, nil)
	assert.ErrorIs(t, err, growth.ErrQueueNil)

	_, err = growth.NewDepthFirst(g, growth.WithArity(-1))
	assert.ErrorIs(t, err, growth.ErrOptionViolation)

	_, err = growth.NewDepthFirst(g, growth.WithStart(99))
	assert.ErrorIs(t, err, growth.ErrStartNotFound)

	// the carve target must accept every passage
	target := core.NewGraph()
	e, err := growth.NewDepthFirst(g, growth.WithStart(0), growth.WithCarveInto(target))
	require.NoError(t, err)
	err = e.Step()
	assert.ErrorIs(t, err, growth.ErrCarve)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEngine_RejectsPrefilledQueue(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	q := queue.NewFIFO[core.NodeID]()
	q.Enter(3)
	_, err = growth.New(g, q, growth.WithStart(0))
	assert.ErrorIs(t, err, growth.ErrQueueNotEmpty)
	assert.Equal(t, 1, q.Len(), "rejected queue is left alone")

	q.DiscardTop()
	e, err := growth.New(g, q, growth.WithStart(0))
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))
	assertSpanningTree(t, g, e.Result())
	assert.Equal(t, []growth.Passage{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, e.Result().Passages)
}

func TestEngine_Cancel(t *testing.T) {
	g := grid(t, 4, 4)
	e, err := growth.NewDepthFirst(g)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.Run(ctx), context.Canceled)
	assert.True(t, e.More())
}

func TestEngine_Deterministic(t *testing.T) {
	run := func() []growth.Passage {
		g := grid(t, 4, 5)
		e, err := growth.NewDepthFirst(g, growth.WithShuffle(true), growth.WithRand(rng.New(5)))
		require.NoError(t, err)
		require.NoError(t, e.Run(context.Background()))
		return e.Result().Passages
	}
	assert.Equal(t, run(), run())
}

func TestEngine_EmptyGraph(t *testing.T) {
	e, err := growth.NewDepthFirst(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, e.More())
	assert.NoError(t, e.Step())
	assert.Empty(t, e.Result().Passages)
}
