package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/carve/core"
)

func connect(t *testing.T, g *core.Graph, a, b core.NodeID, opts ...core.EdgeOption) *core.Edge {
	t.Helper()
	e, err := g.Connect(a, b, opts...)
	require.NoError(t, err)

	return e
}

func TestGraph_Nodes(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("a")
	ids := g.AddNodes(2)

	assert.Equal(t, core.NodeID(0), a)
	assert.Equal(t, []core.NodeID{1, 2}, ids)
	assert.Equal(t, []core.NodeID{0, 1, 2}, g.Nodes())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, "a", g.Label(a))
	assert.Equal(t, "", g.Label(9))
	assert.True(t, g.HasNode(2))
	assert.False(t, g.HasNode(3))
	assert.False(t, g.HasNode(-1))

	n, err := g.Node(0)
	require.NoError(t, err)
	assert.Equal(t, "a", n.Label)
	_, err = g.Node(5)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_ConnectPolicies(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(2)

	e := connect(t, g, 0, 1, core.WithWeight(2.5), core.WithLabel("door"))
	assert.Equal(t, core.EdgeID(1), e.ID)
	assert.Equal(t, 2.5, e.Weight)
	assert.Equal(t, "door", e.Label)
	assert.False(t, e.Directed)

	_, err := g.Connect(1, 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.Connect(0, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.Connect(0, 7)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Connect(0, 1, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	looped := core.NewGraph(core.WithLoops(), core.WithDirected(true))
	looped.AddNodes(1)
	_, err = looped.Connect(0, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed, "arcs are never loops")

	multi := core.NewGraph(core.WithMultiEdges())
	multi.AddNodes(2)
	connect(t, multi, 0, 1)
	connect(t, multi, 1, 0)
	assert.Equal(t, 2, multi.EdgeCount())
}

func TestGraph_NeighborsAndIncidentEdges(t *testing.T) {
	g := core.NewMixedGraph(core.WithLoops())
	g.AddNodes(4)
	e1 := connect(t, g, 0, 2)
	e2 := connect(t, g, 0, 0)
	e3 := connect(t, g, 3, 0, core.WithEdgeDirected(true))
	e4 := connect(t, g, 0, 1, core.WithEdgeDirected(true))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 1}, nbrs, "no self, outgoing arcs only, edge order")

	inc, err := g.IncidentEdges(0)
	require.NoError(t, err)
	assert.Equal(t, []*core.Edge{e1, e2, e3, e4}, inc)

	nbrs, err = g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, nbrs)
	nbrs, err = g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	assert.True(t, g.IsConnected(3, 0))
	assert.False(t, g.IsConnected(0, 3))
	assert.True(t, g.IsConnected(2, 0))
	assert.True(t, g.HasDirectedEdges())

	assert.Equal(t, core.NodeID(3), e3.Other(0))
	assert.Equal(t, core.NodeID(0), e2.Other(0))
	assert.True(t, e2.IsLoop())

	_, err = g.Neighbors(8)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.IncidentEdges(8)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	in, out, und, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)
	assert.Equal(t, 3, und)

	adj := g.AdjacencyList()
	assert.Len(t, adj, 4)
	assert.Equal(t, []core.NodeID{2, 1}, adj[0])
}

func TestGraph_EdgeBetweenLowestID(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	g.AddNodes(2)
	first := connect(t, g, 1, 0)
	connect(t, g, 0, 1)

	e, ok := g.EdgeBetween(0, 1)
	require.True(t, ok)
	assert.Equal(t, first.ID, e.ID)

	_, ok = g.EdgeBetween(0, 0)
	assert.False(t, ok)
}

func TestGraph_DisconnectNeverReusesIDs(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(3)
	e1 := connect(t, g, 0, 1)
	connect(t, g, 1, 2)

	require.NoError(t, g.Disconnect(e1.ID))
	assert.ErrorIs(t, g.Disconnect(e1.ID), core.ErrEdgeNotFound)
	_, err := g.Edge(e1.ID)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.False(t, g.IsConnected(0, 1))

	e3 := connect(t, g, 0, 1)
	assert.Equal(t, core.EdgeID(3), e3.ID)
	assert.Equal(t, 2, g.EdgeCount())

	g.Clear()
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
	e4 := connect(t, g, 0, 2)
	assert.Equal(t, core.EdgeID(4), e4.ID)
}

func TestGraph_Clones(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	g.AddNode("x")
	g.AddNode("y")
	e := connect(t, g, 0, 1, core.WithWeight(3))

	empty := g.CloneEmpty()
	assert.Equal(t, g.Nodes(), empty.Nodes())
	assert.Equal(t, "y", empty.Label(1))
	assert.Zero(t, empty.EdgeCount())
	assert.True(t, empty.Looped())
	next := connect(t, empty, 0, 1)
	assert.Greater(t, next.ID, e.ID, "clone continues the id sequence")

	full := g.Clone()
	got, err := full.Edge(e.ID)
	require.NoError(t, err)
	assert.Equal(t, *e, *got)
	assert.NotSame(t, e, got)

	require.NoError(t, full.Disconnect(e.ID))
	assert.Equal(t, 1, g.EdgeCount(), "clone is independent")
}

func TestGraph_FilterEdgesAndStats(t *testing.T) {
	g := core.NewMixedGraph(core.WithLoops())
	g.AddNodes(3)
	connect(t, g, 0, 1, core.WithWeight(1))
	connect(t, g, 1, 2, core.WithWeight(5))
	connect(t, g, 2, 2, core.WithWeight(5))
	connect(t, g, 2, 0, core.WithEdgeDirected(true), core.WithWeight(9))

	s := g.Stats()
	assert.Equal(t, 3, s.NodeCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, 1, s.DirectedEdgeCount)
	assert.Equal(t, 3, s.UndirectedEdgeCount)
	assert.Equal(t, 1, s.LoopCount)
	assert.True(t, s.MixedMode)

	g.FilterEdges(func(e *core.Edge) bool { return e.Weight < 5 })
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.IsConnected(0, 1))
}

func TestComponentsAndEuler(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	g.AddNodes(7)
	// triangle 0-1-2, path 3-4, loop on 5, isolated 6
	connect(t, g, 0, 1)
	connect(t, g, 1, 2)
	connect(t, g, 2, 0)
	connect(t, g, 3, 4)
	connect(t, g, 3, 4)
	connect(t, g, 5, 5)

	comps := core.Components(g)
	assert.Equal(t, [][]core.NodeID{{0, 1, 2}, {3, 4}, {5}, {6}}, comps)
	assert.Equal(t, 4, core.ComponentCount(g))
	// ε=6, υ=7, κ=4: triangle, parallel pair and loop each close one circuit
	assert.Equal(t, 3, core.EulerCharacteristic(g))

	assert.Zero(t, core.EulerCharacteristic(core.NewGraph()))
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	g.AddNodes(4)
	connect(t, g, 0, 1)
	e := connect(t, g, 1, 2)
	connect(t, g, 2, 3)

	sub := core.InducedSubgraph(g, func(id core.NodeID) bool { return id >= 1 && id <= 2 })
	assert.Equal(t, 4, sub.NodeCount())
	assert.Equal(t, 1, sub.EdgeCount())
	got, ok := sub.EdgeBetween(2, 1)
	require.True(t, ok)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, 3, core.ComponentCount(sub))
}
