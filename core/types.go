// Package core defines the central Graph, Node, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// Nodes live in an append-only arena owned by the Graph; a NodeID is the
// node's index in that arena and is the node's only identity. Edges are kept
// in a catalog keyed by EdgeID and indexed per node by incidence.
//
// This file declares Node, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled, or a directed self-loop.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction override without mixed mode.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node handle outside the arena.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled,
	// or a directed self-loop (arcs are never self-loops).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// NodeID is a handle into a Graph's node arena.
type NodeID int

// EdgeID uniquely identifies an edge within its Graph. IDs are assigned
// monotonically starting at 1 and are never reused.
type EdgeID int

// NoEdge is the zero EdgeID; it never names a live edge.
const NoEdge EdgeID = 0

// Node represents a vertex ("cell") in the graph.
//
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Node struct {
	// ID is the arena handle of this Node.
	ID NodeID

	// Label is a free-form human-readable name (e.g. "2,3" for a grid cell).
	Label string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection ("passage") between two nodes.
//
// Undirected edges connect an unordered pair; directed edges (arcs) connect
// the ordered pair From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Weight is an arbitrary numeric weight.
	Weight float64

	// Label is a free-form tag.
	Label string

	// Directed marks an arc (true) or an undirected edge (false).
	Directed bool
}

// Other returns the endpoint of e opposite to n. For a self-loop it returns n.
func (e *Edge) Other(n NodeID) NodeID {
	if e.From == n {
		return e.To
	}

	return e.From
}

// IsLoop reports whether e is a self-loop.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits undirected self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when connected.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight      float64
	label       string
	directed    bool
	dirOverride bool
}

// WithWeight sets the edge weight.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WithLabel sets the edge label.
func WithLabel(label string) EdgeOption {
	return func(c *edgeConfig) { c.label = label }
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Requires a graph created with WithMixedEdges.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) {
		c.directed = directed
		c.dirOverride = true
	}
}

// Graph is the core in-memory graph data structure.
//
// mu guards every field below it. nextEdgeID is the last issued edge id.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow undirected self-loops
	allowMixed bool // allow per-edge direction overrides

	// Storage
	nextEdgeID EdgeID
	nodes      []*Node                       // arena: nodes[id].ID == id
	edges      map[EdgeID]*Edge              // edge catalog
	incidence  []map[EdgeID]struct{}         // incidence[id] = edges touching id
	pairs      map[[2]NodeID]map[EdgeID]bool // canonical endpoint pair → edge ids
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges: make(map[EdgeID]*Edge),
		pairs: make(map[[2]NodeID]map[EdgeID]bool),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
