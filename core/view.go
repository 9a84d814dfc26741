// File: view.go
// Role: The graph contracts consumed by traversal algorithms, plus non-mutating views.
// Concurrency:
//   - Views take read locks on the source; the result is a fresh graph instance.

package core

// View is the read side of a graph as seen by the traversal algorithms.
// *Graph implements it; exotic topologies can implement it directly.
type View interface {
	// Nodes returns every node handle in a stable order.
	Nodes() []NodeID
	// NodeCount returns len(Nodes()).
	NodeCount() int
	// HasNode reports whether id is part of the graph.
	HasNode(id NodeID) bool
	// Neighbors returns the ordered neighbor list of id (no self, no duplicates).
	Neighbors(id NodeID) ([]NodeID, error)
	// IncidentEdges returns every edge touching id in a stable order.
	IncidentEdges(id NodeID) ([]*Edge, error)
	// EdgeBetween returns an edge letting a reach b, if any.
	EdgeBetween(a, b NodeID) (*Edge, bool)
	// IsConnected reports whether EdgeBetween(a, b) exists.
	IsConnected(a, b NodeID) bool
	// EdgeCount returns the number of edges.
	EdgeCount() int
}

// Mutable is a View whose edges can be created and destroyed.
// Algorithms never create or destroy nodes.
type Mutable interface {
	View
	Connect(a, b NodeID, opts ...EdgeOption) (*Edge, error)
	Disconnect(id EdgeID) error
}

var (
	_ View    = (*Graph)(nil)
	_ Mutable = (*Graph)(nil)
)

// InducedSubgraph returns a new Graph with the same node arena as g, carrying
// only the edges whose endpoints are both in keep. Node handles are preserved,
// so handles from g remain valid on the result; nodes outside keep simply
// become isolated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep func(NodeID) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneEmptyLocked()
	for _, e := range g.edges {
		if !keep(e.From) || !keep(e.To) {
			continue
		}
		ne := *e
		out.linkLocked(&ne)
	}

	return out
}
