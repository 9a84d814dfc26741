// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone keep node handles and carry over nextEdgeID so edge ids stay monotonic on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes, but no edges.
// This is the usual way to obtain a blank "maze" over a topology graph.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	clone := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		allowMixed: g.allowMixed,
		nextEdgeID: g.nextEdgeID,
		nodes:      make([]*Node, len(g.nodes)),
		edges:      make(map[EdgeID]*Edge),
		incidence:  make([]map[EdgeID]struct{}, len(g.nodes)),
		pairs:      make(map[[2]NodeID]map[EdgeID]bool),
	}
	for i, n := range g.nodes {
		clone.nodes[i] = &Node{ID: n.ID, Label: n.Label, Metadata: n.Metadata}
		clone.incidence[i] = make(map[EdgeID]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes and edges.
// Edge ids are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	for _, e := range g.edges {
		ne := *e
		clone.linkLocked(&ne)
	}

	return clone
}

// Clear removes every edge while keeping nodes and configuration.
// The edge id counter is not reset, so ids issued later never collide with
// ids a caller may still hold.
//
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = make(map[EdgeID]*Edge)
	g.pairs = make(map[[2]NodeID]map[EdgeID]bool)
	for i := range g.incidence {
		g.incidence[i] = make(map[EdgeID]struct{})
	}
}
