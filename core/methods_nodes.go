// File: methods_nodes.go
// Role: Node arena lifecycle & queries: AddNode/AddNodes/HasNode/Node/Nodes/NodeCount/Degree.
// Determinism:
//   - Nodes() returns handles in ascending order (arena order).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode appends a new node to the arena and returns its handle.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(label)
}

// AddNodes appends n unlabeled nodes and returns their handles in order.
// Labels default to the decimal handle.
// Complexity: O(n).
func (g *Graph) AddNodes(n int) []NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]NodeID, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.addNodeLocked(fmt.Sprint(len(g.nodes))))
	}

	return out
}

func (g *Graph) addNodeLocked(label string) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{ID: id, Label: label, Metadata: make(map[string]interface{})})
	g.incidence = append(g.incidence, make(map[EdgeID]struct{}))

	return id
}

// HasNode reports whether id names a node of this graph.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(id)
}

func (g *Graph) hasNodeLocked(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node record for id.
// Returns ErrNodeNotFound if id is outside the arena.
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return nil, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id], nil
}

// Label returns the label of id, or "" if id is unknown.
func (g *Graph) Label(id NodeID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return ""
	}

	return g.nodes[id].Label
}

// Nodes returns every node handle in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		out[i] = NodeID(i)
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns in-, out- and undirected degree of id.
//
// A directed arc contributes to out (at From) and in (at To). An undirected
// edge contributes 1 to undirected at each endpoint; an undirected self-loop
// contributes 2.
//
// Complexity: O(deg(id)).
func (g *Graph) Degree(id NodeID) (in, out, undirected int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return 0, 0, 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}
	for eid := range g.incidence[id] {
		e := g.edges[eid]
		switch {
		case e.Directed && e.From == id:
			out++
		case e.Directed:
			in++
		case e.IsLoop():
			undirected += 2
		default:
			undirected++
		}
	}

	return in, out, undirected, nil
}
