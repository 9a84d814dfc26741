// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IncidentEdges, AdjacencyList).
// Determinism:
//   - IncidentEdges() sorts by Edge.ID asc.
//   - Neighbors() returns unique neighbors in order of their first incident edge id.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

import (
	"fmt"
	"sort"
)

// IncidentEdges returns every edge touching id, in both directions, sorted by
// Edge.ID ascending. A self-loop appears once.
//
// Complexity: O(d log d) where d = number of incident edges.
func (g *Graph) IncidentEdges(id NodeID) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return nil, fmt.Errorf("IncidentEdges(%d): %w", id, ErrNodeNotFound)
	}

	return g.incidentLocked(id), nil
}

func (g *Graph) incidentLocked(id NodeID) []*Edge {
	out := make([]*Edge, 0, len(g.incidence[id]))
	for eid := range g.incidence[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Neighbors returns the ordered, unique list of nodes reachable from id in one
// step. Arcs contribute only when id is their source. Self-loops are ignored:
// a node is never its own neighbor.
//
// Order follows the first connecting edge id, which is the order in which the
// topology was wired.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	edges := g.incidentLocked(id)
	seen := make(map[NodeID]struct{}, len(edges))
	out := make([]NodeID, 0, len(edges))
	for _, e := range edges {
		if e.IsLoop() || (e.Directed && e.From != id) {
			continue
		}
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}

	return out, nil
}

// AdjacencyList returns a snapshot map from node to its Neighbors().
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[NodeID][]NodeID {
	out := make(map[NodeID][]NodeID, g.NodeCount())
	for _, id := range g.Nodes() {
		nbrs, _ := g.Neighbors(id)
		out[id] = nbrs
	}

	return out
}
