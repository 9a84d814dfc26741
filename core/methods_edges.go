// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/Disconnect/Edge/Edges/EdgeCount/EdgeBetween/IsConnected,
//       plus HasDirectedEdges and FilterEdges.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - EdgeIDs are monotonic (1, 2, 3, ...) and never reused, not even after Disconnect.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// Connect creates a new edge between a and b.
//
// Steps:
//  1. Resolve per-edge options; a direction override requires mixed mode.
//  2. Validate endpoints, loop policy (arcs are never self-loops).
//  3. Check the multi-edge constraint on the endpoint pair.
//  4. Issue the next EdgeID, store the edge, index it by incidence and by pair.
//
// Complexity: O(1) amortized, O(k) for the multi-edge check on a pair with k edges.
func (g *Graph) Connect(a, b NodeID, opts ...EdgeOption) (*Edge, error) {
	cfg := edgeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Direction: graph default unless overridden in mixed mode.
	directed := g.directed
	if cfg.dirOverride {
		if !g.allowMixed {
			return nil, ErrMixedEdgesNotAllowed
		}
		directed = cfg.directed
	}

	// 2) Endpoint and loop validation.
	if !g.hasNodeLocked(a) || !g.hasNodeLocked(b) {
		return nil, fmt.Errorf("Connect(%d,%d): %w", a, b, ErrNodeNotFound)
	}
	if a == b && (directed || !g.allowLoops) {
		return nil, fmt.Errorf("Connect(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	// 3) Multi-edge constraint.
	key := pairKey(a, b)
	if !g.allowMulti {
		for eid := range g.pairs[key] {
			if g.edges[eid].covers(a, b, directed) {
				return nil, fmt.Errorf("Connect(%d,%d): %w", a, b, ErrMultiEdgeNotAllowed)
			}
		}
	}

	// 4) Store and index.
	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: a, To: b, Weight: cfg.weight, Label: cfg.label, Directed: directed}
	g.linkLocked(e)

	return e, nil
}

// covers reports whether e already joins the same ordered/unordered pair as a
// prospective edge a→b with the given directedness.
func (e *Edge) covers(a, b NodeID, directed bool) bool {
	if !e.Directed || !directed {
		return true
	}

	return e.From == a && e.To == b
}

// linkLocked stores e in the catalog and both indexes. Caller holds mu.
func (g *Graph) linkLocked(e *Edge) {
	g.edges[e.ID] = e
	g.incidence[e.From][e.ID] = struct{}{}
	g.incidence[e.To][e.ID] = struct{}{}
	key := pairKey(e.From, e.To)
	if g.pairs[key] == nil {
		g.pairs[key] = make(map[EdgeID]bool)
	}
	g.pairs[key][e.ID] = true
}

// Disconnect deletes one edge.
// Returns ErrEdgeNotFound if eid is not a live edge.
// Complexity: O(1).
func (g *Graph) Disconnect(eid EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("Disconnect(%d): %w", eid, ErrEdgeNotFound)
	}
	delete(g.edges, eid)
	delete(g.incidence[e.From], eid)
	delete(g.incidence[e.To], eid)
	key := pairKey(e.From, e.To)
	delete(g.pairs[key], eid)
	if len(g.pairs[key]) == 0 {
		delete(g.pairs, key)
	}

	return nil
}

// Edge returns the live edge with the given id.
func (g *Graph) Edge(eid EdgeID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, fmt.Errorf("Edge(%d): %w", eid, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns all edges sorted by ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeBetween returns the lowest-ID edge that lets a reach b: an undirected
// edge joining {a,b} or an arc a→b.
// Complexity: O(k) for k edges on the pair.
func (g *Graph) EdgeBetween(a, b NodeID) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best *Edge
	for eid := range g.pairs[pairKey(a, b)] {
		e := g.edges[eid]
		if e.Directed && e.From != a {
			continue
		}
		if best == nil || e.ID < best.ID {
			best = e
		}
	}

	return best, best != nil
}

// IsConnected reports whether an edge lets a reach b (see EdgeBetween).
func (g *Graph) IsConnected(a, b NodeID) bool {
	_, ok := g.EdgeBetween(a, b)
	return ok
}

// HasDirectedEdges reports whether any live edge is an arc.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes every edge for which keep returns false.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(*Edge) bool) {
	var drop []EdgeID
	for _, e := range g.Edges() {
		if !keep(e) {
			drop = append(drop, e.ID)
		}
	}
	for _, eid := range drop {
		_ = g.Disconnect(eid)
	}
}

// pairKey returns the canonical (min,max) endpoint pair.
func pairKey(a, b NodeID) [2]NodeID {
	if a > b {
		a, b = b, a
	}

	return [2]NodeID{a, b}
}
