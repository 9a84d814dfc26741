// File: components.go
// Role: Connectivity analysis over any View: components and the Euler characteristic.
// Implementation:
//   - Projects the View onto a gonum simple.UndirectedGraph (orientation, loops and
//     parallel edges do not affect connectivity) and delegates to topo.ConnectedComponents.

package core

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the connected components of v, ignoring edge direction.
// Each component is sorted ascending; components are ordered by their smallest node.
//
// Complexity: O(V + E) plus sorting.
func Components(v View) [][]NodeID {
	ug := simple.NewUndirectedGraph()
	nodes := v.Nodes()
	for _, id := range nodes {
		ug.AddNode(simple.Node(id))
	}
	for _, id := range nodes {
		edges, err := v.IncidentEdges(id)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if e.IsLoop() || ug.HasEdgeBetween(int64(e.From), int64(e.To)) {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
		}
	}

	raw := topo.ConnectedComponents(ug)
	out := make([][]NodeID, 0, len(raw))
	for _, comp := range raw {
		ids := make([]NodeID, 0, len(comp))
		for _, n := range comp {
			ids = append(ids, NodeID(n.ID()))
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// ComponentCount returns len(Components(v)).
func ComponentCount(v View) int {
	return len(Components(v))
}

// EulerCharacteristic returns χ = ε − υ + κ (edges − nodes + components).
// χ is zero exactly when v is a spanning forest; it counts the independent
// circuits otherwise.
func EulerCharacteristic(v View) int {
	return v.EdgeCount() - v.NodeCount() + ComponentCount(v)
}
