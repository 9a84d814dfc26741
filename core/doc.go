// Package core provides a thread-safe in-memory Graph with an arena of
// handle-identified nodes and a minimal, composable API surface.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Undirected self-loops (WithLoops); arcs are never self-loops
//   - Weighted, labelled edges (WithWeight, WithLabel)
//
// Identity:
//
//	A node is its NodeID: the index of the node in the graph's arena. Nodes are
//	appended by the owner (AddNode/AddNodes) and never removed, so handles stay
//	valid for the life of the graph and across Clone/CloneEmpty. Edges carry a
//	monotonic EdgeID that is never reused.
//
// Contracts:
//
//	View    — read access used by traversal algorithms (neighbors, incident edges, edge lookup).
//	Mutable — View plus Connect/Disconnect; algorithms create and destroy edges only.
//
// Core Methods:
//
//	// Nodes
//	AddNode(label string) NodeID             // O(1)
//	AddNodes(n int) []NodeID                 // O(n)
//	HasNode(id NodeID) bool                  // O(1)
//	Nodes() []NodeID                         // O(V), ascending
//
//	// Edges
//	Connect(a, b NodeID, opts ...EdgeOption) (*Edge, error) // O(1)†
//	Disconnect(id EdgeID) error              // O(1)
//	EdgeBetween(a, b NodeID) (*Edge, bool)   // O(k), k = edges on the pair
//	IsConnected(a, b NodeID) bool
//
//	// Neighborhood
//	Neighbors(id NodeID) ([]NodeID, error)   // ordered by wiring order, unique
//	IncidentEdges(id NodeID) ([]*Edge, error)// sorted by EdgeID, both directions
//
//	// Analysis
//	Components(v View) [][]NodeID            // gonum topo
//	EulerCharacteristic(v View) int          // ε − υ + κ
//
// † O(k) on a pair already holding k edges when multi-edges are disabled.
//
// Errors:
//
//	ErrNodeNotFound         – handle outside the arena
//	ErrEdgeNotFound         – missing edge
//	ErrLoopNotAllowed       – self-loop when loops disabled, or a directed self-loop
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
