// Package watershed floods a connected graph from several seeds at once and
// partitions it into territories, recording every edge where two territories
// touch (a floodgate).
//
// Rounds
//
// Each territory owns a private queue of claims (target node, claiming node).
// Seeds are claimed first; each seed then queues its unclaimed neighbors. One
// Step is a round: in territory order, every territory with a non-empty queue
// pops claims until one succeeds or its queue drains.
//
//	target unclaimed         → claim it, queue its unclaimed neighbors
//	target held by another   → record (claimer, target) as a floodgate
//	target held by itself    → drop the claim
//
// A neighbor already held by another territory when a node is claimed is
// recorded as a floodgate at once. Floodgates are kept once per node pair.
//
// A round in which no territory claims anything ends the partition. If nodes
// are still unclaimed then the graph was not connected and Step returns
// ErrDisconnected; the partition of the reached part stays readable.
//
// After the partition
//
//	Territories  claimed nodes per territory, in claim order
//	Owner        territory of a node
//	Floodgates   candidates between two territories
//	ReducedGraph one node per territory, one edge per touching pair
//	             (weight = number of candidates)
//	Select       uniform pick of one candidate for a reduced edge
//
// Carve chains the pieces into a maze: partition, grow a spanning tree inside
// every territory, span the reduced graph, then open one selected floodgate
// per reduced edge.
package watershed
