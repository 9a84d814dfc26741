// Package circuit locates one cycle ("circuit") in a graph, or proves that the
// graph is a forest, using the same queue disciplines as package growth.
//
// State machine (one Step = one transition):
//
//	queue empty      → the current component is finished; seed the next unreached
//	                   node (first in Nodes() order) or stop with no circuit.
//	front node u     → pull u's next unexamined incident edge e:
//	  none left      → retire u (discard from queue, mark finished).
//	  e is a loop    → report (u, e, u).
//	  e arrived at u → skip it.
//	  e reaches an unreached v → visit v with arrival edge e, enter v.
//	  e reaches a visited v    → report (u, e, v).
//
// Edge orientation is ignored: a circuit is a cycle of links.
//
// Variants:
//
//	NewDepthFirst    LIFO; Cycle() walks the stack back to the closing node
//	NewBreadthFirst  FIFO
//	NewPriority      priority queue keyed by vertex, arrival edge, or both; missing
//	                 priorities are uniform random draws, memoized with WithCache.
//
// A memoized priority keeps the first value drawn for a key even if the
// wrapped source would now answer differently.
//
// Counters: "components found" (seeds), "components finished" (drained components).
package circuit
