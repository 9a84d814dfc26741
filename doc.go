// Package carve turns graphs into mazes: spanning trees grown, walled or
// flooded out of any connected topology, with the queue discipline as the
// one knob that changes the character of the result.
//
// 🚀 What is carve?
//
//	A small, single-threaded toolkit built around one substrate:
//		• queue/     – FIFO, LIFO and priority queues (stable/antistable/unstable ties)
//		• growth/    – frontier growth: depth-first, breadth-first, Prim-like, tournaments
//		• circuit/   – circuit location with the same queues
//		• walls/     – remove circuit edges until a spanning forest remains
//		• watershed/ – multi-seed flooding into territories joined by floodgates
//
// Around it:
//
//	core/      – arena-owned Graph, View/Mutable contracts, components, χ
//	builder/   – deterministic fixture topologies (grid, path, cycle, wheel, ...)
//	gridgraph/ – masked grids: open cells of a value grid as a graph
//	rng/       – explicit seeded random streams
//	report/    – counters and labels of a run, JSON and zerolog output
//	config/    – YAML run profiles
//
// ✨ Why the queue?
//
//	Swap a LIFO for a FIFO and the recursive backtracker becomes a breadth-first
//	carver; swap in a priority queue with random weights and it becomes Prim.
//	The algorithms never change, only the order in which the frontier is served.
//
// Quick ASCII example, one spanning tree ("maze") of a 3×3 grid:
//
//	o───o───o
//	        │
//	o───o───o
//	│
//	o───o───o
//
// Every algorithm is driven the same way: construct, then `for x.More() { x.Step() }`
// or `x.Run(ctx)`. Randomness is always explicit (WithRand); a nil stream means
// the default seed, so runs are reproducible unless asked otherwise.
//
//	go get github.com/katalvlaran/carve
package carve
