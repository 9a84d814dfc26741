// Package growth turns a connected graph into a spanning tree by growing a
// frontier from one start node, with the queue discipline supplied by the caller.
//
// What
//
//   - Engine: one frontier. Each Step inspects the front of the queue; if the front
//     node has admitted arity children or has no unvisited neighbor left it is
//     retired (discarded), otherwise one unvisited neighbor (or, with
//     WithAdmitAll, up to the remaining arity) is admitted as a tree edge, marked
//     visited and entered into the queue.
//   - Tournament: several frontiers (tasks) driven by a Scheduler over one shared
//     claim map. Colliding territories merge; the colliding task closes or
//     restarts from a fresh random seed.
//
// Why
//
//	Swapping only the queue reproduces the classic carvers:
//	  LIFO      → depth-first (recursive backtracker)   NewDepthFirst
//	  FIFO      → breadth-first                          NewBreadthFirst
//	  Priority  → Prim-like, random node weights         NewPrim
//
// Guarantees
//
//	On a connected graph with unbounded arity (0) the Engine admits every node
//	exactly once and records |V|−1 passages: a spanning tree. A bounded arity may
//	leave nodes unvisited; the count lands in the "unvisited" counter and is not
//	an error. The Tournament yields a spanning tree of a connected graph too.
//
// Driving
//
//	for e.More() { if err := e.Step(); err != nil { ... } }   // manual
//	err := e.Run(ctx)                                          // ctx checked per step
//
// Options
//
//   - WithStart(id)            start node; random among eligible nodes otherwise.
//   - WithArity(n)             max children per node; 0 = unbounded; n<0 → ErrOptionViolation.
//   - WithShuffle(on)          shuffled vs graph-native neighbor order.
//   - WithAdmitAll()           admit up to the remaining arity per step.
//   - WithStopWhenAllVisited() stop as soon as every eligible node is visited.
//   - WithFilter(fn)           restrict growth to nodes with fn(id)==true.
//   - WithCarveInto(m)         Connect every admitted passage in m.
//   - WithCollision(p)         Tournament only: Close or Restart.
//   - WithRand, WithReport, WithLogger.
//
// Errors
//
//   - ErrGraphNil, ErrQueueNil   nil collaborators.
//   - ErrStartNotFound           start missing from the graph or filtered out.
//   - ErrOptionViolation         invalid option (negative arity, unknown policy).
//   - ErrNeighbors               the graph failed to list a node's neighbors.
//   - ErrCarve                   the WithCarveInto target rejected a passage.
//   - ErrNoSeeds, ErrSeedNotFound, ErrDuplicateSeed, ErrSchedulerNotEmpty,
//     ErrRetiredTask             Tournament setup and scheduling faults.
//
// Complexity: O(V + E) steps and queue operations; each step is one queue
// operation plus O(1) amortized cursor work.
package growth
