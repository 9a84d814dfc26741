// Package queue provides the container disciplines that drive every frontier
// in carve: FIFO, LIFO and a priority discipline with three tie-break policies.
//
// What
//
//   - One contract, Queue[T]: Enter, Leave, Peek, DiscardTop, Len, IsEmpty.
//   - NewFIFO  – first-in-first-out (gods arrayqueue).
//   - NewLIFO  – last-in-first-out (gods arraystack).
//   - NewPriority – lowest priority leaves first (gods priorityqueue), ties broken by
//     Stable (insertion order), Antistable (reverse insertion order) or Unstable
//     (heap order; unspecified but well-defined).
//
// Priority sources
//
//	A Source[T] yields a score for an item or reports a miss:
//	  Func[T]  – a total function, never misses
//	  Table[T] – a lookup map, misses on absent keys
//	Fallback(src, r, cache) fills misses with r.Float64(); with cache set the drawn
//	value is memoized so repeated lookups of the same item agree within one run.
//	The memo is owned by the Fallback value and dies with it. A memoized source
//	keeps returning the first value it saw for a key, even if the wrapped source
//	would now answer differently.
//
// Declarative construction
//
//	Spec{Kind, Tie, Cache} names a discipline by string (yaml-friendly) and FromSpec
//	builds it. Unknown kinds yield ErrUnknownDiscipline, unknown tie policies
//	ErrUnknownTiePolicy.
//
// Complexity
//
//   - FIFO/LIFO: O(1) amortized for every operation.
//   - Priority:  O(log n) Enter/Leave/DiscardTop, O(1) Peek/Len.
//
// Concurrency
//
//	Queues are not goroutine-safe; each belongs to one traversal.
package queue
