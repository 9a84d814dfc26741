// Package config loads declarative run profiles from YAML and turns them into
// queues, growth engines and circuit locators.
//
// A profile:
//
//	name: backtracker
//	seed: 42
//	queue:
//	  kind: lifo          # fifo | lifo | priority (aliases queue, stack, heap, bfs, dfs, prim)
//	  tie: stable         # priority only: stable | antistable | unstable
//	  cache: true         # priority only: memoize random priorities
//	arity: 0              # children per node, 0 = unbounded
//	shuffle: true
//	admit_all: false
//	stop_when_all_visited: false
//	collision: close      # tournament: close | restart
//	key: vertex           # priority locator: vertex | edge | vertex-edge
//
// A set of profiles is a document with a top-level "profiles" list.
// Unknown fields are rejected.
package config
