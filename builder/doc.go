// Package builder provides deterministic fixture topologies for carve's
// algorithms and tests, in the “functional options + constructor” style.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph + constructors in order.
//     – Apply(g, bopts, cons...):          constructors on an existing graph.
//   - Constructors (append nodes, never touch earlier ones):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//   - Label schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Options: WithIDScheme, WithSeed, WithRand, WithWeightFn, WithPartitionPrefix.
//
// Handles:
//
//	Nodes are appended in a documented order, so a fixture's handles are known
//	up front: Path(4) on an empty graph yields 0—1—2—3; Grid(r,c) puts cell
//	(i,j) at GridID(base, c, i, j).
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed), wrapped with the constructor name.
//   - Identical graphs for identical inputs, options and seeds.
package builder
