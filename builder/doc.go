// SPDX-License-Identifier: MIT
// Package builder provides deterministic graph fixtures for graphstat:
// classic topologies, seeded random graphs and seeded co-authorship style
// temporal graphs.
//
// What:
//
//   - BuildGraph(gopts, bopts, cons...) creates a core.Builder with gopts,
//     resolves the builder configuration from bopts, runs every Constructor
//     in order and freezes the result into an immutable *core.Graph.
//   - Topologies: Complete, Cycle, Path, Star, Wheel, CompleteBipartite, Grid.
//   - Random: RandomSparse(n, p) (Erdős–Rényi style, seeded).
//   - Temporal: RandomSimplices(shape) returns a *core.TemporalGraph made of
//     seeded simplices spread over a range of years.
//
// Options:
//
//   - WithSeed / WithRand  : RNG for stochastic constructors and weights.
//   - WithWeightFn         : per-edge weight generator (weights must be > 0).
//   - WithIDScheme         : index → core.NodeID mapping (default identity).
//   - WithIDOffset         : shorthand for an index + offset scheme.
//
// Direction:
//
//   - Every topology is symmetric: constructors emit both directions
//     themselves when the core.Builder is directed; an undirected
//     core.Builder mirrors them already. RandomSparse is the only directed
//     fixture.
//
// Determinism:
//
//   - Same options, same seed and same constructor order ⇒ identical graphs.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed; core errors (e.g. core.ErrBadWeight from a weight
//     generator returning ≤ 0) are wrapped with the constructor name.
package builder
