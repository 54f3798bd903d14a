// Package clustering computes local, averaged, degree-bucketed and weighted
// clustering coefficients over a core.Graph, plus a per-year summary over a
// core.TemporalGraph.
//
// Local coefficient of v with k = |N(v)|:
//
//   - k < 2 (or v not a key): 0.
//   - Otherwise the neighbors are taken in ascending NodeID order and every
//     pair (a, b) with a < b is closed iff the edge a→b exists in g. A
//     neighbor a that is not a key never closes a pair.
//     Coefficient = closed / C(k, 2).
//
// Weighted coefficient of v (co-occurrence graphs):
//
//   - k ≤ 1: 0 (the node still counts in the mean).
//   - Otherwise, for every ordered pair of distinct neighbors (n1, n2) with
//     n1 a key and n2 ∈ N(n1), add w(v,n1) + w(v,n2).
//     Coefficient = sum / (2·k·(k−1)·w_max), w_max = g.MaxWeight().
//
// Reductions (Average, ByDegree, Weighted) return core.ErrEmptyGraph for a
// graph with no nodes. Each has a ...Parallel twin built on package parallel;
// the twins agree with the sequential results within floating-point
// tolerance (summation order differs across partitions).
//
// Means are computed with gonum.org/v1/gonum/stat and floats; tests compare
// with gonum.org/v1/gonum/floats/scalar.
//
// Complexity:
//
//   - Local(v):    O(k² ) map probes after an O(k·log k) sort.
//   - Weighted(v): O(Σ_{n1∈N(v)} |N(n1)|).
package clustering
