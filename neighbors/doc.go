// Package neighbors counts closed two-hop walks, the common-neighbor
// statistic of graphstat.
//
// For a node v with neighbor set N(v), ClosedWalks(g, v) counts the walks
// v→u→w with u ∈ N(v), u a key of g, and w ∈ N(v) ∩ N(u). Every ordered
// pair (u, w) is visited, so on a symmetric graph the count is exactly twice
// the number of triangles through v. This is the one canonical
// implementation of the quantity; package clustering builds its unweighted
// coefficient on the same neighbor intersection.
//
// Reductions over all nodes:
//
//   - Average:      mean walk count (ErrEmptyGraph when |V| = 0)
//   - Max:          largest walk count (0 for an empty graph)
//   - Distribution: walk count → number of nodes
//
// plus their ...Parallel twins built on package parallel, which agree
// exactly with the sequential results.
//
// Complexity:
//
//   - ClosedWalks(v): O(Σ_{u∈N(v)} |N(u)|) expected, with O(1) map probes.
//   - Whole graph:    O(Σ_v Σ_{u∈N(v)} |N(u)|).
package neighbors
