// File: view.go
// Role: Non-mutating graph views (new graphs derived from existing ones).
// Determinism:
//   - Results depend only on the input contents, never on map iteration order.
// Concurrency:
//   - Inputs are immutable; each view is a fresh Graph.

package core

// Symmetrize returns the union of g and its reverse: for every from→to the
// result holds both from→to and to→from. When both directions already exist
// with different weights the larger one is kept on both sides.
// Every neighbor becomes a key, so the result has no dangling targets.
//
// Complexity: O(V + E).
func Symmetrize(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := make(map[NodeID]map[NodeID]int64, len(g.adjacency))
	put := func(a, b NodeID, w int64) {
		nbrs, ok := out[a]
		if !ok {
			nbrs = make(map[NodeID]int64)
			out[a] = nbrs
		}
		if prev, ok := nbrs[b]; !ok || w > prev {
			nbrs[b] = w
		}
	}
	for v, nbrs := range g.adjacency {
		if _, ok := out[v]; !ok {
			out[v] = make(map[NodeID]int64)
		}
		for u, w := range nbrs {
			put(v, u, w)
			put(u, v, w)
		}
	}

	return freeze(out), nil
}

// Aggregate sums every time bucket of tg into a single Graph: the weight of
// from→to is the total co-occurrence count across all buckets.
//
// Complexity: O(Σ (V_t + E_t)).
func Aggregate(tg *TemporalGraph) (*Graph, error) {
	if tg == nil {
		return nil, ErrNilGraph
	}
	out := make(map[NodeID]map[NodeID]int64)
	for _, t := range tg.times {
		for v, nbrs := range tg.buckets[t].adjacency {
			acc, ok := out[v]
			if !ok {
				acc = make(map[NodeID]int64, len(nbrs))
				out[v] = acc
			}
			for u, w := range nbrs {
				acc[u] += w
			}
		}
	}

	return freeze(out), nil
}
