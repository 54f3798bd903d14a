// SPDX-License-Identifier: MIT
//
// File: temporal.go
// Role: Time-bucketed co-occurrence graphs built from simplices.
// Determinism:
//   - Times() is ascending; each bucket is an ordinary frozen Graph.
//   - A pair {a,b} is always stored as min(a,b)→max(a,b), so only the smaller
//     member becomes a key for that pair.

package core

import "sort"

// TemporalGraph maps a time bucket (e.g. a publication year) to the weighted
// co-occurrence Graph of that bucket. Immutable once built.
type TemporalGraph struct {
	buckets map[int]*Graph
	times   []int
}

// Len returns the number of time buckets.
func (tg *TemporalGraph) Len() int { return len(tg.times) }

// Times returns the bucket keys in ascending order.
func (tg *TemporalGraph) Times() []int {
	out := make([]int, len(tg.times))
	copy(out, tg.times)

	return out
}

// Bucket returns the graph of time t and whether it exists.
func (tg *TemporalGraph) Bucket(t int) (*Graph, bool) {
	g, ok := tg.buckets[t]
	return g, ok
}

// TemporalBuilder accumulates simplices into per-time adjacency maps.
// Weights always accumulate: a repeated pair means repeated co-occurrence.
type TemporalBuilder struct {
	buckets map[int]map[NodeID]map[NodeID]int64
	sealed  bool
}

// NewTemporalBuilder returns an empty TemporalBuilder.
func NewTemporalBuilder() *TemporalBuilder {
	return &TemporalBuilder{buckets: make(map[int]map[NodeID]map[NodeID]int64)}
}

// AddSimplex records one group of co-occurring members at time t.
// Every unordered pair of positions i<j adds 1 to min→max in bucket t.
// Simplices with fewer than two members add no edges and create no bucket.
// Repeated members inside one simplex form self-pairs, recorded as loops.
//
// Complexity: O(m²) for m members.
func (tb *TemporalBuilder) AddSimplex(t int, members []NodeID) error {
	if tb.sealed {
		return ErrBuilderSealed
	}
	if len(members) < 2 {
		return nil
	}
	adj, ok := tb.buckets[t]
	if !ok {
		adj = make(map[NodeID]map[NodeID]int64)
		tb.buckets[t] = adj
	}
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			lo, hi := members[i], members[j]
			if hi < lo {
				lo, hi = hi, lo
			}
			nbrs, ok := adj[lo]
			if !ok {
				nbrs = make(map[NodeID]int64)
				adj[lo] = nbrs
			}
			nbrs[hi]++
		}
	}

	return nil
}

// Build freezes every bucket and seals the builder.
// Complexity: O(Σ (V_t·log V_t + E_t)).
func (tb *TemporalBuilder) Build() (*TemporalGraph, error) {
	if tb.sealed {
		return nil, ErrBuilderSealed
	}
	tb.sealed = true
	tg := &TemporalGraph{
		buckets: make(map[int]*Graph, len(tb.buckets)),
		times:   make([]int, 0, len(tb.buckets)),
	}
	for t, adj := range tb.buckets {
		tg.buckets[t] = freeze(adj)
		tg.times = append(tg.times, t)
	}
	sort.Ints(tg.times)
	tb.buckets = nil

	return tg, nil
}
