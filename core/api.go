// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics snapshot of a frozen Graph.
// Policy:
//   - No algorithms here beyond a single counting pass.
//   - Every exported function documents complexity.

package core

// GraphStats is a compact summary of a Graph, suitable for logging and
// admission checks before a statistics pass.
type GraphStats struct {
	// NodeCount is the number of adjacency keys.
	NodeCount int
	// EdgeCount is the number of directed adjacency entries.
	EdgeCount int
	// SelfLoops counts v→v entries.
	SelfLoops int
	// DanglingTargets counts distinct neighbor IDs that are not keys.
	DanglingTargets int
	// MaxWeight is the largest edge weight (1 for an edgeless graph).
	MaxWeight int64
	// Symmetric is true when every from→to has a matching to→from.
	Symmetric bool
}

// Stats produces a deterministic snapshot of the graph's shape.
//
// Implementation:
//   - Stage 1: One pass over every adjacency entry counting loops, dangling
//     targets and unmatched mirrors.
//   - Stage 2: Assemble the value object.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V+E), Space O(D) for the dangling-target set.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
		MaxWeight: g.maxWeight,
		Symmetric: true,
	}
	dangling := make(map[NodeID]struct{})
	for v, nbrs := range g.adjacency {
		for u := range nbrs {
			if u == v {
				stats.SelfLoops++
			}
			if _, ok := g.adjacency[u]; !ok {
				dangling[u] = struct{}{}
				stats.Symmetric = false
				continue
			}
			if _, ok := g.adjacency[u][v]; !ok {
				stats.Symmetric = false
			}
		}
	}
	stats.DanglingTargets = len(dangling)

	return &stats
}
