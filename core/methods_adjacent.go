// File: methods_adjacent.go
// Role: Read-only queries over a frozen Graph (membership, degree, neighbors).
// Determinism:
//   - Nodes(), NeighborIDs() and Range() iterate in ascending NodeID order.
//   - Neighborhood.Range iterates in map order; callers needing a stable order use NeighborIDs.
// Concurrency:
//   - The Graph is immutable; every method is safe for concurrent readers without locks.

package core

import "sort"

// NodeCount returns the number of keys in the adjacency.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of directed adjacency entries.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Nodes returns a sorted copy of every key.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// HasNode reports whether v is a key of the adjacency.
// A node seen only as a neighbor is not a key.
// Complexity: O(1).
func (g *Graph) HasNode(v NodeID) bool {
	_, ok := g.adjacency[v]
	return ok
}

// HasEdge reports whether the directed entry from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, ok := g.adjacency[from][to]
	return ok
}

// Weight returns the weight of from→to and whether the entry exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to NodeID) (int64, bool) {
	w, ok := g.adjacency[from][to]
	return w, ok
}

// Degree returns |N(v)|; 0 when v is not a key.
// Complexity: O(1).
func (g *Graph) Degree(v NodeID) int {
	return len(g.adjacency[v])
}

// WeightedDegree returns the sum of the weights of v's neighbor map.
// Complexity: O(deg v).
func (g *Graph) WeightedDegree(v NodeID) int64 {
	var sum int64
	for _, w := range g.adjacency[v] {
		sum += w
	}

	return sum
}

// NeighborIDs returns the neighbors of v sorted ascending; nil when v is not a key.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(v NodeID) []NodeID {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	out := make([]NodeID, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Neighbors returns a read-only view of v's neighbor map.
// The zero Neighborhood (v not a key) has Len() == 0.
// Complexity: O(1).
func (g *Graph) Neighbors(v NodeID) Neighborhood {
	return Neighborhood{m: g.adjacency[v]}
}

// Range calls fn for every node in ascending order with its neighbor view.
// Iteration stops early when fn returns false.
// Complexity: O(V).
func (g *Graph) Range(fn func(v NodeID, nbrs Neighborhood) bool) {
	for _, v := range g.nodes {
		if !fn(v, Neighborhood{m: g.adjacency[v]}) {
			return
		}
	}
}

// MaxWeight returns the largest edge weight in the graph, or 1 when the
// graph has no edges.
// Complexity: O(1).
func (g *Graph) MaxWeight() int64 {
	return g.maxWeight
}

// HeaviestEdge returns the entry with the largest weight. Ties resolve to the
// smallest (From, To) pair. ok is false for an edgeless graph.
// Complexity: O(E).
func (g *Graph) HeaviestEdge() (Edge, bool) {
	var (
		best  Edge
		found bool
	)
	for _, v := range g.nodes {
		for u, w := range g.adjacency[v] {
			cand := Edge{From: v, To: u, Weight: w}
			if !found || heavier(cand, best) {
				best, found = cand, true
			}
		}
	}

	return best, found
}

// heavier orders edges by weight desc, then From asc, then To asc.
func heavier(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Neighborhood is a read-only view over one node's neighbor map.
type Neighborhood struct {
	m map[NodeID]int64
}

// Len returns the number of neighbors.
func (n Neighborhood) Len() int { return len(n.m) }

// Has reports whether u is a neighbor.
func (n Neighborhood) Has(u NodeID) bool {
	_, ok := n.m[u]
	return ok
}

// Weight returns the weight towards u and whether u is a neighbor.
func (n Neighborhood) Weight(u NodeID) (int64, bool) {
	w, ok := n.m[u]
	return w, ok
}

// Range calls fn for every neighbor in map order until fn returns false.
func (n Neighborhood) Range(fn func(u NodeID, w int64) bool) {
	for u, w := range n.m {
		if !fn(u, w) {
			return
		}
	}
}
