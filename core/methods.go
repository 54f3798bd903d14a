// Package core: Builder method implementations
//
// This file provides the only mutating operations in the package. All of them
// live on Builder; once Build() returns, the adjacency is owned by an
// immutable Graph and the Builder refuses further records.
// Adjacency is stored as a nested map: adjacency[from][to] = weight,
// giving constant-time insertion and duplicate detection.

package core

import "fmt"

const (
	defaultEdgeWeight int64 = 1
)

// AddNode registers v as a key with no neighbors. Registering an existing
// node is a no-op.
// Returns ErrBuilderSealed after Build().
// Complexity: O(1) amortized.
func (b *Builder) AddNode(v NodeID) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	b.ensureNode(v)

	return nil
}

// AddEdge records an unweighted from→to edge (weight 1).
// Under DuplicateIgnore a repeated pair is dropped; under
// DuplicateAccumulate its weight grows by 1.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to NodeID) error {
	return b.AddWeightedEdge(from, to, defaultEdgeWeight)
}

// AddWeightedEdge records from→to with weight w (w must be positive).
// With WithUndirected the mirror to→from is recorded under the same policy.
//
// Returns ErrBuilderSealed, ErrBadWeight.
// Complexity: O(1) amortized.
func (b *Builder) AddWeightedEdge(from, to NodeID, w int64) error {
	// 1) State and input validation
	if b.sealed {
		return ErrBuilderSealed
	}
	if w <= 0 {
		return fmt.Errorf("AddWeightedEdge(%d→%d, w=%d): %w", from, to, w, ErrBadWeight)
	}
	// 2) Loop policy
	if from == to && b.dropLoops {
		return nil
	}
	// 3) Insert forward entry
	b.insert(from, to, w)
	// 4) Mirror (loops have no distinct mirror)
	if b.undirected && from != to {
		b.insert(to, from, w)
	}

	return nil
}

// Build freezes the accumulated records into an immutable Graph and seals
// the Builder. Calling Build twice returns ErrBuilderSealed.
// Complexity: O(V·log V + E).
func (b *Builder) Build() (*Graph, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true
	adjacency := b.adjacency
	b.adjacency = nil

	return freeze(adjacency), nil
}

// Undirected reports whether the Builder mirrors every edge.
func (b *Builder) Undirected() bool {
	return b.undirected
}

// insert applies the duplicate policy to a single directed entry.
func (b *Builder) insert(from, to NodeID, w int64) {
	nbrs := b.ensureNode(from)
	prev, exists := nbrs[to]
	switch {
	case !exists:
		nbrs[to] = w
	case b.duplicates == DuplicateAccumulate:
		nbrs[to] = prev + w
	default:
		// DuplicateIgnore: first occurrence wins.
	}
}

// ensureNode returns the neighbor map of v, creating it on first use.
func (b *Builder) ensureNode(v NodeID) map[NodeID]int64 {
	nbrs, ok := b.adjacency[v]
	if !ok {
		nbrs = make(map[NodeID]int64)
		b.adjacency[v] = nbrs
	}

	return nbrs
}

// FromAdjacency deep-copies a literal adjacency map into a Graph.
// Every key becomes a node (including keys with empty neighbor maps).
// Returns ErrBadWeight if any weight is not positive.
// Complexity: O(V·log V + E).
func FromAdjacency(adj map[NodeID]map[NodeID]int64) (*Graph, error) {
	copied := make(map[NodeID]map[NodeID]int64, len(adj))
	for v, nbrs := range adj {
		inner := make(map[NodeID]int64, len(nbrs))
		for u, w := range nbrs {
			if w <= 0 {
				return nil, fmt.Errorf("FromAdjacency(%d→%d, w=%d): %w", v, u, w, ErrBadWeight)
			}
			inner[u] = w
		}
		copied[v] = inner
	}

	return freeze(copied), nil
}
