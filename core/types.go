// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Builder and Edge types of graphstat.
//
// This file declares NodeID, Edge, Graph, Option, DuplicatePolicy, the
// sentinel errors, and the NewBuilder constructor.
//
// Errors:
//
//	ErrNilGraph      - graph pointer is nil.
//	ErrEmptyGraph    - an average was requested over zero nodes.
//	ErrBadWeight     - edge weight is zero or negative.
//	ErrBuilderSealed - Builder mutated after Build().
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates an average over a graph with no nodes.
	// Statistics return it instead of propagating NaN.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrBuilderSealed indicates a Builder was used after Build().
	ErrBuilderSealed = errors.New("core: builder already sealed")
)

// NodeID identifies a vertex. Identifiers are non-negative integers taken
// verbatim from the input records.
type NodeID uint64

// Edge is a single weighted adjacency entry From→To.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight int64
}

// DuplicatePolicy decides what a repeated (from,to) record does.
type DuplicatePolicy int

const (
	// DuplicateIgnore keeps the first occurrence; repeats are dropped.
	DuplicateIgnore DuplicatePolicy = iota

	// DuplicateAccumulate sums the weights of repeated records.
	DuplicateAccumulate
)

// String returns the policy name used by the CLI and config files.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateIgnore:
		return "ignore"
	case DuplicateAccumulate:
		return "accumulate"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy maps "ignore"/"accumulate" to a DuplicatePolicy.
// The empty string resolves to DuplicateIgnore.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, bool) {
	switch s {
	case "", "ignore":
		return DuplicateIgnore, true
	case "accumulate":
		return DuplicateAccumulate, true
	default:
		return DuplicateIgnore, false
	}
}

// Option configures a Builder before any record is added.
type Option func(b *Builder)

// WithDuplicatePolicy selects how repeated (from,to) records are merged.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(b *Builder) { b.duplicates = p }
}

// WithUndirected mirrors every AddEdge(a,b) as b→a.
func WithUndirected() Option {
	return func(b *Builder) { b.undirected = true }
}

// WithoutLoops drops self-loop records (from == to).
func WithoutLoops() Option {
	return func(b *Builder) { b.dropLoops = true }
}

// Graph is the immutable sparse adjacency structure.
//
// adjacency[from][to] holds a positive weight; nodes is the sorted key set of
// adjacency and fixes the iteration order for every statistic. edgeCount and
// maxWeight are computed once by the Builder.
type Graph struct {
	adjacency map[NodeID]map[NodeID]int64
	nodes     []NodeID
	edgeCount int
	maxWeight int64
}

// Builder accumulates records and freezes them into a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	// Configuration flags
	duplicates DuplicatePolicy
	undirected bool
	dropLoops  bool

	adjacency map[NodeID]map[NodeID]int64
	sealed    bool
}

// NewBuilder creates an empty Builder with the given options.
// By default, duplicates are ignored, edges are directed and loops are kept.
// Complexity: O(len(opts))
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		adjacency: make(map[NodeID]map[NodeID]int64),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// freeze builds the sorted node index and cached aggregates for adjacency.
// adjacency is owned by the returned Graph afterwards.
func freeze(adjacency map[NodeID]map[NodeID]int64) *Graph {
	g := &Graph{
		adjacency: adjacency,
		nodes:     make([]NodeID, 0, len(adjacency)),
		maxWeight: 1,
	}
	var seenWeight bool
	for v, nbrs := range adjacency {
		g.nodes = append(g.nodes, v)
		g.edgeCount += len(nbrs)
		for _, w := range nbrs {
			if !seenWeight || w > g.maxWeight {
				g.maxWeight = w
				seenWeight = true
			}
		}
	}
	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i] < g.nodes[j] })

	return g
}
