// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
//
// Purpose:
//   - Provide small, deterministic graphs used across core tests.
//   - Keep node IDs and weights as named constants (no magic numbers in test bodies).

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphstat/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	Node1 core.NodeID = 1
	Node2 core.NodeID = 2
	Node3 core.NodeID = 3
	Node4 core.NodeID = 4
	Node9 core.NodeID = 9
)

// Common weights used across core tests.
const (
	Weight1 int64 = 1
	Weight2 int64 = 2
	Weight5 int64 = 5
)

// Common concurrency sizes used across core tests.
const (
	NReaders   = 64
	NRingNodes = 500
)

// triangleAdjacency is the symmetric triangle 1-2-3.
func triangleAdjacency() map[core.NodeID]map[core.NodeID]int64 {
	return map[core.NodeID]map[core.NodeID]int64{
		Node1: {Node2: Weight1, Node3: Weight1},
		Node2: {Node1: Weight1, Node3: Weight1},
		Node3: {Node1: Weight1, Node2: Weight1},
	}
}

// mustGraph builds a Graph from a literal adjacency or fails the test.
func mustGraph(t testing.TB, adj map[core.NodeID]map[core.NodeID]int64) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err, "FromAdjacency")

	return g
}

// mustBuild freezes b or fails the test.
func mustBuild(t testing.TB, b *core.Builder) *core.Graph {
	t.Helper()
	g, err := b.Build()
	require.NoError(t, err, "Build")

	return g
}

// ringGraph builds an undirected ring over n nodes (0..n-1).
func ringGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	b := core.NewBuilder(core.WithUndirected())
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddEdge(core.NodeID(i), core.NodeID((i+1)%n)))
	}

	return mustBuild(t, b)
}
