// Package graphstat computes structural statistics of large, sparse graphs
// loaded once into memory: degree, common-neighbor (closed walk) and
// clustering measures, each in a sequential form and a partitioned parallel
// form that must agree.
//
// 🚀 What is graphstat?
//
//	A small library plus one CLI that brings together:
//		• Core primitives: an immutable adjacency store built once by a Builder
//		• Temporal buckets: one weighted co-occurrence graph per year
//		• Degree statistics: average, maximum, distribution, weighted average
//		• Closed walks: per-node common-neighbor counts and their summaries
//		• Clustering: local, by-degree, and weighted (Barrat-style) coefficients
//		• Parallel passes: partition, map on a bounded pool, reduce once
//
// ✨ Why choose graphstat?
//
//   - Read-only after Build: any number of goroutines may share a Graph
//   - Deterministic: parallel results merge in partition order
//   - Verified: every statistic has a sequential oracle
//
// Packages:
//
//	core/       - Graph, Builder, TemporalGraph and read-only views
//	builder/    - deterministic topologies and random fixtures for tests
//	edgelist/   - edge-list and simplex stream loaders
//	histogram/  - integer-keyed histograms and their text format
//	parallel/   - partitioned map-reduce over a Graph
//	degree/     - degree statistics
//	neighbors/  - closed-walk (common-neighbor) statistics
//	clustering/ - local, weighted and per-year clustering
//	cmd/graphstat - the CLI running every statistic both ways
//
// Quick ASCII example:
//
//	    1───2
//	     \ /
//	      3───4
//
//	undirected: C(1)=C(2)=1, C(3)=1/3, C(4)=0, average 7/12.
//
//	go install github.com/katalvlaran/graphstat/cmd/graphstat@latest
package graphstat
