// Package core provides the immutable sparse adjacency store that every
// statistic in graphstat reads from.
//
// The Graph G = (V,E) is a nested map adjacency[from][to] = weight with
// positive integer weights. It is assembled once by a Builder and then frozen:
// after Build() there is no mutating method, so any number of goroutines may
// read a Graph concurrently without locks.
//
// Node semantics:
//
//   - Nodes are the keys of the adjacency. A node that only ever appears as
//     somebody's neighbor is NOT a key: HasNode reports false, Degree is 0 and
//     it is skipped by Nodes() and Range(). Callers treat this as "no outgoing
//     adjacency", never as "node does not exist".
//   - AddNode registers a key with an empty neighbor map (degree 0).
//
// Builder options (Option):
//
//	– WithDuplicatePolicy(p)
//	    DuplicateIgnore (default): a repeated (from,to) record is dropped, the
//	    first occurrence wins with weight 1.
//	    DuplicateAccumulate: weights of repeated records are summed.
//
//	– WithUndirected()
//	    Every AddEdge(a,b) also records b→a.
//
//	– WithoutLoops()
//	    Records with from == to are dropped.
//
// Time-bucketed graphs:
//
//	TemporalBuilder turns simplices (groups of co-occurring members recorded at
//	one time) into one weighted Graph per time bucket. Every unordered pair
//	{a,b} of a simplex adds 1 to the weight of min(a,b)→max(a,b).
//
// Read API (all O(1) unless noted):
//
//	NodeCount() int
//	EdgeCount() int
//	Nodes() []NodeID                 // O(V) sorted copy
//	HasNode(v) bool
//	HasEdge(from,to) bool
//	Weight(from,to) (int64, bool)
//	Degree(v) int
//	WeightedDegree(v) int64          // O(deg v)
//	NeighborIDs(v) []NodeID          // O(d·log d) sorted copy
//	Neighbors(v) Neighborhood        // read-only view
//	Range(fn)                        // O(V) sorted node order
//	MaxWeight() int64
//	HeaviestEdge() (Edge, bool)      // O(E)
//	Stats() *GraphStats              // O(V+E)
//
// Views (input never mutated):
//
//	Symmetrize(g)  – union of g and its reverse
//	Aggregate(tg)  – sum of all time buckets into one Graph
//
// Errors:
//
//	ErrNilGraph       – nil *Graph passed to an operation
//	ErrEmptyGraph     – an average over zero nodes was requested
//	ErrBadWeight      – non-positive edge weight
//	ErrBuilderSealed  – Builder used after Build()
package core
