// Package degree computes degree statistics over a core.Graph.
//
// What:
//
//   - Average:          Σ|N(v)| / |V|            (ErrEmptyGraph when |V| = 0)
//   - Max:              max |N(v)|               (0 for an empty graph)
//   - Distribution:     degree → number of nodes
//   - AverageWeighted:  Σ weighted degree / |V|  (ErrEmptyGraph when |V| = 0)
//
// Every statistic has a ...Parallel twin that partitions the nodes through
// package parallel and must agree with the sequential result: exactly for
// Max and Distribution, within floating-point tolerance for the averages
// (the integer sums are exact; only the final division is shared).
//
// Nodes are the keys of the graph. A node that only appears as a neighbor
// contributes nothing and is not counted in |V|.
//
// Complexity:
//
//   - Average, Max, Distribution: Time O(V), Memory O(1) / O(distinct degrees)
//   - AverageWeighted:            Time O(V+E)
package degree
