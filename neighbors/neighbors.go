package neighbors

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/histogram"
	"github.com/katalvlaran/graphstat/parallel"
)

const methodAverage = "neighbors.Average"

// ClosedWalks returns the number of walks v→u→w with w ∈ N(v).
// A neighbor u that is not a key contributes nothing; 0 if v is not a key
// or g is nil. Self-loops are ordinary adjacency entries and take part in walks.
func ClosedWalks(g *core.Graph, v core.NodeID) int64 {
	if g == nil {
		return 0
	}
	nv := g.Neighbors(v)
	var count int64
	nv.Range(func(u core.NodeID, _ int64) bool {
		g.Neighbors(u).Range(func(w core.NodeID, _ int64) bool {
			if nv.Has(w) {
				count++
			}
			return true
		})
		return true
	})

	return count
}

// Average returns the mean ClosedWalks over all nodes of g.
func Average(g *core.Graph) (float64, error) {
	if err := checkNonEmpty(g); err != nil {
		return 0, err
	}

	return float64(sumWalks(g, g.Nodes())) / float64(g.NodeCount()), nil
}

// Max returns the largest ClosedWalks value in g, 0 for an empty graph.
func Max(g *core.Graph) (int64, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}

	return maxWalks(g, g.Nodes()), nil
}

// Distribution returns walk count → number of nodes with that count.
func Distribution(g *core.Graph) (histogram.Counts, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return countWalks(g, g.Nodes()), nil
}

// AverageParallel is the partitioned twin of Average.
func AverageParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (float64, error) {
	if err := checkNonEmpty(g); err != nil {
		return 0, err
	}
	sum, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (int64, error) { return sumWalks(g, part), nil },
		parallel.Sum[int64], 0, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAverage, err)
	}

	return float64(sum) / float64(g.NodeCount()), nil
}

// MaxParallel is the partitioned twin of Max.
func MaxParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (int64, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}

	return parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (int64, error) { return maxWalks(g, part), nil },
		parallel.Max[int64], 0, opts...)
}

// DistributionParallel is the partitioned twin of Distribution.
func DistributionParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (histogram.Counts, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (histogram.Counts, error) { return countWalks(g, part), nil },
		parallel.MergeCounts, histogram.Counts{}, opts...)
}

func sumWalks(g *core.Graph, nodes []core.NodeID) int64 {
	var s int64
	for _, v := range nodes {
		s += ClosedWalks(g, v)
	}

	return s
}

func maxWalks(g *core.Graph, nodes []core.NodeID) int64 {
	var best int64
	for _, v := range nodes {
		if c := ClosedWalks(g, v); c > best {
			best = c
		}
	}

	return best
}

// countWalks buckets nodes by walk count. Counts far beyond int range do not
// occur for graphs that fit in memory.
func countWalks(g *core.Graph, nodes []core.NodeID) histogram.Counts {
	hist := make(histogram.Counts)
	for _, v := range nodes {
		hist.Add(int(ClosedWalks(g, v)), 1)
	}

	return hist
}

func checkNonEmpty(g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return fmt.Errorf("%s: %w", methodAverage, core.ErrEmptyGraph)
	}

	return nil
}
