package degree

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/histogram"
	"github.com/katalvlaran/graphstat/parallel"
)

const (
	methodAverage         = "degree.Average"
	methodAverageWeighted = "degree.AverageWeighted"
)

// Average returns the mean out-degree over all nodes of g.
// Returns core.ErrNilGraph or core.ErrEmptyGraph.
func Average(g *core.Graph) (float64, error) {
	if err := checkNonEmpty(methodAverage, g); err != nil {
		return 0, err
	}

	return float64(g.EdgeCount()) / float64(g.NodeCount()), nil
}

// Max returns the largest out-degree in g, 0 for an empty graph.
func Max(g *core.Graph) (int, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	best := 0
	g.Range(func(_ core.NodeID, nbrs core.Neighborhood) bool {
		if nbrs.Len() > best {
			best = nbrs.Len()
		}
		return true
	})

	return best, nil
}

// Distribution returns degree → number of nodes with that degree.
func Distribution(g *core.Graph) (histogram.Counts, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return countDegrees(g, g.Nodes()), nil
}

// AverageWeighted returns the mean weighted out-degree over all nodes of g.
// Returns core.ErrNilGraph or core.ErrEmptyGraph.
func AverageWeighted(g *core.Graph) (float64, error) {
	if err := checkNonEmpty(methodAverageWeighted, g); err != nil {
		return 0, err
	}

	return float64(sumWeighted(g, g.Nodes())) / float64(g.NodeCount()), nil
}

// AverageParallel is the partitioned twin of Average. The per-partition
// degree sums are integers, so the result equals Average exactly.
func AverageParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (float64, error) {
	if err := checkNonEmpty(methodAverage, g); err != nil {
		return 0, err
	}
	sum, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (int, error) { return sumDegrees(g, part), nil },
		parallel.Sum[int], 0, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAverage, err)
	}

	return float64(sum) / float64(g.NodeCount()), nil
}

// MaxParallel is the partitioned twin of Max.
func MaxParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (int, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}

	return parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (int, error) {
			best := 0
			for _, v := range part {
				if d := g.Degree(v); d > best {
					best = d
				}
			}
			return best, nil
		},
		parallel.Max[int], 0, opts...)
}

// DistributionParallel is the partitioned twin of Distribution: every
// partition builds a private histogram and the histograms are unioned once.
func DistributionParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (histogram.Counts, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	hist, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (histogram.Counts, error) {
			return countDegrees(g, part), nil
		},
		parallel.MergeCounts, histogram.Counts{}, opts...)
	if err != nil {
		return nil, err
	}

	return hist, nil
}

// AverageWeightedParallel is the partitioned twin of AverageWeighted.
func AverageWeightedParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (float64, error) {
	if err := checkNonEmpty(methodAverageWeighted, g); err != nil {
		return 0, err
	}
	sum, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (int64, error) { return sumWeighted(g, part), nil },
		parallel.Sum[int64], 0, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAverageWeighted, err)
	}

	return float64(sum) / float64(g.NodeCount()), nil
}

func sumDegrees(g *core.Graph, nodes []core.NodeID) int {
	s := 0
	for _, v := range nodes {
		s += g.Degree(v)
	}

	return s
}

func sumWeighted(g *core.Graph, nodes []core.NodeID) int64 {
	var s int64
	for _, v := range nodes {
		s += g.WeightedDegree(v)
	}

	return s
}

func countDegrees(g *core.Graph, nodes []core.NodeID) histogram.Counts {
	hist := make(histogram.Counts)
	for _, v := range nodes {
		hist.Add(g.Degree(v), 1)
	}

	return hist
}

func checkNonEmpty(method string, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return fmt.Errorf("%s: %w", method, core.ErrEmptyGraph)
	}

	return nil
}
