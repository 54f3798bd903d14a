package clustering

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/histogram"
	"github.com/katalvlaran/graphstat/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	methodAverage  = "clustering.Average"
	methodByDegree = "clustering.ByDegree"
)

// Local returns the local clustering coefficient of v in [0, 1].
// A nil graph yields 0.
func Local(g *core.Graph, v core.NodeID) float64 {
	if g == nil {
		return 0
	}
	nbrs := g.NeighborIDs(v)
	k := len(nbrs)
	if k < 2 {
		return 0
	}
	closed := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				closed++
			}
		}
	}

	return float64(closed) / float64(k*(k-1)/2)
}

// Coefficients returns the local coefficient of every node of g.
func Coefficients(g *core.Graph) (map[core.NodeID]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return localMap(g, g.Nodes()), nil
}

// CoefficientsParallel is the partitioned twin of Coefficients. Partitions
// are disjoint, so the merged map equals the sequential one exactly.
func CoefficientsParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (map[core.NodeID]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (map[core.NodeID]float64, error) {
			return localMap(g, part), nil
		},
		func(acc, part map[core.NodeID]float64) map[core.NodeID]float64 {
			for v, c := range part {
				acc[v] = c
			}
			return acc
		},
		make(map[core.NodeID]float64, g.NodeCount()), opts...)
}

// Average returns the mean local coefficient over all nodes of g.
func Average(g *core.Graph) (float64, error) {
	if err := checkNonEmpty(methodAverage, g); err != nil {
		return 0, err
	}

	return stat.Mean(localSlice(g, g.Nodes()), nil), nil
}

// AverageParallel is the partitioned twin of Average.
func AverageParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (float64, error) {
	if err := checkNonEmpty(methodAverage, g); err != nil {
		return 0, err
	}
	sum, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (float64, error) {
			return floats.Sum(localSlice(g, part)), nil
		},
		parallel.Sum[float64], 0, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAverage, err)
	}

	return sum / float64(g.NodeCount()), nil
}

// ByDegree groups nodes by degree and returns degree → mean local coefficient.
func ByDegree(g *core.Graph) (histogram.Means, error) {
	if err := checkNonEmpty(methodByDegree, g); err != nil {
		return nil, err
	}
	buckets := make(map[int][]float64)
	for _, v := range g.Nodes() {
		k := g.Degree(v)
		buckets[k] = append(buckets[k], Local(g, v))
	}
	out := make(histogram.Means, len(buckets))
	for k, xs := range buckets {
		out[k] = stat.Mean(xs, nil)
	}

	return out, nil
}

// bucketSum is the (coefficient sum, node count) partial of one degree bucket.
type bucketSum = parallel.Pair[float64, int64]

// ByDegreeParallel is the partitioned twin of ByDegree: partitions reduce
// into per-degree (sum, count) pairs that are merged once and divided.
func ByDegreeParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (histogram.Means, error) {
	if err := checkNonEmpty(methodByDegree, g); err != nil {
		return nil, err
	}
	sums, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (map[int]bucketSum, error) {
			local := make(map[int]bucketSum)
			for _, v := range part {
				k := g.Degree(v)
				local[k] = parallel.SumPair(local[k], bucketSum{First: Local(g, v), Second: 1})
			}
			return local, nil
		},
		func(acc, part map[int]bucketSum) map[int]bucketSum {
			for k, p := range part {
				acc[k] = parallel.SumPair(acc[k], p)
			}
			return acc
		},
		make(map[int]bucketSum), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodByDegree, err)
	}
	out := make(histogram.Means, len(sums))
	for k, p := range sums {
		out[k] = p.First / float64(p.Second)
	}

	return out, nil
}

func localMap(g *core.Graph, nodes []core.NodeID) map[core.NodeID]float64 {
	out := make(map[core.NodeID]float64, len(nodes))
	for _, v := range nodes {
		out[v] = Local(g, v)
	}

	return out
}

func localSlice(g *core.Graph, nodes []core.NodeID) []float64 {
	out := make([]float64, len(nodes))
	for i, v := range nodes {
		out[i] = Local(g, v)
	}

	return out
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
