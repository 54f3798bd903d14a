package clustering

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const methodWeighted = "clustering.Weighted"

// LocalWeighted returns the weighted coefficient of v normalised by wMax.
// Nodes with at most one neighbor, and a nil graph, yield 0.
func LocalWeighted(g *core.Graph, v core.NodeID, wMax int64) float64 {
	if g == nil {
		return 0
	}
	nv := g.Neighbors(v)
	k := int64(nv.Len())
	if k <= 1 {
		return 0
	}
	var sum int64
	nv.Range(func(n1 core.NodeID, w1 int64) bool {
		g.Neighbors(n1).Range(func(n2 core.NodeID, _ int64) bool {
			if n2 == n1 {
				return true
			}
			if w2, ok := nv.Weight(n2); ok {
				sum += w1 + w2
			}
			return true
		})
		return true
	})

	return float64(sum) / float64(2*k*(k-1)*wMax)
}

// Weighted returns the mean weighted coefficient over all nodes of g, with
// w_max = g.MaxWeight().
func Weighted(g *core.Graph) (float64, error) {
	if err := checkNonEmpty(methodWeighted, g); err != nil {
		return 0, err
	}

	return stat.Mean(weightedSlice(g, g.Nodes()), nil), nil
}

// WeightedParallel is the partitioned twin of Weighted.
func WeightedParallel(ctx context.Context, g *core.Graph, opts ...parallel.Option) (float64, error) {
	if err := checkNonEmpty(methodWeighted, g); err != nil {
		return 0, err
	}
	sum, err := parallel.MapReduce(ctx, g,
		func(_ context.Context, part []core.NodeID) (float64, error) {
			return floats.Sum(weightedSlice(g, part)), nil
		},
		parallel.Sum[float64], 0, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodWeighted, err)
	}

	return sum / float64(g.NodeCount()), nil
}

func weightedSlice(g *core.Graph, nodes []core.NodeID) []float64 {
	wMax := g.MaxWeight()
	out := make([]float64, len(nodes))
	for i, v := range nodes {
		out[i] = LocalWeighted(g, v, wMax)
	}

	return out
}
