package clustering

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/degree"
	"github.com/katalvlaran/graphstat/parallel"
)

// YearSummary is the per-bucket report of a temporal co-occurrence graph.
type YearSummary struct {
	Time                  int
	Nodes                 int
	AverageDegree         float64
	AverageWeightedDegree float64
	WeightedClustering    float64
}

// Temporal summarises every bucket of tg in ascending time order.
func Temporal(tg *core.TemporalGraph) ([]YearSummary, error) {
	return summarise(tg, func(g *core.Graph) (float64, float64, float64, error) {
		avg, err := degree.Average(g)
		if err != nil {
			return 0, 0, 0, err
		}
		wavg, err := degree.AverageWeighted(g)
		if err != nil {
			return 0, 0, 0, err
		}
		wc, err := Weighted(g)

		return avg, wavg, wc, err
	})
}

// TemporalParallel is the partitioned twin of Temporal: buckets are visited
// in order and every bucket's metrics run through the parallel layer.
func TemporalParallel(ctx context.Context, tg *core.TemporalGraph, opts ...parallel.Option) ([]YearSummary, error) {
	return summarise(tg, func(g *core.Graph) (float64, float64, float64, error) {
		avg, err := degree.AverageParallel(ctx, g, opts...)
		if err != nil {
			return 0, 0, 0, err
		}
		wavg, err := degree.AverageWeightedParallel(ctx, g, opts...)
		if err != nil {
			return 0, 0, 0, err
		}
		wc, err := WeightedParallel(ctx, g, opts...)

		return avg, wavg, wc, err
	})
}

type bucketMetrics func(g *core.Graph) (avgDegree, avgWeighted, weighted float64, err error)

func summarise(tg *core.TemporalGraph, metrics bucketMetrics) ([]YearSummary, error) {
	if tg == nil {
		return nil, core.ErrNilGraph
	}
	out := make([]YearSummary, 0, tg.Len())
	for _, t := range tg.Times() {
		g, _ := tg.Bucket(t)
		avg, wavg, wc, err := metrics(g)
		if err != nil {
			return nil, fmt.Errorf("clustering.Temporal(%d): %w", t, err)
		}
		out = append(out, YearSummary{
			Time:                  t,
			Nodes:                 g.NodeCount(),
			AverageDegree:         avg,
			AverageWeightedDegree: wavg,
			WeightedClustering:    wc,
		})
	}

	return out, nil
}
