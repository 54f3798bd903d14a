package clustering_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/clustering"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/parallel"
)

func benchGraph(b *testing.B) *core.Graph {
	return mustBuild(b, []core.Option{core.WithUndirected()},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 5)},
		builder.RandomSparse(2000, 0.005))
}

func BenchmarkByDegree(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clustering.ByDegree(g)
	}
}

func BenchmarkByDegreeParallel(b *testing.B) {
	g := benchGraph(b)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clustering.ByDegreeParallel(ctx, g, parallel.WithWorkers(4))
	}
}

func BenchmarkWeightedParallel(b *testing.B) {
	g := benchGraph(b)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clustering.WeightedParallel(ctx, g, parallel.WithWorkers(4))
	}
}
