package clustering_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/graphstat/builder"
	"github.com/katalvlaran/graphstat/clustering"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/histogram"
	"github.com/katalvlaran/graphstat/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// relTol bounds the drift between sequential and partitioned float sums.
const relTol = 1e-9

func mustGraph(t testing.TB, adj map[core.NodeID]map[core.NodeID]int64) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)

	return g
}

func mustBuild(t testing.TB, gopts []core.Option, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	require.NoError(t, err)

	return g
}

func assertClose(t *testing.T, want, got float64, msg string) {
	t.Helper()
	assert.True(t, scalar.EqualWithinRel(want, got, relTol) || scalar.EqualWithinAbs(want, got, relTol),
		"%s: want %v, got %v", msg, want, got)
}

// TestLocal_Triangle: every node is fully clustered.
func TestLocal_Triangle(t *testing.T) {
	g := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{
		1: {2: 1, 3: 1},
		2: {1: 1, 3: 1},
		3: {1: 1, 2: 1},
	})
	for _, v := range g.Nodes() {
		assert.InDelta(t, 1.0, clustering.Local(g, v), 0, "node %d", v)
	}
	avg, err := clustering.Average(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, avg, 0)

	byDeg, err := clustering.ByDegree(g)
	require.NoError(t, err)
	assert.Equal(t, histogram.Means{2: 1.0}, byDeg)
}

// TestLocal_EdgeCases covers k < 2, absent nodes and pair orientation.
func TestLocal_EdgeCases(t *testing.T) {
	single := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{1: {2: 1}, 2: {}})
	assert.Zero(t, clustering.Local(single, 1), "one neighbor")
	assert.Zero(t, clustering.Local(single, 2), "no neighbors")
	assert.Zero(t, clustering.Local(single, 99), "absent")

	// Pair (2,3) of node 1 is closed only by 2→3; 3→2 does not count.
	oriented := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{
		1: {2: 1, 3: 1},
		2: {},
		3: {2: 1},
	})
	assert.Zero(t, clustering.Local(oriented, 1))

	forward := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{
		1: {2: 1, 3: 1},
		2: {3: 1},
	})
	assert.InDelta(t, 1.0, clustering.Local(forward, 1), 0)

	// Neighbor 3 has no entry, so it never closes a pair.
	dangling := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{
		1: {3: 1, 4: 1, 5: 1},
		4: {5: 1},
	})
	assert.InDelta(t, 1.0/3.0, clustering.Local(dangling, 1), 1e-12)
}

// TestByDegree_Wheel buckets hub and rim separately.
func TestByDegree_Wheel(t *testing.T) {
	g := mustBuild(t, []core.Option{core.WithUndirected()}, nil, builder.Wheel(5))

	byDeg, err := clustering.ByDegree(g)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, byDeg.Keys())
	assert.InDelta(t, 2.0/3.0, byDeg[3], 1e-12)
	assert.InDelta(t, 2.0/3.0, byDeg[4], 1e-12)

	star := mustBuild(t, []core.Option{core.WithUndirected()}, nil, builder.Star(5))
	byDeg, err = clustering.ByDegree(star)
	require.NoError(t, err)
	assert.Equal(t, histogram.Means{1: 0, 4: 0}, byDeg)
}

// TestWeighted_HandComputed pins the weighted formula on a weighted triangle.
func TestWeighted_HandComputed(t *testing.T) {
	g := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{
		1: {2: 2, 3: 1},
		2: {1: 2, 3: 1},
		3: {1: 1, 2: 1},
	})
	require.Equal(t, int64(2), g.MaxWeight())

	assert.InDelta(t, 0.75, clustering.LocalWeighted(g, 1, g.MaxWeight()), 1e-12)
	assert.InDelta(t, 0.75, clustering.LocalWeighted(g, 2, g.MaxWeight()), 1e-12)
	assert.InDelta(t, 0.5, clustering.LocalWeighted(g, 3, g.MaxWeight()), 1e-12)

	wc, err := clustering.Weighted(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, wc, 1e-12)

	// Unit weights reduce to full clustering.
	unit := mustBuild(t, []core.Option{core.WithUndirected()}, nil, builder.Complete(4))
	wc, err = clustering.Weighted(unit)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, wc, 1e-12)
}

// TestTemporal_Summary pins per-year metrics on hand-built simplices.
func TestTemporal_Summary(t *testing.T) {
	tb := core.NewTemporalBuilder()
	require.NoError(t, tb.AddSimplex(2011, []core.NodeID{5, 4}))
	require.NoError(t, tb.AddSimplex(2010, []core.NodeID{1, 2, 3}))
	require.NoError(t, tb.AddSimplex(2010, []core.NodeID{2, 1}))
	tg, err := tb.Build()
	require.NoError(t, err)

	got, err := clustering.Temporal(tg)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// 2010: 1:{2:2,3:1}, 2:{3:1}.
	assert.Equal(t, 2010, got[0].Time)
	assert.Equal(t, 2, got[0].Nodes)
	assert.InDelta(t, 1.5, got[0].AverageDegree, 1e-12)
	assert.InDelta(t, 2.0, got[0].AverageWeightedDegree, 1e-12)
	assert.InDelta(t, 3.0/16.0, got[0].WeightedClustering, 1e-12)

	// 2011: 4:{5:1}.
	assert.Equal(t, clustering.YearSummary{
		Time: 2011, Nodes: 1, AverageDegree: 1, AverageWeightedDegree: 1, WeightedClustering: 0,
	}, got[1])

	par, err := clustering.TemporalParallel(context.Background(), tg, parallel.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, par, 2)
	for i := range got {
		assert.Equal(t, got[i].Time, par[i].Time)
		assertClose(t, got[i].WeightedClustering, par[i].WeightedClustering, "weighted clustering")
	}
}

// TestParallelMatchesSequential runs every reduction on seeded random graphs.
func TestParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	for _, seed := range []int64{4, 8, 15} {
		g := mustBuild(t, nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 7)},
			builder.RandomSparse(200, 0.05))

		for _, workers := range []int{1, 4} {
			opts := []parallel.Option{parallel.WithWorkers(workers)}

			coeffs, err := clustering.Coefficients(g)
			require.NoError(t, err)
			pcoeffs, err := clustering.CoefficientsParallel(ctx, g, opts...)
			require.NoError(t, err)
			assert.Equal(t, coeffs, pcoeffs)

			avg, err := clustering.Average(g)
			require.NoError(t, err)
			pavg, err := clustering.AverageParallel(ctx, g, opts...)
			require.NoError(t, err)
			assertClose(t, avg, pavg, "average")

			byDeg, err := clustering.ByDegree(g)
			require.NoError(t, err)
			pbyDeg, err := clustering.ByDegreeParallel(ctx, g, opts...)
			require.NoError(t, err)
			require.Equal(t, byDeg.Keys(), pbyDeg.Keys())
			for _, k := range byDeg.Keys() {
				assertClose(t, byDeg[k], pbyDeg[k], "by degree")
			}

			wc, err := clustering.Weighted(g)
			require.NoError(t, err)
			pwc, err := clustering.WeightedParallel(ctx, g, opts...)
			require.NoError(t, err)
			assertClose(t, wc, pwc, "weighted")
		}
	}
}

// TestTemporal_RandomSimplices compares both paths on a generated corpus.
func TestTemporal_RandomSimplices(t *testing.T) {
	tg, err := builder.RandomSimplices(builder.SimplexSpec{
		Nodes: 80, FirstYear: 1990, Years: 5, PerYear: 40, MaxMembers: 5,
	}, builder.WithSeed(99))
	require.NoError(t, err)

	seq, err := clustering.Temporal(tg)
	require.NoError(t, err)
	par, err := clustering.TemporalParallel(context.Background(), tg, parallel.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Time, par[i].Time)
		assert.Equal(t, seq[i].Nodes, par[i].Nodes)
		assertClose(t, seq[i].AverageDegree, par[i].AverageDegree, "avg degree")
		assertClose(t, seq[i].AverageWeightedDegree, par[i].AverageWeightedDegree, "avg weighted degree")
		assertClose(t, seq[i].WeightedClustering, par[i].WeightedClustering, "weighted clustering")
		assert.GreaterOrEqual(t, seq[i].WeightedClustering, 0.0)
		assert.LessOrEqual(t, seq[i].WeightedClustering, 1.0)
	}
}

// TestErrors covers nil and empty inputs.
func TestErrors(t *testing.T) {
	ctx := context.Background()
	empty := mustGraph(t, nil)

	_, err := clustering.Average(empty)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = clustering.AverageParallel(ctx, empty)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = clustering.ByDegree(empty)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = clustering.ByDegreeParallel(ctx, nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = clustering.Weighted(empty)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = clustering.WeightedParallel(ctx, empty, parallel.WithWorkers(-2))
	assert.ErrorIs(t, err, core.ErrEmptyGraph, "graph checked before options")
	_, err = clustering.Coefficients(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = clustering.Temporal(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	assert.NotPanics(t, func() {
		assert.Zero(t, clustering.Local(nil, 1))
		assert.Zero(t, clustering.LocalWeighted(nil, 1, 1))
	}, "per-node functions treat a nil graph as empty")

	g := mustGraph(t, map[core.NodeID]map[core.NodeID]int64{1: {2: 1}})
	_, err = clustering.WeightedParallel(ctx, g, parallel.WithWorkers(0))
	assert.ErrorIs(t, err, parallel.ErrOptionViolation)
}
