package harness_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/graphstat/histogram"
	"github.com/katalvlaran/graphstat/internal/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func scalar(name string, seq, par float64) harness.Metric[float64] {
	return harness.Metric[float64]{
		Name:       name,
		Sequential: func() (float64, error) { return seq, nil },
		Parallel:   func(context.Context) (float64, error) { return par, nil },
	}
}

func integer(name string, seq, par int64) harness.Metric[int64] {
	return harness.Metric[int64]{
		Name:       name,
		Sequential: func() (int64, error) { return seq, nil },
		Parallel:   func(context.Context) (int64, error) { return par, nil },
	}
}

func TestTimed(t *testing.T) {
	logger, logs := observed()

	require.NoError(t, harness.Timed(logger, "ok", func() error { return nil }))
	boom := errors.New("boom")
	require.ErrorIs(t, harness.Timed(logger, "bad", func() error { return boom }), boom)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "ok", entries[0].ContextMap()["metric"])
	assert.Contains(t, entries[0].ContextMap(), "elapsed")
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "bad", entries[1].ContextMap()["metric"])
}

func TestBattery_Agreement(t *testing.T) {
	logger, logs := observed()
	b := harness.Battery{
		Scalars: []harness.Metric[float64]{
			scalar("average degree", 2.5, 2.5),
			scalar("average clustering", 0.1+0.2, 0.3),
		},
		Counts: []harness.Metric[histogram.Counts]{{
			Name:       "degree distribution",
			Sequential: func() (histogram.Counts, error) { return histogram.Counts{1: 2, 3: 1}, nil },
			Parallel:   func(context.Context) (histogram.Counts, error) { return histogram.Counts{3: 1, 1: 2}, nil },
		}},
	}

	rep, err := b.Run(context.Background(), logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"average degree", "average clustering", "degree distribution"}, rep.Order)
	assert.InDelta(t, 2.5, rep.Scalars["average degree"], 0)
	assert.Equal(t, histogram.Counts{1: 2, 3: 1}, rep.Counts["degree distribution"])
	assert.Zero(t, logs.FilterMessage("parallel result differs").Len())
	assert.Equal(t, 6, logs.FilterMessage("metric done").Len(), "two timed calls per metric")
}

func TestBattery_Disagreement(t *testing.T) {
	logger, logs := observed()
	b := harness.Battery{
		Scalars: []harness.Metric[float64]{scalar("drift", 1.0, 1.1), scalar("fine", 4, 4)},
		Means: []harness.Metric[histogram.Means]{{
			Name:       "by degree",
			Sequential: func() (histogram.Means, error) { return histogram.Means{2: 0.5}, nil },
			Parallel:   func(context.Context) (histogram.Means, error) { return histogram.Means{3: 0.5}, nil },
		}},
	}

	rep, err := b.Run(context.Background(), logger)
	require.ErrorIs(t, err, harness.ErrDisagreement)
	assert.Contains(t, err.Error(), "drift")
	assert.Contains(t, err.Error(), "by degree")
	assert.InDelta(t, 4.0, rep.Scalars["fine"], 0, "later metrics still run")
	assert.Equal(t, 2, logs.FilterMessage("parallel result differs").Len())
}

// TestBattery_IntegerOffByOne fails on maxima that a relative tolerance
// would accept.
func TestBattery_IntegerOffByOne(t *testing.T) {
	b := harness.Battery{Ints: []harness.Metric[int64]{
		integer("max degree", 17, 17),
		integer("max closed walks", 2_000_000_000, 2_000_000_001),
	}}

	rep, err := b.Run(context.Background(), zap.NewNop())
	require.ErrorIs(t, err, harness.ErrDisagreement)
	assert.Contains(t, err.Error(), "max closed walks")
	assert.NotContains(t, err.Error(), "max degree")
	assert.Equal(t, int64(17), rep.Ints["max degree"])
	assert.Equal(t, int64(2_000_000_000), rep.Ints["max closed walks"])
	assert.Equal(t, []string{"max degree", "max closed walks"}, rep.Order)
}

func TestBattery_Failure(t *testing.T) {
	boom := errors.New("boom")
	b := harness.Battery{Scalars: []harness.Metric[float64]{
		{
			Name:       "broken",
			Sequential: func() (float64, error) { return 0, boom },
			Parallel:   func(context.Context) (float64, error) { return 0, nil },
		},
		scalar("never", 1, 1),
	}}

	rep, err := b.Run(context.Background(), zap.NewNop())
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, rep.Scalars, "never")
}

func TestAgreeHelpers(t *testing.T) {
	assert.True(t, harness.AgreeScalar(1, 1+1e-12))
	assert.False(t, harness.AgreeScalar(1, 1.001))
	assert.True(t, harness.AgreeMeans(histogram.Means{1: 0.3}, histogram.Means{1: 0.1 + 0.2}))
	assert.True(t, harness.AgreeInt(5, 5))
	assert.False(t, harness.AgreeInt(2_000_000_000, 2_000_000_001))
	assert.False(t, harness.AgreeCounts(histogram.Counts{1: 1}, histogram.Counts{1: 2}))
}
