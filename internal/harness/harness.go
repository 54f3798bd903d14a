// SPDX-License-Identifier: MIT
// Package harness runs graphstat metrics under one scoped timer and checks
// that the sequential and parallel computations agree.
//
// Engine packages never log or time themselves; every invocation goes
// through Timed, which logs the metric name, its duration and its error with
// go.uber.org/zap.
package harness

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/katalvlaran/graphstat/histogram"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the relative tolerance for comparing float results of the
// sequential and parallel paths.
const Tolerance = 1e-9

// ErrDisagreement indicates a parallel result that differs from its
// sequential twin.
var ErrDisagreement = errors.New("harness: sequential and parallel results disagree")

// Timed runs fn and logs name with the elapsed time. The error of fn is
// returned unchanged.
func Timed(logger *zap.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("metric failed", zap.String("metric", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		return err
	}
	logger.Info("metric done", zap.String("metric", name), zap.Duration("elapsed", elapsed))

	return nil
}

// Metric pairs the sequential and parallel computation of one statistic.
type Metric[T any] struct {
	Name       string
	Sequential func() (T, error)
	Parallel   func(ctx context.Context) (T, error)
}

// Battery is the fixed set of metrics of one run, grouped by result type.
// Scalars and Means agree within Tolerance; Ints and Counts must be equal.
type Battery struct {
	Scalars []Metric[float64]
	Ints    []Metric[int64]
	Counts  []Metric[histogram.Counts]
	Means   []Metric[histogram.Means]
}

// Report holds the sequential result of every metric, keyed by name, and
// the names in execution order.
type Report struct {
	Order   []string
	Scalars map[string]float64
	Ints    map[string]int64
	Counts  map[string]histogram.Counts
	Means   map[string]histogram.Means
}

// Run executes every metric of b sequentially, then in parallel, and
// compares the two. A failing metric stops the run; disagreements are all
// collected and returned joined with ErrDisagreement after the run.
func (b Battery) Run(ctx context.Context, logger *zap.Logger) (*Report, error) {
	rep := &Report{
		Scalars: make(map[string]float64, len(b.Scalars)),
		Ints:    make(map[string]int64, len(b.Ints)),
		Counts:  make(map[string]histogram.Counts, len(b.Counts)),
		Means:   make(map[string]histogram.Means, len(b.Means)),
	}
	var mismatches []error
	collect := func(name string, err error) error {
		if errors.Is(err, ErrDisagreement) {
			mismatches = append(mismatches, err)
			err = nil
		}
		rep.Order = append(rep.Order, name)
		return err
	}

	for _, m := range b.Scalars {
		v, err := runMetric(ctx, logger, m, AgreeScalar)
		if err = collect(m.Name, err); err != nil {
			return rep, err
		}
		rep.Scalars[m.Name] = v
		logger.Info("scalar", zap.String("metric", m.Name), zap.Float64("value", v))
	}
	for _, m := range b.Ints {
		v, err := runMetric(ctx, logger, m, AgreeInt)
		if err = collect(m.Name, err); err != nil {
			return rep, err
		}
		rep.Ints[m.Name] = v
		logger.Info("scalar", zap.String("metric", m.Name), zap.Int64("value", v))
	}
	for _, m := range b.Counts {
		v, err := runMetric(ctx, logger, m, AgreeCounts)
		if err = collect(m.Name, err); err != nil {
			return rep, err
		}
		rep.Counts[m.Name] = v
		logger.Info("distribution", zap.String("metric", m.Name), zap.Int("buckets", len(v)), zap.Int64("total", v.Total()))
	}
	for _, m := range b.Means {
		v, err := runMetric(ctx, logger, m, AgreeMeans)
		if err = collect(m.Name, err); err != nil {
			return rep, err
		}
		rep.Means[m.Name] = v
		logger.Info("distribution", zap.String("metric", m.Name), zap.Int("buckets", len(v)))
	}

	return rep, errors.Join(mismatches...)
}

// runMetric times both paths of m and compares them with agree. On a
// mismatch the sequential value is still returned.
func runMetric[T any](ctx context.Context, logger *zap.Logger, m Metric[T], agree func(a, b T) bool) (T, error) {
	var seq, par T
	err := Timed(logger, m.Name+"/sequential", func() (err error) {
		seq, err = m.Sequential()
		return err
	})
	if err != nil {
		return seq, fmt.Errorf("%s: %w", m.Name, err)
	}
	err = Timed(logger, m.Name+"/parallel", func() (err error) {
		par, err = m.Parallel(ctx)
		return err
	})
	if err != nil {
		return seq, fmt.Errorf("%s: %w", m.Name, err)
	}
	if !agree(seq, par) {
		logger.Warn("parallel result differs", zap.String("metric", m.Name))
		return seq, fmt.Errorf("%s: %w", m.Name, ErrDisagreement)
	}

	return seq, nil
}

// AgreeScalar compares two floats within Tolerance.
func AgreeScalar(a, b float64) bool {
	return a == b || scalar.EqualWithinRel(a, b, Tolerance)
}

// AgreeInt requires identical integers.
func AgreeInt(a, b int64) bool {
	return a == b
}

// AgreeCounts requires identical histograms.
func AgreeCounts(a, b histogram.Counts) bool {
	return maps.Equal(a, b)
}

// AgreeMeans requires identical keys and values within Tolerance.
func AgreeMeans(a, b histogram.Means) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !AgreeScalar(v, w) {
			return false
		}
	}

	return true
}
