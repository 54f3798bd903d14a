// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/graphstat/clustering"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/edgelist"
	"github.com/katalvlaran/graphstat/internal/harness"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	coauthNVerts    string
	coauthSimplices string
	coauthTimes     string
	coauthYear      int
)

var coauthCmd = &cobra.Command{
	Use:   "coauth",
	Short: "Per-year statistics of a time-stamped co-authorship hypergraph",
	Long: `Load three aligned streams (simplex sizes, flattened members, times), build
one weighted co-occurrence graph per year and report average degree, average
weighted degree and weighted clustering for each year, plus the strongest
pair over all years.

Examples:
  graphstat coauth --nverts coauth-DBLP-nverts.txt --simplices coauth-DBLP-simplices.txt \
    --times coauth-DBLP-times.txt --year 2010`,
	RunE: runCoauth,
}

func init() {
	f := coauthCmd.Flags()
	f.StringVar(&coauthNVerts, "nverts", "", "simplex sizes, one per line")
	f.StringVar(&coauthSimplices, "simplices", "", "flattened simplex members, one per line")
	f.StringVar(&coauthTimes, "times", "", "simplex times, one per line")
	f.IntVar(&coauthYear, "year", 0, "report only this year (default: every year)")
}

func runCoauth(cmd *cobra.Command, _ []string) error {
	cc := runCfg.Coauth
	overrideString(cmd, "nverts", &cc.NVerts, coauthNVerts)
	overrideString(cmd, "simplices", &cc.Simplices, coauthSimplices)
	overrideString(cmd, "times", &cc.Times, coauthTimes)
	if cmd.Flags().Changed("year") {
		year := coauthYear
		cc.Year = &year
	}
	if err := cc.Check(); err != nil {
		return err
	}

	var tg *core.TemporalGraph
	err := harness.Timed(logger, "load", func() (err error) {
		tg, err = edgelist.LoadSimplices(cc.NVerts, cc.Simplices, cc.Times)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("simplices loaded", zap.Int("years", tg.Len()))
	if cc.Year != nil {
		if _, ok := tg.Bucket(*cc.Year); !ok {
			return fmt.Errorf("no records for year %d", *cc.Year)
		}
	}

	var seq, par []clustering.YearSummary
	if err = harness.Timed(logger, "temporal/sequential", func() (err error) {
		seq, err = clustering.Temporal(tg)
		return err
	}); err != nil {
		return err
	}
	if err = harness.Timed(logger, "temporal/parallel", func() (err error) {
		par, err = clustering.TemporalParallel(cmd.Context(), tg, poolOptions()...)
		return err
	}); err != nil {
		return err
	}
	for i, y := range seq {
		if !summariesAgree(y, par[i]) {
			logger.Warn("parallel result differs", zap.Int("year", y.Time))
			return fmt.Errorf("year %d: %w", y.Time, harness.ErrDisagreement)
		}
		if !cc.Selects(y.Time) {
			continue
		}
		logger.Info("year",
			zap.Int("year", y.Time),
			zap.Int("nodes", y.Nodes),
			zap.Float64("avg_degree", y.AverageDegree),
			zap.Float64("avg_weighted_degree", y.AverageWeightedDegree),
			zap.Float64("weighted_clustering", y.WeightedClustering),
		)
	}

	return strongestPair(tg)
}

// strongestPair aggregates every year and logs the heaviest pair together
// with its weight per aggregated node.
func strongestPair(tg *core.TemporalGraph) error {
	var agg *core.Graph
	err := harness.Timed(logger, "aggregate", func() (err error) {
		agg, err = core.Aggregate(tg)
		return err
	})
	if err != nil {
		return err
	}
	e, ok := agg.HeaviestEdge()
	if !ok {
		logger.Info("no co-occurring pairs")
		return nil
	}
	logger.Info("strongest pair",
		zap.Uint64("author1", uint64(e.From)),
		zap.Uint64("author2", uint64(e.To)),
		zap.Int64("weight", e.Weight),
		zap.Float64("weight_per_node", float64(e.Weight)/float64(agg.NodeCount())),
	)

	return nil
}

func summariesAgree(a, b clustering.YearSummary) bool {
	return a.Time == b.Time && a.Nodes == b.Nodes &&
		harness.AgreeScalar(a.AverageDegree, b.AverageDegree) &&
		harness.AgreeScalar(a.AverageWeightedDegree, b.AverageWeightedDegree) &&
		harness.AgreeScalar(a.WeightedClustering, b.WeightedClustering)
}
