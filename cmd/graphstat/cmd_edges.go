// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphstat/clustering"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/degree"
	"github.com/katalvlaran/graphstat/edgelist"
	"github.com/katalvlaran/graphstat/histogram"
	"github.com/katalvlaran/graphstat/internal/harness"
	"github.com/katalvlaran/graphstat/neighbors"
	"github.com/katalvlaran/graphstat/parallel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Metric names, also used as keys of the harness report.
const (
	metricAvgDegree       = "average degree"
	metricMaxDegree       = "max degree"
	metricAvgWalks        = "average closed walks"
	metricMaxWalks        = "max closed walks"
	metricAvgClustering   = "average clustering"
	metricDegreeDist      = "degree distribution"
	metricWalkDist        = "closed walk distribution"
	metricClusteringByDeg = "clustering by degree"
)

var (
	edgesInput         string
	edgesUndirected    bool
	edgesDuplicates    string
	edgesDegreeOut     string
	edgesClusteringOut string
)

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "Statistics of an unweighted edge list",
	Long: `Load an edge list and report degree, closed-walk and clustering statistics.

Repeated (from,to) records are ignored by default; --duplicates accumulate
turns them into weights instead.

Examples:
  graphstat edges --input com-youtube.ungraph.txt
  graphstat edges --input g.txt --undirected --degree-out deg.txt --clustering-out cc.txt`,
	RunE: runEdges,
}

func init() {
	f := edgesCmd.Flags()
	f.StringVarP(&edgesInput, "input", "i", "", "edge list file")
	f.BoolVar(&edgesUndirected, "undirected", false, "mirror every record")
	f.StringVar(&edgesDuplicates, "duplicates", "ignore", "duplicate policy: ignore|accumulate")
	f.StringVar(&edgesDegreeOut, "degree-out", "", "write the degree distribution here")
	f.StringVar(&edgesClusteringOut, "clustering-out", "", "write clustering by degree here")
}

func runEdges(cmd *cobra.Command, _ []string) error {
	ec := runCfg.Edges
	overrideString(cmd, "input", &ec.Input, edgesInput)
	overrideString(cmd, "duplicates", &ec.Duplicates, edgesDuplicates)
	overrideString(cmd, "degree-out", &ec.DegreeOut, edgesDegreeOut)
	overrideString(cmd, "clustering-out", &ec.ClusteringOut, edgesClusteringOut)
	if cmd.Flags().Changed("undirected") {
		ec.Undirected = edgesUndirected
	}
	if err := ec.Check(); err != nil {
		return err
	}

	policy, ok := core.ParseDuplicatePolicy(ec.Duplicates)
	if !ok {
		return fmt.Errorf("unknown duplicate policy %q", ec.Duplicates)
	}
	gopts := []core.Option{core.WithDuplicatePolicy(policy)}
	if ec.Undirected {
		gopts = append(gopts, core.WithUndirected())
	}

	var g *core.Graph
	err := harness.Timed(logger, "load", func() (err error) {
		g, err = edgelist.LoadEdges(ec.Input, gopts...)
		return err
	})
	if err != nil {
		return err
	}
	logStats(g)

	rep, err := edgesBattery(g, poolOptions()).Run(cmd.Context(), logger)
	if err != nil {
		return err
	}

	if ec.DegreeOut != "" {
		if err = histogram.SaveCounts(ec.DegreeOut, rep.Counts[metricDegreeDist]); err != nil {
			return err
		}
		logger.Info("written", zap.String("metric", metricDegreeDist), zap.String("path", ec.DegreeOut))
	}
	if ec.ClusteringOut != "" {
		if err = histogram.SaveMeans(ec.ClusteringOut, rep.Means[metricClusteringByDeg]); err != nil {
			return err
		}
		logger.Info("written", zap.String("metric", metricClusteringByDeg), zap.String("path", ec.ClusteringOut))
	}

	return nil
}

// edgesBattery wires every unweighted statistic with its parallel twin.
func edgesBattery(g *core.Graph, opts []parallel.Option) harness.Battery {
	return harness.Battery{
		Scalars: []harness.Metric[float64]{
			{
				Name:       metricAvgDegree,
				Sequential: func() (float64, error) { return degree.Average(g) },
				Parallel:   func(ctx context.Context) (float64, error) { return degree.AverageParallel(ctx, g, opts...) },
			},
			{
				Name:       metricAvgWalks,
				Sequential: func() (float64, error) { return neighbors.Average(g) },
				Parallel:   func(ctx context.Context) (float64, error) { return neighbors.AverageParallel(ctx, g, opts...) },
			},
			{
				Name:       metricAvgClustering,
				Sequential: func() (float64, error) { return clustering.Average(g) },
				Parallel:   func(ctx context.Context) (float64, error) { return clustering.AverageParallel(ctx, g, opts...) },
			},
		},
		Ints: []harness.Metric[int64]{
			{
				Name: metricMaxDegree,
				Sequential: func() (int64, error) {
					v, err := degree.Max(g)
					return int64(v), err
				},
				Parallel: func(ctx context.Context) (int64, error) {
					v, err := degree.MaxParallel(ctx, g, opts...)
					return int64(v), err
				},
			},
			{
				Name:       metricMaxWalks,
				Sequential: func() (int64, error) { return neighbors.Max(g) },
				Parallel:   func(ctx context.Context) (int64, error) { return neighbors.MaxParallel(ctx, g, opts...) },
			},
		},
		Counts: []harness.Metric[histogram.Counts]{
			{
				Name:       metricDegreeDist,
				Sequential: func() (histogram.Counts, error) { return degree.Distribution(g) },
				Parallel: func(ctx context.Context) (histogram.Counts, error) {
					return degree.DistributionParallel(ctx, g, opts...)
				},
			},
			{
				Name:       metricWalkDist,
				Sequential: func() (histogram.Counts, error) { return neighbors.Distribution(g) },
				Parallel: func(ctx context.Context) (histogram.Counts, error) {
					return neighbors.DistributionParallel(ctx, g, opts...)
				},
			},
		},
		Means: []harness.Metric[histogram.Means]{
			{
				Name:       metricClusteringByDeg,
				Sequential: func() (histogram.Means, error) { return clustering.ByDegree(g) },
				Parallel: func(ctx context.Context) (histogram.Means, error) {
					return clustering.ByDegreeParallel(ctx, g, opts...)
				},
			},
		},
	}
}

func logStats(g *core.Graph) {
	s := g.Stats()
	logger.Info("graph loaded",
		zap.Int("nodes", s.NodeCount),
		zap.Int("entries", s.EdgeCount),
		zap.Int("self_loops", s.SelfLoops),
		zap.Int("dangling_targets", s.DanglingTargets),
		zap.Int64("max_weight", s.MaxWeight),
		zap.Bool("symmetric", s.Symmetric),
	)
}

// overrideString copies a flag value over the config when the flag was set.
func overrideString(cmd *cobra.Command, flag string, dst *string, val string) {
	if cmd.Flags().Changed(flag) {
		*dst = val
	}
}
