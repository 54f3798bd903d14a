// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/graphstat/internal/config"
	"github.com/katalvlaran/graphstat/parallel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL FLAGS AND STATE
// =============================================================================

var (
	configPath string
	verbose    bool
	workers    int

	// Resolved in PersistentPreRunE.
	logger *zap.Logger
	runCfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "graphstat",
	Short: "Degree, clustering and common-neighbor statistics for sparse graphs",
	Long: `graphstat loads a graph once and computes a fixed battery of statistics,
each both sequentially and on a bounded worker pool, and checks that the two
agree.

Subcommands:
  edges   - unweighted edge list (SNAP style "from to" lines)
  coauth  - time-stamped co-authorship simplices (nverts / simplices / times)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if logger, err = newLogger(verbose); err != nil {
			return err
		}
		runCfg = config.Default()
		if configPath != "" {
			if runCfg, err = config.Load(configPath); err != nil {
				return err
			}
			logger.Debug("config loaded", zap.String("path", configPath))
		}
		if cmd.Flags().Changed("workers") {
			runCfg.Workers = workers
		}

		return runCfg.Validate()
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML run file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging at debug level")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")

	rootCmd.AddCommand(edgesCmd, coauthCmd)
}

// newLogger returns a development logger when verbose is set, production
// otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// poolOptions translates the configured worker count for package parallel.
func poolOptions() []parallel.Option {
	if runCfg.Workers == 0 {
		return nil
	}

	return []parallel.Option{parallel.WithWorkers(runCfg.Workers)}
}
