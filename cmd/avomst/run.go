// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/avomst/config"
	"github.com/katalvlaran/avomst/logger"
	"github.com/katalvlaran/avomst/pipeline"
)

type runFlags struct {
	config   string
	input    string
	output   string
	method   string
	root     string
	workers  int
	layout   string
	quiet    bool
	logLevel string
}

func runCmd() *cobra.Command {
	var f runFlags

	c := &cobra.Command{
		Use:   "run",
		Short: "Load the price file, compute the tree and export it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			log, closeLog, err := logger.New(logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cfg.Log.Output,
			})
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			res, err := pipeline.RunFile(cfg, cmd.OutOrStdout(), log)
			if err != nil {
				log.Error().Err(err).Msg("run failed")
				return err
			}
			log.Info().
				Int("regions", len(res.Regions)).
				Float64("total_weight", res.TotalWeight).
				Str("output", cfg.Output).
				Msg("done")

			return nil
		},
	}

	fl := c.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML config file (optional; defaults apply when omitted)")
	fl.StringVarP(&f.input, "input", "i", "", "avocado price CSV")
	fl.StringVarP(&f.output, "output", "o", "", "tree output file")
	fl.StringVarP(&f.method, "method", "m", "", "MST algorithm: kruskal|prim")
	fl.StringVar(&f.root, "root", "", "start region for prim (default first region)")
	fl.IntVarP(&f.workers, "workers", "w", 0, "correlation workers (0 = GOMAXPROCS)")
	fl.StringVar(&f.layout, "layout", "", "output layout: regions|indexed")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "do not print the tree to stdout")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")

	return c
}

// resolveConfig loads the config file, if any, and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input = f.input
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("method") {
		cfg.Method = f.method
	}
	if fl.Changed("root") {
		cfg.Root = f.root
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("layout") {
		cfg.Layout = f.layout
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.quiet {
		off := false
		cfg.Describe = &off
		if !fl.Changed("log-level") {
			cfg.Log.Level = zerolog.WarnLevel.String()
		}
	}

	return cfg, cfg.Validate()
}
