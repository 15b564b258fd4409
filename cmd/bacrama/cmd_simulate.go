package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/bacrama/internal/adapters/render"
	"github.com/okian/bacrama/internal/adapters/simfiles"
	service "github.com/okian/bacrama/internal/app"
	"github.com/okian/bacrama/internal/config"
	"github.com/okian/bacrama/pkg/logger"
	"github.com/okian/bacrama/pkg/metrics"
)

func runSimulate(cmd *cobra.Command, dir string, f *simulateFlags) error {
	ctx := cmd.Context()

	cfg, svc, err := simulate(cmd, dir, f)
	if err != nil {
		return err
	}

	entries, err := svc.Leaderboard(ctx, cfg.LeaderboardLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		err = render.JSON(out, entries)
	default:
		err = render.Table(out, entries, render.WithPlacingMarker(cfg.ShowPlacing))
	}
	if err != nil {
		return err
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Get().Info(ctx, "metrics written", logger.String("path", cfg.MetricsTextfile))
	}
	return nil
}

// simulate loads the configuration, discovers the files of dir and runs them
// through a new service.
func simulate(cmd *cobra.Command, dir string, f *simulateFlags) (*config.Config, *service.Service, error) {
	ctx := cmd.Context()

	// Load configuration (defaults -> optional file -> env), then flags.
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	applyFlags(cmd, cfg, f)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	set, err := simfiles.Discover(ctx, dir, cfg.FileNames, cfg.MinBound(), cfg.MaxBound())
	if err != nil {
		metrics.RecordErrorByComponent("simfiles", "discover")
		return nil, nil, err
	}
	log.Info(ctx, "simulation files found",
		logger.String("dir", dir),
		logger.Int("min", set.Min),
		logger.Int("max", set.Max),
	)

	svc := service.New(
		service.WithLogger(log.Named("simulation")),
		service.WithLoadWorkers(cfg.LoadWorkers),
	)
	if _, err := svc.Run(ctx, set.Paths()); err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *simulateFlags) {
	flags := cmd.Flags()
	if flags.Changed("file-names") {
		cfg.FileNames = f.fileNames
	}
	if flags.Changed("min") {
		cfg.MinFile = f.min
	}
	if flags.Changed("max") {
		cfg.MaxFile = f.max
	}
	if flags.Changed("top") {
		cfg.LeaderboardLimit = f.top
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("no-placing") {
		cfg.ShowPlacing = !f.noPlacing
	}
	if flags.Changed("workers") && f.workers > 0 {
		cfg.LoadWorkers = f.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("metrics-textfile") {
		cfg.MetricsTextfile = f.metricsTextfile
	}
	if flags.Changed("addr") && f.addr != "" {
		cfg.Addr = f.addr
	}
}
