package simgen

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/bacrama/internal/adapters/ingest"
	"github.com/okian/bacrama/internal/adapters/simfiles"
	"github.com/okian/bacrama/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Run generates the configured season and writes one file per day.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	stats := Stats{StartTime: time.Now()}
	if err := cfg.Validate(); err != nil {
		return stats, err
	}
	if _, err := simfiles.Pattern(cfg.FileNames); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	log := logger.Get().Named("simgen")
	log.Info(ctx, "generating simulation",
		logger.String("out", cfg.OutDir),
		logger.Int("days", cfg.Days),
		logger.Int("players", cfg.Players),
		logger.Int("duelsPerDay", cfg.DuelsPerDay),
		logger.Any("seed", cfg.Seed),
	)

	if err := os.MkdirAll(cfg.OutDir, directoryPermission); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}

	// Days are drawn sequentially so the output only depends on the seed.
	days := NewGenerator(cfg).Days()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, day := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := strings.Replace(cfg.FileNames, "%d", strconv.Itoa(day.Number), 1)
			return writeDay(filepath.Join(cfg.OutDir, name), day)
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.Files = len(days)
	stats.Duels = len(days) * cfg.DuelsPerDay
	stats.Players = cfg.Players
	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "simulation written",
		logger.Int("files", stats.Files),
		logger.Int("duels", stats.Duels),
		logger.String("duration", stats.Duration.String()),
	)
	return stats, nil
}

func writeDay(path string, day Day) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		ingest.ColumnEqual, ingest.ColumnOpposite, ingest.ColumnEqualPoints, ingest.ColumnOppositePoints,
	}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, d := range day.Duels {
		if err := w.Write([]string{
			d.Equal, d.Opposite, strconv.Itoa(d.EqualPoints), strconv.Itoa(d.OppositePoints),
		}); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
