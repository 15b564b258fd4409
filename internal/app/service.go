// Package service runs rating simulations over ordered batches of duels.
//
// Files are parsed concurrently, then evaluated one at a time in file order
// against a shared registry. Each file is one batch: ratings move once per
// file and the duel and day counters used for placement advance afterwards.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/bacrama/internal/adapters/ingest"
	"github.com/okian/bacrama/internal/adapters/repository"
	"github.com/okian/bacrama/internal/adapters/simfiles"
	"github.com/okian/bacrama/internal/domain/model"
	"github.com/okian/bacrama/internal/domain/ranking"
	"github.com/okian/bacrama/internal/domain/types"
	"github.com/okian/bacrama/pkg/logger"
	"github.com/okian/bacrama/pkg/metrics"
)

// Loader parses one simulation file.
type Loader func(ctx context.Context, path string) (ingest.Batch, error)

// FileReport summarises one evaluated batch.
type FileReport struct {
	File         string
	Number       int
	BatchID      uuid.UUID
	Duels        int
	Bacchiatori  int
	Registered   int // bacchiatori seen for the first time in this file
	Placing      int
	Displacement int
}

// Report summarises a simulation run.
type Report struct {
	Files       []FileReport
	Duels       int
	Bacchiatori int
	Elapsed     time.Duration
}

// Service evaluates simulation files against a registry.
type Service struct {
	store       repository.Store
	load        Loader
	loadWorkers int
	logger      logger.Logger

	mu   sync.RWMutex
	last Report
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the registry the simulation updates.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLoadWorkers bounds concurrent file parsing.
func WithLoadWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.loadWorkers = n
		}
	}
}

// WithLoader replaces the CSV file loader.
func WithLoader(load Loader) Option {
	return func(s *Service) {
		if load != nil {
			s.load = load
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service backed by an empty treap store unless WithStore
// is given.
func New(opts ...Option) *Service {
	s := &Service{
		load:        ingest.LoadFile,
		loadWorkers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewTreapStore()
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("simulation")
	}
	return s
}

// Store returns the registry updated by the service.
func (s *Service) Store() repository.Store { return s.store }

// Run loads every file, then evaluates them in the given order. A loading
// error or a batch rejected by check aborts the run before any bacchiatore
// is registered or rated.
func (s *Service) Run(ctx context.Context, files []simfiles.File) (Report, error) {
	if len(files) == 0 {
		return Report{}, ErrNoFiles
	}
	start := time.Now()

	batches, err := s.loadAll(ctx, files)
	if err != nil {
		metrics.RecordErrorByComponent("ingest", "load")
		return Report{}, err
	}
	for i, f := range files {
		if err := check(f, batches[i]); err != nil {
			metrics.RecordErrorByComponent("ranking", "check")
			s.logger.Error(ctx, "batch rejected", logger.String("file", f.Name), logger.Error(err))
			return Report{}, err
		}
	}

	report := Report{Files: make([]FileReport, 0, len(files))}
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		s.logger.Info(ctx, "running file", logger.String("file", f.Name), logger.Int("number", f.Number))

		fr, err := s.evaluate(ctx, f, batches[i])
		if err != nil {
			metrics.RecordErrorByComponent("ranking", "evaluate")
			s.logger.Error(ctx, "batch failed", logger.String("file", f.Name), logger.Error(err))
			return report, err
		}
		// Parsed duels are not needed once the batch is applied.
		batches[i] = ingest.Batch{}

		report.Files = append(report.Files, fr)
		report.Duels += fr.Duels
	}
	report.Bacchiatori = s.store.Count(ctx)
	report.Elapsed = time.Since(start)

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	s.logger.Info(ctx, "simulation finished",
		logger.Int("files", len(report.Files)),
		logger.Int("duels", report.Duels),
		logger.Int("bacchiatori", report.Bacchiatori),
		logger.String("elapsed", report.Elapsed.String()),
	)
	return report, nil
}

// loadAll parses files concurrently and returns batches in file order.
func (s *Service) loadAll(ctx context.Context, files []simfiles.File) ([]ingest.Batch, error) {
	batches := make([]ingest.Batch, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.loadWorkers)
	for i, f := range files {
		g.Go(func() error {
			start := time.Now()
			batch, err := s.load(gctx, f.Path)
			if err != nil {
				return fmt.Errorf("load %s: %w", f.Name, err)
			}
			metrics.RecordFileLoaded(float64(time.Since(start).Microseconds()) / 1000)
			s.logger.Debug(gctx, "file loaded",
				logger.String("file", f.Name),
				logger.Int("duels", len(batch.Duels)),
			)
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batches, nil
}

// check rejects a batch the builder would refuse, so that no batch of a run
// can fail after earlier ones touched the registry.
func check(f simfiles.File, batch ingest.Batch) error {
	listed := make(map[string]struct{}, len(batch.Bacchiatori))
	for _, name := range batch.Bacchiatori {
		listed[name] = struct{}{}
	}
	for i, d := range batch.Duels {
		for _, name := range [...]string{d.Equal, d.Opposite} {
			if _, ok := listed[name]; !ok {
				return fmt.Errorf("%s: duel %d: %w: %s", f.Name, i, ErrUnknownBacchiatore, name)
			}
		}
		if d.EqualPoints+d.OppositePoints == 0 {
			return fmt.Errorf("%s: duel %d: %w", f.Name, i, ranking.ErrDegenerateDuel)
		}
	}
	return nil
}

// evaluate applies one batch to the registry.
func (s *Service) evaluate(ctx context.Context, f simfiles.File, batch ingest.Batch) (FileReport, error) {
	start := time.Now()

	builder := ranking.NewBuilder[*model.Bacchiatore, *model.Duel](
		ranking.WithCapacity(len(batch.Bacchiatori), len(batch.Duels)),
	)
	fr := FileReport{File: f.Name, Number: f.Number, BatchID: builder.ID()}

	records := make(map[string]*model.Bacchiatore, len(batch.Bacchiatori))
	handles := make(map[string]ranking.Handle, len(batch.Bacchiatori))
	for _, name := range batch.Bacchiatori {
		rec, created := s.store.GetOrRegister(ctx, name)
		if created {
			fr.Registered++
		}
		records[name] = rec
		handles[name] = builder.AddBacchiatore(rec)
	}

	for i, d := range batch.Duels {
		eq, ok := handles[d.Equal]
		if !ok {
			return fr, fmt.Errorf("%s: duel %d: %w: %s", f.Name, i, ErrUnknownBacchiatore, d.Equal)
		}
		opp, ok := handles[d.Opposite]
		if !ok {
			return fr, fmt.Errorf("%s: duel %d: %w: %s", f.Name, i, ErrUnknownBacchiatore, d.Opposite)
		}
		if err := builder.AddDuel(eq, opp, d); err != nil {
			return fr, fmt.Errorf("%s: duel %d: %w", f.Name, i, err)
		}
	}

	summary, err := builder.Evaluate()
	if err != nil {
		return fr, fmt.Errorf("%s: %w", f.Name, err)
	}

	// Counters advance only after the batch is rated so placement is judged
	// on the state before the file.
	for _, rec := range records {
		rec.Days++
	}
	for _, d := range batch.Duels {
		records[d.Equal].Duels++
		records[d.Opposite].Duels++
		if side, ok := d.Winner(); ok {
			records[d.Name(side)].Victories++
		}
		metrics.RecordRatingDelta(*d.EqualDelta)
		metrics.RecordRatingDelta(*d.OppositeDelta)
	}
	s.store.Reindex(ctx, batch.Bacchiatori...)

	fr.Duels = summary.Duels
	fr.Bacchiatori = summary.Bacchiatori
	fr.Placing = summary.Placing
	fr.Displacement = summary.Displacement

	metrics.RecordBatchEvaluated(summary.Duels, float64(time.Since(start).Microseconds())/1000)
	metrics.RecordBatchDisplacement(summary.Displacement)
	metrics.UpdateBacchiatoriPlacing(summary.Placing)

	s.logger.Info(ctx, "batch evaluated",
		logger.String("file", f.Name),
		logger.String("batch_id", fr.BatchID.String()),
		logger.Int("duels", fr.Duels),
		logger.Int("bacchiatori", fr.Bacchiatori),
		logger.Int("registered", fr.Registered),
		logger.Int("placing", fr.Placing),
		logger.Int("displacement", fr.Displacement),
	)
	return fr, nil
}

// Leaderboard returns the top limit entries, or every entry when limit is 0.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]types.Entry, error) {
	if limit == 0 {
		return s.store.All(ctx), nil
	}
	return s.store.TopN(ctx, limit)
}

// Rank returns the leaderboard entry of one bacchiatore.
func (s *Service) Rank(ctx context.Context, name string) (types.Entry, error) {
	return s.store.Rank(ctx, name)
}

// GetStats returns statistics of the last completed run for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	stats := map[string]any{
		"files":       len(last.Files),
		"duels":       last.Duels,
		"bacchiatori": s.store.Count(context.Background()),
		"elapsed_ms":  last.Elapsed.Milliseconds(),
	}
	if n := len(last.Files); n > 0 {
		stats["last_file"] = last.Files[n-1].File
		stats["last_batch_id"] = last.Files[n-1].BatchID.String()
	}
	return stats
}
