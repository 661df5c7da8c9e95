// Package app orchestrates the daily scoring pipeline: readings into
// normalized values, values into pillar and composite scores, scores into the
// board's history ledger, and the ledger into a sealed snapshot on disk.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/solosevn/trainingrun/internal/domain/model"
	"github.com/solosevn/trainingrun/internal/domain/normalize"
	"github.com/solosevn/trainingrun/internal/domain/registry"
	"github.com/solosevn/trainingrun/internal/domain/roster"
	"github.com/solosevn/trainingrun/internal/domain/scoring"
	"github.com/solosevn/trainingrun/internal/domain/types"
	"github.com/solosevn/trainingrun/internal/ledger"
	"github.com/solosevn/trainingrun/internal/snapshot"
	"github.com/solosevn/trainingrun/internal/store"
	"github.com/solosevn/trainingrun/pkg/logger"
	"github.com/solosevn/trainingrun/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Service runs the scoring pipeline for the configured boards.
type Service struct {
	store      store.Store
	registry   *registry.Registry
	roster     *roster.Roster
	dataDir    string
	statusPath string
	logger     logger.Logger

	// statusMu serializes status-file updates: boards run concurrently and
	// the update is a read-modify-write of one shared file.
	statusMu sync.Mutex
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the readings store.
func WithStore(st store.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithRegistry sets the board registry.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithRoster sets the model name roster.
func WithRoster(r *roster.Roster) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithDataDir sets the directory holding board snapshots.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithStatusPath sets the per-run status file path.
func WithStatusPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.statusPath = path
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

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		registry: registry.Default(),
		roster:   roster.New(),
		dataDir:  "data",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// RunResult summarizes one board run.
type RunResult struct {
	Board     string
	Day       string
	Models    int      // models scored this day
	Qualified int      // models with a non-null composite
	Sources   int      // distinct sources that reported a value
	Top       []string // up to five model names by composite, best first
}

// RunBoard executes one board's pipeline for one day: load the day's
// readings, normalize per source, compose per model, append to the board's
// ledger, and seal the snapshot to disk. A re-run for a day already at the
// end of the axis replaces that day's column.
func (s *Service) RunBoard(ctx context.Context, boardKey, day string) (RunResult, error) {
	started := time.Now()
	res, err := s.runBoard(ctx, boardKey, day)
	metrics.RecordRunDuration(boardKey, time.Since(started).Seconds())
	if err != nil {
		metrics.RecordRunFailed(boardKey)
		s.logger.Error(ctx, "board run failed",
			logger.String("board", boardKey),
			logger.String("day", day),
			logger.Error(err),
		)
	} else {
		metrics.RecordRunSucceeded(boardKey)
		s.logger.Info(ctx, "board run complete",
			logger.String("board", boardKey),
			logger.String("day", day),
			logger.Int("models", res.Models),
			logger.Int("qualified", res.Qualified),
		)
	}
	s.recordStatus(ctx, boardKey, day, started, res, err)
	return res, err
}

func (s *Service) runBoard(ctx context.Context, boardKey, day string) (RunResult, error) {
	board, err := s.registry.Board(boardKey)
	if err != nil {
		return RunResult{}, err
	}
	if s.store == nil {
		return RunResult{}, ErrNoStore
	}

	readings, err := s.store.LatestForDay(ctx, board.Key, day)
	if err != nil {
		return RunResult{}, fmt.Errorf("load readings: %w", err)
	}

	records, err := s.score(ctx, board, day, readings)
	if err != nil {
		return RunResult{}, err
	}

	snap, err := s.loadOrCreate(board)
	if err != nil {
		return RunResult{}, err
	}
	if err := ledger.New(snap).Append(day, records); err != nil {
		return RunResult{}, fmt.Errorf("append %s: %w", day, err)
	}

	events, err := s.store.TimelineEvents(ctx, board.Key)
	if err != nil {
		return RunResult{}, fmt.Errorf("load timeline events: %w", err)
	}
	if events == nil {
		events = []snapshot.TimelineEvent{}
	}
	snap.TimelineEvents = events

	if err := snapshot.Write(s.snapshotPath(board.Key), snap); err != nil {
		return RunResult{}, fmt.Errorf("publish snapshot: %w", err)
	}
	metrics.RecordSnapshotSealed(board.Key)
	metrics.UpdateSnapshotLastPublish(board.Key, time.Now().Unix())

	qualified := 0
	for _, rec := range records {
		if rec.Composite != nil {
			qualified++
		}
	}
	metrics.UpdateQualifiedModels(board.Key, qualified)
	metrics.UpdateTrackedModels(board.Key, len(snap.Models))
	metrics.UpdateLedgerDates(board.Key, len(snap.Dates))

	sources := make(map[string]bool)
	for _, r := range readings {
		if r.Value != nil {
			sources[r.Source] = true
		}
	}

	return RunResult{
		Board:     board.Key,
		Day:       day,
		Models:    len(records),
		Qualified: qualified,
		Sources:   len(sources),
		Top:       topModels(records, 5),
	}, nil
}

// topModels returns up to n model names by composite descending, name
// ascending on ties. Unqualified models never place.
func topModels(records map[string]model.DailyScoreRecord, n int) []string {
	ranked := make([]model.DailyScoreRecord, 0, len(records))
	for _, rec := range records {
		if rec.Composite != nil {
			ranked = append(ranked, rec)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if *ranked[i].Composite != *ranked[j].Composite {
			return *ranked[i].Composite > *ranked[j].Composite
		}
		return ranked[i].Model < ranked[j].Model
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	names := make([]string, len(ranked))
	for i, rec := range ranked {
		names[i] = rec.Model
	}
	return names
}

// score normalizes the day's readings per source and composes one
// DailyScoreRecord per model.
func (s *Service) score(ctx context.Context, board registry.Board, day string, readings []model.Reading) (map[string]model.DailyScoreRecord, error) {
	// source key -> model -> raw value
	raw := make(map[string]map[string]float64)
	companies := make(map[string]string)
	for _, r := range readings {
		companies[r.Model] = r.Company
		if r.Value == nil {
			continue
		}
		if raw[r.Source] == nil {
			raw[r.Source] = make(map[string]float64)
		}
		raw[r.Source][r.Model] = *r.Value
	}

	// model -> source key -> normalized value
	normalized := make(map[string]map[string]float64)
	for _, src := range board.Sources() {
		values, rejected := normalize.Apply(src.Rule, raw[src.Key])
		for _, name := range rejected {
			metrics.RecordReadingRejected(board.Key, src.Key)
			s.logger.Warn(ctx, "rejected out-of-range reading",
				logger.String("board", board.Key),
				logger.String("source", src.Key),
				logger.String("model", name),
			)
		}
		for name, v := range values {
			if normalized[name] == nil {
				normalized[name] = make(map[string]float64)
			}
			normalized[name][src.Key] = v
		}
	}

	// Models seen only through null readings still get a record so the
	// ledger carries their gap for the day.
	names := make([]string, 0, len(companies))
	for name := range companies {
		names = append(names, name)
	}
	sort.Strings(names)

	composer := scoring.NewComposer(board)
	records := make(map[string]model.DailyScoreRecord, len(names))
	for _, name := range names {
		rec, err := composer.Compose(ctx, name, companies[name], day, normalized[name])
		if err != nil {
			return nil, fmt.Errorf("compose %s: %w", name, err)
		}
		records[name] = rec
	}
	return records, nil
}

// loadOrCreate loads a board's snapshot, failing closed on a checksum
// mismatch. A missing snapshot starts a fresh board. Formula version and
// weights always reflect the current board configuration.
func (s *Service) loadOrCreate(board registry.Board) (*snapshot.Board, error) {
	snap, err := snapshot.Load(s.snapshotPath(board.Key))
	if errors.Is(err, snapshot.ErrNotFound) {
		return snapshot.New(board.FormulaVersion, board.Weights()), nil
	}
	if err != nil {
		if errors.Is(err, snapshot.ErrInvalidSnapshot) {
			metrics.RecordIntegrityFailure(board.Key)
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	snap.FormulaVersion = board.FormulaVersion
	snap.Weights = board.Weights()
	return snap, nil
}

// RunAll runs every configured board for the day. Boards run concurrently
// and fail independently: one board's error never blocks the others.
func (s *Service) RunAll(ctx context.Context, day string, boards []string) error {
	keys := boards
	if len(keys) == 0 {
		keys = s.registry.Keys()
	}

	var mu sync.Mutex
	var errs []error
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if _, err := s.RunBoard(ctx, key, day); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("board %s: %w", key, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Rank returns the board's standings as of day: each tracked model's latest
// non-null score at or before day, ordered score descending with name
// ascending breaking ties. Models with no score yet are omitted.
func (s *Service) Rank(ctx context.Context, boardKey, day string) ([]types.Entry, error) {
	if _, err := s.registry.Board(boardKey); err != nil {
		return nil, err
	}
	snap, err := snapshot.Load(s.snapshotPath(boardKey))
	if err != nil {
		return nil, err
	}
	return ledger.New(snap).Rank(day)
}

// Verify checks a board snapshot's checksum and shape without modifying it.
func (s *Service) Verify(ctx context.Context, boardKey string) error {
	if _, err := s.registry.Board(boardKey); err != nil {
		return err
	}
	_, err := snapshot.Load(s.snapshotPath(boardKey))
	if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
		metrics.RecordIntegrityFailure(boardKey)
	}
	return err
}

// Ingest resolves raw reading names against the roster and persists them.
// Unresolvable names are stored under their cleaned form and flagged
// provisional rather than dropped.
func (s *Service) Ingest(ctx context.Context, readings []model.Reading) (int, error) {
	ingested := 0
	for i := range readings {
		r := readings[i]
		if _, err := s.registry.Board(r.Board); err != nil {
			return ingested, err
		}
		id := s.roster.Resolve(r.Model, r.Company)
		r.Model = id.Name
		r.Company = id.Company
		r.Provisional = id.Provisional
		if id.Provisional {
			metrics.RecordProvisionalModel()
			s.logger.Warn(ctx, "provisional model name",
				logger.String("board", r.Board),
				logger.String("model", r.Model),
			)
		}
		superseded, err := s.store.AddReading(ctx, &r)
		if err != nil {
			return ingested, err
		}
		metrics.RecordReadingIngested(r.Board, r.Source)
		if superseded {
			metrics.RecordReadingSuperseded()
		}
		ingested++
	}
	return ingested, nil
}

func (s *Service) snapshotPath(boardKey string) string {
	return filepath.Join(s.dataDir, boardKey+".json")
}
