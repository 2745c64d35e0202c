// Package service wires the cutoff store, candidate selector and ranking
// engine into the prediction pipeline exposed to the HTTP API.
package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	repository "github.com/josaa-tools/seatcast/internal/adapters/repository"
	"github.com/josaa-tools/seatcast/internal/domain/model"
	"github.com/josaa-tools/seatcast/internal/domain/ranking"
	"github.com/josaa-tools/seatcast/internal/domain/selection"
	"github.com/josaa-tools/seatcast/pkg/logger"
	"github.com/josaa-tools/seatcast/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	defaultDataPath       = "josaa_cutoff.csv"
	defaultMinProbability = 0.0
	maxProbability        = 100.0
)

// Service implements the prediction pipeline behind the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	selector *selection.Selector
	engine   *ranking.Engine

	// Configuration
	dataPath           string
	staleCheckInterval time.Duration
	windowSpan         float64
	nearOpeningCap     int
	inWindowCap        int
	nearClosingCap     int
	defaultMinProb     float64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the cutoff CSV path used when no store is injected.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithStore injects a pre-built store, bypassing the CSV open on Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithStaleCheckInterval forwards the snapshot staleness probe interval.
func WithStaleCheckInterval(interval time.Duration) Option {
	return func(s *Service) {
		s.staleCheckInterval = interval
	}
}

// WithWindowSpan sets the selector's proximity window span.
func WithWindowSpan(span float64) Option {
	return func(s *Service) {
		if span > 0 {
			s.windowSpan = span
		}
	}
}

// WithTierCaps sets the selector's per-tier shortlist bounds.
func WithTierCaps(nearOpening, inWindow, nearClosing int) Option {
	return func(s *Service) {
		if nearOpening > 0 {
			s.nearOpeningCap = nearOpening
		}
		if inWindow > 0 {
			s.inWindowCap = inWindow
		}
		if nearClosing > 0 {
			s.nearClosingCap = nearClosing
		}
	}
}

// WithDefaultMinProbability sets the threshold applied when a request does
// not carry its own.
func WithDefaultMinProbability(p float64) Option {
	return func(s *Service) {
		if p > 0 && p <= maxProbability {
			s.defaultMinProb = p
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath: defaultDataPath,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens the dataset and builds the pipeline components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting prediction service...")

	if s.store == nil {
		storeOpts := []repository.Option{
			repository.WithLogger(s.logger.Named("cutoffstore")),
		}
		if s.staleCheckInterval != 0 {
			storeOpts = append(storeOpts, repository.WithStaleCheckInterval(s.staleCheckInterval))
		}
		store, err := repository.Open(ctx, s.dataPath, storeOpts...)
		if err != nil {
			return fmt.Errorf("open cutoff dataset: %w", err)
		}
		s.store = store
	}

	selectorOpts := []selection.Option{}
	if s.windowSpan > 0 {
		selectorOpts = append(selectorOpts, selection.WithWindowSpan(s.windowSpan))
	}
	if s.nearOpeningCap > 0 {
		selectorOpts = append(selectorOpts, selection.WithNearOpeningCap(s.nearOpeningCap))
	}
	if s.inWindowCap > 0 {
		selectorOpts = append(selectorOpts, selection.WithInWindowCap(s.inWindowCap))
	}
	if s.nearClosingCap > 0 {
		selectorOpts = append(selectorOpts, selection.WithNearClosingCap(s.nearClosingCap))
	}
	s.selector = selection.NewSelector(selectorOpts...)
	s.engine = ranking.NewEngine()

	s.started = true
	s.logger.Info(ctx, "prediction service started",
		logger.Int("records", s.store.Count(ctx)),
		logger.Int("maxCandidates", s.selector.MaxCandidates()),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "prediction service stopped")
}

// Predict runs the full pipeline for one request: filter, select, score,
// rank. An empty preference list is a valid result; only an invalid rank or
// an unusable dataset produces an error.
func (s *Service) Predict(ctx context.Context, q model.PredictionQuery) ([]model.Preference, error) {
	s.mu.RLock()
	store, selector, engine, started := s.store, s.selector, s.engine, s.started
	s.mu.RUnlock()

	if !started {
		return nil, ErrNotStarted
	}
	if q.Rank <= 0 {
		return nil, ErrInvalidRank
	}

	minProb := q.MinProbability
	if minProb <= 0 {
		minProb = s.defaultMinProb
	}
	if minProb < 0 {
		minProb = defaultMinProbability
	}
	if minProb > maxProbability {
		minProb = maxProbability
	}

	start := time.Now()

	filtered, err := store.Query(ctx, repository.Filter{
		Category:    q.Category,
		CollegeType: q.CollegeType,
		Branch:      q.PreferredBranch,
		Round:       q.Round,
	})
	if err != nil {
		metrics.RecordPredictionError()
		metrics.RecordErrorByComponent("store", "unavailable")
		return nil, err
	}

	candidates := selector.Select(q.Rank, filtered)
	prefs := engine.Rank(q.Rank, candidates, minProb)

	metrics.RecordPrediction()
	metrics.RecordCandidatesSelected(len(candidates))
	metrics.RecordPreferencesReturned(len(prefs))
	metrics.RecordPredictionLatency(float64(time.Since(start).Milliseconds()))
	if len(prefs) == 0 {
		metrics.RecordEmptyPrediction()
	}

	s.logger.Debug(ctx, "prediction computed",
		logger.Int("rank", q.Rank),
		logger.Int("filtered", len(filtered)),
		logger.Int("candidates", len(candidates)),
		logger.Int("preferences", len(prefs)),
	)

	return prefs, nil
}

// Facets returns the distinct filter values of the current snapshot.
func (s *Service) Facets(ctx context.Context) (repository.Facets, error) {
	s.mu.RLock()
	store, started := s.store, s.started
	s.mu.RUnlock()

	if !started {
		return repository.Facets{}, ErrNotStarted
	}
	return store.Facets(ctx)
}

// ExportCSV streams the current snapshot to w in the source CSV schema.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	s.mu.RLock()
	store, started := s.store, s.started
	s.mu.RUnlock()

	if !started {
		return ErrNotStarted
	}
	return store.ExportCSV(ctx, w)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"dataPath": s.dataPath,
	}

	if s.started {
		records := s.store.Count(context.Background())
		stats["records"] = records
		stats["maxCandidates"] = s.selector.MaxCandidates()
		metrics.UpdateDatasetRecords(records)
	}

	return stats
}
