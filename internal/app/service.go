// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/vitarank/internal/adapters/catalog"
	"github.com/okian/vitarank/internal/domain/model"
	"github.com/okian/vitarank/internal/domain/ranking"
	"github.com/okian/vitarank/internal/domain/scoring"
	"github.com/okian/vitarank/internal/domain/tables"
	"github.com/okian/vitarank/pkg/logger"
	"github.com/okian/vitarank/pkg/metrics"
)

// Service wires the scoring engine, ranker, and catalog store behind the
// API surface.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine *scoring.Engine
	ranker *ranking.Ranker
	store  catalog.Store
	lookup *tables.Tables

	// Configuration
	workerCount    int
	relevanceFloor int
	defaultLimit   int
	maxLimit       int
	weights        scoring.Weights
	catalogPath    string
	tablesPath     string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:    runtime.NumCPU(),
		relevanceFloor: 30,
		defaultLimit:   10,
		maxLimit:       100,
		weights:        scoring.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components: scoring tables, engine, ranker,
// and the catalog store (loaded from the configured file unless a store was
// injected).
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting match service...")

	if s.lookup == nil {
		t, err := tables.Load(ctx, s.tablesPath)
		if err != nil {
			return fmt.Errorf("load scoring tables: %w", err)
		}
		s.lookup = t
	}

	engine, err := scoring.New(
		scoring.WithTables(s.lookup),
		scoring.WithWeights(s.weights),
	)
	if err != nil {
		return fmt.Errorf("build scoring engine: %w", err)
	}
	s.engine = engine

	s.ranker = ranking.New(engine,
		ranking.WithWorkerCount(s.workerCount),
		ranking.WithRelevanceFloor(s.relevanceFloor),
		ranking.WithDefaultLimit(s.defaultLimit),
	)

	if s.store == nil {
		var products []model.ProductCandidate
		if s.catalogPath != "" {
			products, err = catalog.LoadFile(ctx, s.catalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
		}
		s.store = catalog.NewMemStore(catalog.WithProducts(products))
	}

	metrics.UpdateWorkerCount(s.workerCount)
	s.started = true
	s.logger.Info(ctx, "match service started",
		logger.Int("workers", s.workerCount),
		logger.Int("relevanceFloor", s.relevanceFloor),
		logger.Int("catalogSize", s.store.Count(ctx)),
	)
	return nil
}

// Stop shuts the service down. The engine holds no background state, so
// this only flips the lifecycle flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "match service stopped")
}

// Match ranks the whole catalog against the user profile and returns the
// filtered, sorted, truncated result page.
func (s *Service) Match(ctx context.Context, user *model.UserProfile, limit int) ([]model.ScoredProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	metrics.RecordMatchRequest()
	ranked, err := s.ranker.Rank(ctx, user, s.store.List(ctx), limit)
	if err != nil {
		metrics.RecordScoringError()
		return nil, err
	}

	for _, sp := range ranked {
		metrics.RecordTotalScore(float64(sp.Result.TotalScore))
		metrics.RecordSubScore("goal_fit", sp.Result.GoalFit)
		metrics.RecordSubScore("ingredient_alignment", sp.Result.IngredientAlignment)
		metrics.RecordSubScore("safety_profile", sp.Result.SafetyProfile)
		metrics.RecordSubScore("credibility", sp.Result.Credibility)
		metrics.RecordSubScore("personalization", sp.Result.Personalization)
	}

	s.logger.Debug(ctx, "ranked catalog",
		logger.Int("catalogSize", s.store.Count(ctx)),
		logger.Int("returned", len(ranked)),
	)
	return ranked, nil
}

// ScoreProduct composes a match result for a single catalog product.
func (s *Service) ScoreProduct(ctx context.Context, user *model.UserProfile, productID string) (model.ScoredProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return model.ScoredProduct{}, ErrNotStarted
	}

	product, err := s.store.Get(ctx, productID)
	if err != nil {
		return model.ScoredProduct{}, err
	}

	start := time.Now()
	result, err := s.engine.Compose(ctx, user, product)
	metrics.RecordComposeLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordScoringError()
		return model.ScoredProduct{}, err
	}
	metrics.RecordProductScored()

	return model.ScoredProduct{Product: product, Result: result}, nil
}

// Products returns the catalog contents.
func (s *Service) Products(ctx context.Context) ([]model.ProductCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store.List(ctx), nil
}

// MaxLimit returns the per-request result limit cap.
func (s *Service) MaxLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxLimit
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"workerCount":    s.workerCount,
		"relevanceFloor": s.relevanceFloor,
		"defaultLimit":   s.defaultLimit,
		"maxLimit":       s.maxLimit,
	}
	if s.started {
		stats["catalogSize"] = s.store.Count(context.Background())
	}
	return stats
}
