package service

import (
	"github.com/okian/vitarank/internal/adapters/catalog"
	"github.com/okian/vitarank/internal/domain/scoring"
	"github.com/okian/vitarank/internal/domain/tables"
	"github.com/okian/vitarank/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkerCount sets the number of scoring workers per rank call.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithRelevanceFloor sets the minimum total score for ranked results.
func WithRelevanceFloor(floor int) Option {
	return func(s *Service) {
		if floor >= 0 {
			s.relevanceFloor = floor
		}
	}
}

// WithDefaultLimit sets the result page size used when a request omits a
// limit.
func WithDefaultLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithMaxLimit caps the per-request result limit.
func WithMaxLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxLimit = limit
		}
	}
}

// WithWeights sets the composer weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithCatalogPath sets the YAML catalog file loaded at Start.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithTablesPath sets a YAML file overriding the built-in scoring tables.
func WithTablesPath(path string) Option {
	return func(s *Service) {
		s.tablesPath = path
	}
}

// WithStore injects a catalog store, replacing the file-backed default.
func WithStore(store catalog.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTables injects pre-built scoring tables, replacing the file/default
// loading at Start.
func WithTables(t *tables.Tables) Option {
	return func(s *Service) {
		if t != nil {
			s.lookup = t
		}
	}
}
