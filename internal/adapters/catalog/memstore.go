package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/vitarank/internal/domain/model"
	"github.com/okian/vitarank/pkg/metrics"
)

// MemStore implements Store with an in-memory product list. The catalog is
// read-mostly: List returns a shared immutable slice and Replace swaps it
// wholesale under a write lock.
type MemStore struct {
	mu       sync.RWMutex
	products []model.ProductCandidate
	byID     map[string]int
}

// NewMemStore creates a new in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		products: []model.ProductCandidate{},
		byID:     map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	metrics.UpdateCatalogSize(len(s.products))
	return s
}

// List returns every catalog entry in stable order. Callers must not mutate
// the returned slice.
func (s *MemStore) List(_ context.Context) []model.ProductCandidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Get returns the catalog entry with the given id.
func (s *MemStore) Get(_ context.Context, id string) (model.ProductCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return model.ProductCandidate{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.products[i], nil
}

// Count returns the number of products in the catalog.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Replace swaps the catalog contents, e.g. after a reload from file.
func (s *MemStore) Replace(_ context.Context, products []model.ProductCandidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.byID = indexByID(products)
	metrics.UpdateCatalogSize(len(products))
}

func indexByID(products []model.ProductCandidate) map[string]int {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return byID
}
