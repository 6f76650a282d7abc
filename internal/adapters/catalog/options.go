package catalog

import "github.com/okian/vitarank/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithProducts seeds the store with an initial catalog.
func WithProducts(products []model.ProductCandidate) Option {
	return func(s *MemStore) {
		if products != nil {
			s.products = products
			s.byID = indexByID(products)
		}
	}
}
