// Package catalog defines the product catalog store interface and its
// in-memory implementation. It stands in for the external persistence
// collaborator: the engine only ever sees the read-only product slice the
// store hands out per invocation.
package catalog

import (
	"context"

	"github.com/okian/vitarank/internal/domain/model"
)

// Store provides read access to the product catalog.
type Store interface {
	// List returns every catalog entry in stable order.
	List(ctx context.Context) []model.ProductCandidate

	// Get returns the catalog entry with the given id.
	// Returns ErrNotFound if the product is unknown.
	Get(ctx context.Context, id string) (model.ProductCandidate, error)

	// Count returns the number of products in the catalog.
	Count(ctx context.Context) int
}
