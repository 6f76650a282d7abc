package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound    = errors.New("product not found")
	ErrLoadCatalog = errors.New("load catalog failed")
)
