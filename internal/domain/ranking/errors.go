package ranking

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNilProfile = errors.New("nil user profile")
	ErrNilCatalog = errors.New("nil catalog")
)
