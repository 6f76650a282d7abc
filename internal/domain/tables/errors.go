package tables

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrLoadTables = errors.New("load tables failed")
)
