// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the api package.
var (
	// ErrBadRequest indicates the request body or parameters were invalid.
	ErrBadRequest = errors.New("bad request")
	// ErrRateLimited indicates the client exceeded the request rate limit.
	ErrRateLimited = errors.New("rate limited")
)

// NewKind returns an operation-tagged error of the given kind.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind wraps err under both the operation tag and the error kind, so
// callers can match with errors.Is on the kind while keeping the cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Wrap annotates err with the operation that produced it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
