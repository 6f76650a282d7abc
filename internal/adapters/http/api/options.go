// Package api declares HTTP contracts and route registration helpers.
package api

import "golang.org/x/time/rate"

// ServerOption configures optional server behavior.
type ServerOption func(*Server)

// WithMaxLimit overrides the maximum result limit accepted by POST /match.
func WithMaxLimit(maxLimit int) ServerOption {
	return func(s *Server) {
		if maxLimit > 0 {
			s.matchHandler.maxLimit = maxLimit
		}
	}
}

// WithRateLimit installs a token-bucket limiter on the match endpoint.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = &rateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
	}
}
