// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/vitarank/internal/adapters/catalog"
	"github.com/okian/vitarank/internal/domain/model"
	"github.com/okian/vitarank/internal/domain/ranking"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Match ranks the catalog against a user profile.
	Match(ctx context.Context, user *model.UserProfile, limit int) ([]model.ScoredProduct, error)

	// ScoreProduct composes a match result for one catalog product.
	ScoreProduct(ctx context.Context, user *model.UserProfile, productID string) (model.ScoredProduct, error)

	// Products exposes the catalog contents.
	Products(ctx context.Context) ([]model.ProductCandidate, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	matchHandler    *MatchHandler
	scoreHandler    *ScoreHandler
	productsHandler *ProductsHandler

	limiter *rateLimiter
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		matchHandler:    NewMatchHandler(deps, defaultMaxLimit),
		scoreHandler:    NewScoreHandler(deps),
		productsHandler: NewProductsHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux. Every route records metrics and
// carries a request id; the match endpoint is additionally rate limited.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/products", RequestIDMiddleware(MetricsMiddleware(s.productsHandler.HandleGetProducts, "products")))
	mux.HandleFunc("/score/", RequestIDMiddleware(MetricsMiddleware(s.scoreHandler.HandlePostScore, "score")))

	match := MetricsMiddleware(s.matchHandler.HandlePostMatch, "match")
	if s.limiter != nil {
		match = s.limiter.Middleware(match)
	}
	mux.HandleFunc("/match", RequestIDMiddleware(match))
}

// matchRequest mirrors the request schema for POST /match and POST /score.
type matchRequest struct {
	Profile *model.UserProfile `json:"profile"`
	Limit   int                `json:"limit,omitempty"`
}

func (m *matchRequest) validate() error {
	switch {
	case m.Profile == nil:
		return errors.New("missing profile")
	case m.Profile.Age < 0:
		return errors.New("age must not be negative")
	case m.Limit < 0:
		return errors.New("limit must not be negative")
	}
	return nil
}

// normalize folds free-form enum inputs onto their recognized values.
func (m *matchRequest) normalize() {
	if m.Profile != nil {
		m.Profile.Gender = model.ParseGender(string(m.Profile.Gender))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, catalog.ErrNotFound)
}

// isBadInput reports whether the engine rejected the call for structurally
// invalid input.
func isBadInput(err error) bool {
	return errors.Is(err, ranking.ErrNilProfile) || errors.Is(err, ranking.ErrNilCatalog)
}
