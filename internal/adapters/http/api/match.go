// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// defaultMaxLimit caps POST /match limits unless overridden via
// WithMaxLimit.
const defaultMaxLimit = 100

// MatchHandler handles catalog match requests.
type MatchHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies, maxLimit int) *MatchHandler {
	return &MatchHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandlePostMatch handles POST /match requests. The body carries the user
// profile and an optional result limit; the response is the ranked,
// filtered, annotated result page.
func (h *MatchHandler) HandlePostMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_match"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.Limit > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	req.normalize()

	results, err := h.deps.Match(r.Context(), req.Profile, req.Limit)
	if err != nil {
		if isBadInput(err) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, results)
}
