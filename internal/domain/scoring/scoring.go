// Package scoring computes 0-100 compatibility scores between a user's
// health profile and catalog products. Five weighted evaluators (goal fit,
// ingredient alignment, safety, credibility, personalization) feed a
// composer that produces the total score, warnings, and recommendations.
//
// The engine is pure and stateless: no I/O, no shared mutable state, and
// identical inputs always produce identical results.
package scoring

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/okian/vitarank/internal/domain/lexical"
	"github.com/okian/vitarank/internal/domain/model"
	"github.com/okian/vitarank/internal/domain/tables"
)

// Sub-score constants shared by the evaluators.
const (
	neutralScore = 50.0
	maxScore     = 100.0
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTables sets the lookup tables the engine scores with.
func WithTables(t *tables.Tables) Option {
	return func(e *Engine) {
		if t != nil {
			e.tables = t
		}
	}
}

// WithWeights sets the composer weights. New rejects weights that do not
// sum to 1.0.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// Engine composes the five sub-scores into a MatchResult. Safe for
// concurrent use after construction.
type Engine struct {
	tables  *tables.Tables
	weights Weights
	matcher *lexical.Matcher

	// dosageKeys holds the optimal-dosage table keys in sorted order so
	// ingredient lookups resolve deterministically when multiple keys
	// match one ingredient name.
	dosageKeys []string
}

// New creates an Engine with configuration options. It fails with
// ErrInvalidWeights when the five composer weights do not sum to 1.0.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		tables:  tables.Defaults(),
		weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.weights.Validate(); err != nil {
		return nil, err
	}

	e.matcher = lexical.New(lexical.WithSynonyms(e.tables.Synonyms))
	e.dosageKeys = make([]string, 0, len(e.tables.OptimalDosages))
	for k := range e.tables.OptimalDosages {
		e.dosageKeys = append(e.dosageKeys, k)
	}
	sort.Strings(e.dosageKeys)

	return e, nil
}

// Matcher exposes the engine's lexical matcher for callers that need raw
// term matching against the same synonym table.
func (e *Engine) Matcher() *lexical.Matcher {
	return e.matcher
}

// Compose scores a single product against the user profile. It never fails
// for incomplete-but-well-typed input; only a nil profile is rejected.
func (e *Engine) Compose(_ context.Context, user *model.UserProfile, product model.ProductCandidate) (model.MatchResult, error) {
	if user == nil {
		return model.MatchResult{}, ErrNilProfile
	}

	goalFit := e.goalFit(user.Goals, product.Benefits)
	alignment, gapMatched := e.ingredientAlignment(user.NutrientGaps, product.Ingredients)
	safety, warnings := e.safetyProfile(user, product)
	credibility := e.credibility(product)
	personalization := e.personalization(user, product)

	weighted := goalFit*e.weights.GoalFit +
		alignment*e.weights.IngredientAlignment +
		safety*e.weights.SafetyProfile +
		credibility*e.weights.Credibility +
		personalization*e.weights.Personalization
	total := int(clamp(math.Round(weighted), 0, maxScore))

	recommendations := make([]string, 0, 3)
	if msg := e.tables.RecommendationFor(total); msg != "" {
		recommendations = append(recommendations, msg)
	}
	if len(product.Certifications) > 0 && e.tables.CertifiedAddOn != "" {
		recommendations = append(recommendations, e.tables.CertifiedAddOn)
	}
	if gapMatched && e.tables.NutrientGapAddOn != "" {
		recommendations = append(recommendations, e.tables.NutrientGapAddOn)
	}

	return model.MatchResult{
		GoalFit:             goalFit,
		IngredientAlignment: alignment,
		SafetyProfile:       safety,
		Credibility:         credibility,
		Personalization:     personalization,
		TotalScore:          total,
		Warnings:            warnings,
		Recommendations:     recommendations,
	}, nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// containsEither reports whether either lowercased string contains the
// other. Empty strings never match.
func containsEither(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
