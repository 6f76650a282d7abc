// Package ranking applies the score composer across a product catalog,
// discards below-threshold results, sorts, and truncates to a result page.
//
// Scoring a catalog is an embarrassingly parallel map over independent
// products: a bounded pool of workers pulls catalog indexes off a jobs
// channel and composes each product against the read-only profile, with no
// synchronization beyond the final merge and sort.
package ranking

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/okian/vitarank/internal/domain/model"
	"github.com/okian/vitarank/pkg/metrics"
)

// Default ranking configuration constants.
const (
	defaultRelevanceFloor = 30
	defaultLimit          = 10
)

// Composer scores one product against a user profile.
type Composer interface {
	Compose(ctx context.Context, user *model.UserProfile, product model.ProductCandidate) (model.MatchResult, error)
}

// Ranker ranks and filters a catalog. Safe for concurrent use after
// construction; it holds no per-call state and never mutates its inputs.
type Ranker struct {
	composer       Composer
	workerCount    int
	relevanceFloor int
	defaultLimit   int
}

// New creates a Ranker with configuration options.
func New(composer Composer, opts ...Option) *Ranker {
	r := &Ranker{
		composer:       composer,
		workerCount:    runtime.NumCPU(),
		relevanceFloor: defaultRelevanceFloor,
		defaultLimit:   defaultLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RelevanceFloor returns the configured minimum total score.
func (r *Ranker) RelevanceFloor() int {
	return r.relevanceFloor
}

// Rank scores every catalog entry, drops entries whose total score falls
// below the relevance floor, sorts the rest by total score descending with
// ties broken by catalog order, and truncates to limit (the configured
// default when limit is not positive). A nil profile or nil catalog is
// rejected; an empty catalog yields an empty result.
func (r *Ranker) Rank(ctx context.Context, user *model.UserProfile, catalog []model.ProductCandidate, limit int) ([]model.ScoredProduct, error) {
	if user == nil {
		return nil, ErrNilProfile
	}
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if limit <= 0 {
		limit = r.defaultLimit
	}

	start := time.Now()
	defer func() {
		metrics.RecordRankLatency(float64(time.Since(start).Milliseconds()))
	}()

	results, err := r.scoreAll(ctx, user, catalog)
	if err != nil {
		return nil, err
	}

	ranked := make([]model.ScoredProduct, 0, len(catalog))
	for i, res := range results {
		if res.TotalScore < r.relevanceFloor {
			metrics.RecordFloorDiscard()
			continue
		}
		ranked = append(ranked, model.ScoredProduct{Product: catalog[i], Result: res})
	}

	// Stable sort preserves catalog ordering on equal totals, e.g. a
	// pre-sorted popularity order from the caller.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.TotalScore > ranked[j].Result.TotalScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// scoreAll fans catalog indexes out to a bounded worker pool and collects
// per-product results positionally.
func (r *Ranker) scoreAll(ctx context.Context, user *model.UserProfile, catalog []model.ProductCandidate) ([]model.MatchResult, error) {
	workers := r.workerCount
	if workers < 1 {
		workers = 1
	}
	if workers > len(catalog) {
		workers = len(catalog)
	}

	results := make([]model.MatchResult, len(catalog))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := r.composer.Compose(ctx, user, catalog[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results[i] = res
				metrics.RecordProductScored()
			}
		}()
	}

	for i := range catalog {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
