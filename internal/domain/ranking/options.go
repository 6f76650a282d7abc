package ranking

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithWorkerCount sets the number of scoring workers used per call.
func WithWorkerCount(count int) Option {
	return func(r *Ranker) {
		if count > 0 {
			r.workerCount = count
		}
	}
}

// WithRelevanceFloor sets the minimum total score a product must reach to
// appear in ranked results. Zero disables the floor.
func WithRelevanceFloor(floor int) Option {
	return func(r *Ranker) {
		if floor >= 0 {
			r.relevanceFloor = floor
		}
	}
}

// WithDefaultLimit sets the result page size used when a caller passes a
// non-positive limit.
func WithDefaultLimit(limit int) Option {
	return func(r *Ranker) {
		if limit > 0 {
			r.defaultLimit = limit
		}
	}
}
