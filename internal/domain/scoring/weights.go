package scoring

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float accumulation noise when validating that
// the five weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights holds the composer weight of each sub-score. The five weights
// must sum to 1.0.
type Weights struct {
	GoalFit             float64 `koanf:"goal_fit"`
	IngredientAlignment float64 `koanf:"ingredient_alignment"`
	SafetyProfile       float64 `koanf:"safety_profile"`
	Credibility         float64 `koanf:"credibility"`
	Personalization     float64 `koanf:"personalization"`
}

// DefaultWeights returns the standard composer weighting.
func DefaultWeights() Weights {
	return Weights{
		GoalFit:             0.40,
		IngredientAlignment: 0.25,
		SafetyProfile:       0.20,
		Credibility:         0.10,
		Personalization:     0.05,
	}
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.GoalFit + w.IngredientAlignment + w.SafetyProfile + w.Credibility + w.Personalization
}

// Validate fails with ErrInvalidWeights unless the weights sum to 1.0 and
// none is negative.
func (w Weights) Validate() error {
	if w.GoalFit < 0 || w.IngredientAlignment < 0 || w.SafetyProfile < 0 || w.Credibility < 0 || w.Personalization < 0 {
		return fmt.Errorf("%w: weights must not be negative", ErrInvalidWeights)
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidWeights, w.Sum())
	}
	return nil
}
