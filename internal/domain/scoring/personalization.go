package scoring

import (
	"strings"

	"github.com/okian/vitarank/internal/domain/model"
)

// Personalization deduction constants.
const (
	dietConflictPenalty = 30.0
	duplicatePenalty    = 20.0
)

// personalization adjusts the score for dietary-preference conflicts and
// duplicate-supplement overlap with the user's current regimen. Each
// conflicting diet preference and each already-taken supplement found among
// the product's ingredients deducts from a perfect score; the result floors
// at zero.
func (e *Engine) personalization(user *model.UserProfile, product model.ProductCandidate) float64 {
	score := maxScore

	for _, pref := range user.DietPreferences {
		conflicts, ok := e.tables.DietConflicts[strings.ToLower(strings.TrimSpace(pref))]
		if !ok {
			continue
		}
		if warningsContainAny(product.AllergenWarnings, conflicts) {
			score -= dietConflictPenalty
		}
	}

	for _, supplement := range user.CurrentSupplements {
		if duplicatesAnyIngredient(supplement, product.Ingredients) {
			score -= duplicatePenalty
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

// warningsContainAny reports whether any allergen warning contains one of
// the conflict tags.
func warningsContainAny(warnings, conflicts []string) bool {
	for _, warning := range warnings {
		lowered := strings.ToLower(warning)
		for _, conflict := range conflicts {
			if conflict != "" && strings.Contains(lowered, conflict) {
				return true
			}
		}
	}
	return false
}

// duplicatesAnyIngredient reports whether the supplement name
// substring-matches any ingredient name in either direction.
func duplicatesAnyIngredient(supplement string, ingredients []model.Ingredient) bool {
	for _, ing := range ingredients {
		if containsEither(supplement, ing.Name) {
			return true
		}
	}
	return false
}
