package scoring

import (
	"fmt"
	"strings"

	"github.com/okian/vitarank/internal/domain/model"
)

// Safety deduction constants. Violations stack additively; the score floors
// at zero.
const (
	interactionPenalty      = 30.0
	contraindicationPenalty = 40.0
	allergenPenalty         = 50.0
	lifeStagePenalty        = 20.0

	pregnancyAgeCutoff = 50
	adultAge           = 18
)

// Life-stage contraindication tags recognized by the guard.
const (
	pregnancyTag = "pregnancy"
	childrenTag  = "children"
)

// safetyProfile scores the product's safety for this user and returns the
// ordered warning list: medication interactions first, then conditions,
// then allergens. The life-stage guard adjusts the score without emitting
// a warning.
func (e *Engine) safetyProfile(user *model.UserProfile, product model.ProductCandidate) (float64, []string) {
	score := maxScore
	warnings := make([]string, 0)

	for _, med := range user.Medications {
		substances, ok := e.tables.Interactions[strings.ToLower(strings.TrimSpace(med))]
		if !ok {
			continue
		}
		if productContainsAny(product.Ingredients, substances) {
			score -= interactionPenalty
			warnings = append(warnings, fmt.Sprintf("May interact with %s. Consult your doctor.", med))
		}
	}

	for _, condition := range user.HealthConditions {
		if matchesAnyTag(condition, product.Contraindications) {
			score -= contraindicationPenalty
			warnings = append(warnings, fmt.Sprintf("Not recommended for %s.", condition))
		}
	}

	for _, allergy := range user.Allergies {
		if matchesAnyTag(allergy, product.AllergenWarnings) {
			score -= allergenPenalty
			warnings = append(warnings, fmt.Sprintf("Contains %s. Not suitable for your allergies.", allergy))
		}
	}

	if user.Gender == model.GenderFemale && user.Age < pregnancyAgeCutoff && hasTag(product.Contraindications, pregnancyTag) {
		score -= lifeStagePenalty
	}
	if user.Age < adultAge && hasTag(product.Contraindications, childrenTag) {
		score -= lifeStagePenalty
	}

	if score < 0 {
		score = 0
	}
	return score, warnings
}

// productContainsAny reports whether any ingredient name contains one of
// the listed substances.
func productContainsAny(ingredients []model.Ingredient, substances []string) bool {
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		for _, sub := range substances {
			if sub != "" && strings.Contains(name, sub) {
				return true
			}
		}
	}
	return false
}

// matchesAnyTag reports whether term substring-matches any tag in either
// direction.
func matchesAnyTag(term string, tags []string) bool {
	for _, tag := range tags {
		if containsEither(term, tag) {
			return true
		}
	}
	return false
}

// hasTag reports whether any tag contains the lowercase marker.
func hasTag(tags []string, marker string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), marker) {
			return true
		}
	}
	return false
}
