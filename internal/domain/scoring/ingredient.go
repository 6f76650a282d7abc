package scoring

import (
	"strings"

	"github.com/okian/vitarank/internal/domain/model"
)

// Ingredient-alignment scoring constants.
const (
	gapMatchPoints           = 90.0
	baselineIngredientPoints = 60.0
	optimalDosageBonus       = 10.0
)

// ingredientAlignment scores how well the product's ingredients close the
// user's declared nutrient gaps. Gap-matching ingredients earn 90 points,
// any other active ingredient earns 60 baseline credit, and optimally dosed
// ingredients earn a +10 bonus. The score is the mean across ingredients;
// the second return reports whether any ingredient matched a declared gap.
// An ingredient-less product returns a neutral score.
func (e *Engine) ingredientAlignment(nutrientGaps []string, ingredients []model.Ingredient) (float64, bool) {
	if len(ingredients) == 0 {
		return neutralScore, false
	}

	gapMatched := false
	var sum float64
	for _, ing := range ingredients {
		points := baselineIngredientPoints
		for _, gap := range nutrientGaps {
			if containsEither(ing.Name, gap) {
				points = gapMatchPoints
				gapMatched = true
				break
			}
		}
		if e.dosageOptimal(ing) {
			points += optimalDosageBonus
		}
		sum += points
	}

	return clamp(sum/float64(len(ingredients)), 0, maxScore), gapMatched
}

// dosageOptimal checks the ingredient's dosage against the curated
// optimal-dosage table. Ingredients absent from the table are treated as
// optimally dosed by default; table keys are tried in sorted order so the
// lookup is deterministic when several keys match one name.
func (e *Engine) dosageOptimal(ing model.Ingredient) bool {
	name := strings.ToLower(ing.Name)
	for _, key := range e.dosageKeys {
		if !strings.Contains(name, key) {
			continue
		}
		amount := dosageAmount(ing.Dosage)
		for _, accepted := range e.tables.OptimalDosages[key] {
			if amount == accepted {
				return true
			}
		}
		return false
	}
	return true
}

// dosageAmount extracts the leading numeric token of a dosage string, e.g.
// "1000 IU" -> "1000", "2.5 mg" -> "2.5". Returns "" when the string holds
// no number.
func dosageAmount(dosage string) string {
	s := strings.TrimSpace(dosage)
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := start
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	return strings.TrimSuffix(s[start:end], ".")
}
