package scoring

import "github.com/okian/vitarank/internal/domain/lexical"

// Goal-fit scoring constants.
const (
	goalExactPoints    = 100.0
	goalPartialPoints  = 75.0
	broadSpectrumBonus = 10.0 // applied when more than half the goals matched
)

// goalFit scores how well the product's benefits align with the user's
// goals. Each goal contributes its strongest benefit match (exact 100,
// partial 75, none 0); the contributions are averaged and a flat bonus
// rewards products covering more than half the goals. Empty goals return a
// neutral score.
func (e *Engine) goalFit(goals, benefits []string) float64 {
	if len(goals) == 0 {
		return neutralScore
	}

	var sum float64
	matched := 0
	for _, goal := range goals {
		switch e.matcher.BestMatchStrength(goal, benefits) {
		case lexical.Exact:
			sum += goalExactPoints
			matched++
		case lexical.Partial:
			sum += goalPartialPoints
			matched++
		case lexical.None:
		}
	}

	score := sum / float64(len(goals))
	if matched*2 > len(goals) {
		score += broadSpectrumBonus
	}
	return clamp(score, 0, maxScore)
}
