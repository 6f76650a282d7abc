package scoring

import (
	"strings"

	"github.com/okian/vitarank/internal/domain/model"
)

// credibilityBase is the starting credibility score before bonuses.
const credibilityBase = 50.0

// credibility scores a product from its certifications, evidence strength,
// and brand reputation. Certification bonuses are looked up
// case-insensitively with a small default for unrecognized tags; unknown
// evidence or brand values earn nothing rather than erroring.
func (e *Engine) credibility(product model.ProductCandidate) float64 {
	score := credibilityBase

	for _, cert := range product.Certifications {
		bonus, ok := e.tables.CertificationBonuses[strings.ToLower(strings.TrimSpace(cert))]
		if !ok {
			bonus = e.tables.DefaultCertificationBonus
		}
		score += bonus
	}

	score += e.tables.EvidenceBonuses[strings.ToLower(string(product.EvidenceStrength))]
	score += e.tables.BrandBonuses[strings.ToLower(string(product.BrandReputation))]

	return clamp(score, 0, maxScore)
}
