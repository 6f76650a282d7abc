// Package model contains domain models passed between layers.
package model

import "strings"

// Gender is the user's declared gender.
type Gender string

// Recognized genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender normalizes a free-form gender string. Unrecognized values map
// to GenderOther rather than erroring.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderOther
	}
}

// EvidenceStrength grades the clinical evidence behind a product.
type EvidenceStrength string

// Recognized evidence strengths.
const (
	EvidenceHigh     EvidenceStrength = "high"
	EvidenceModerate EvidenceStrength = "moderate"
	EvidenceLow      EvidenceStrength = "low"
)

// ParseEvidenceStrength normalizes an evidence string. Unrecognized values
// map to EvidenceLow so they earn no bonus.
func ParseEvidenceStrength(s string) EvidenceStrength {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return EvidenceHigh
	case "moderate", "medium":
		return EvidenceModerate
	default:
		return EvidenceLow
	}
}

// BrandReputation grades the product's brand.
type BrandReputation string

// Recognized brand reputations. BrandUnknown earns no bonus and no penalty.
const (
	BrandExcellent BrandReputation = "excellent"
	BrandGood      BrandReputation = "good"
	BrandFair      BrandReputation = "fair"
	BrandPoor      BrandReputation = "poor"
	BrandUnknown   BrandReputation = "unknown"
)

// ParseBrandReputation normalizes a brand reputation string.
func ParseBrandReputation(s string) BrandReputation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excellent":
		return BrandExcellent
	case "good":
		return BrandGood
	case "fair":
		return BrandFair
	case "poor":
		return BrandPoor
	default:
		return BrandUnknown
	}
}

// UserProfile is the health profile a match request is scored against.
// It is read-only for the engine; all string fields are compared
// case-insensitively downstream and empty sets degrade to neutral scores.
type UserProfile struct {
	Goals              []string `json:"goals" koanf:"goals"`
	DietPreferences    []string `json:"diet_preferences" koanf:"diet_preferences"`
	CurrentSupplements []string `json:"current_supplements" koanf:"current_supplements"`
	Medications        []string `json:"medications" koanf:"medications"`
	Allergies          []string `json:"allergies" koanf:"allergies"`
	Age                int      `json:"age" koanf:"age"`
	Gender             Gender   `json:"gender" koanf:"gender"`
	HealthConditions   []string `json:"health_conditions" koanf:"health_conditions"`
	NutrientGaps       []string `json:"nutrient_gaps" koanf:"nutrient_gaps"`
}

// Ingredient is one active ingredient of a product.
type Ingredient struct {
	Name       string `json:"name" koanf:"name"`
	Dosage     string `json:"dosage" koanf:"dosage"`
	DailyValue string `json:"daily_value,omitempty" koanf:"daily_value"`
	Form       string `json:"form,omitempty" koanf:"form"`
}

// ProductCandidate is one catalog entry considered for a match. The engine
// never mutates it.
type ProductCandidate struct {
	ID                string           `json:"id" koanf:"id"`
	Name              string           `json:"name" koanf:"name"`
	Category          string           `json:"category" koanf:"category"`
	Ingredients       []Ingredient     `json:"ingredients" koanf:"ingredients"`
	Benefits          []string         `json:"benefits" koanf:"benefits"`
	Certifications    []string         `json:"certifications" koanf:"certifications"`
	Contraindications []string         `json:"contraindications" koanf:"contraindications"`
	AllergenWarnings  []string         `json:"allergen_warnings" koanf:"allergen_warnings"`
	EvidenceStrength  EvidenceStrength `json:"evidence_strength" koanf:"evidence_strength"`
	BrandReputation   BrandReputation  `json:"brand_reputation" koanf:"brand_reputation"`
}

// MatchResult is the scored outcome for a single product. TotalScore is
// always the weighted sum of the five sub-scores, rounded and clamped to
// [0,100]; it is never computed independently.
type MatchResult struct {
	GoalFit             float64  `json:"goal_fit"`
	IngredientAlignment float64  `json:"ingredient_alignment"`
	SafetyProfile       float64  `json:"safety_profile"`
	Credibility         float64  `json:"credibility"`
	Personalization     float64  `json:"personalization"`
	TotalScore          int      `json:"total_score"`
	Warnings            []string `json:"warnings"`
	Recommendations     []string `json:"recommendations"`
}

// ScoredProduct pairs a catalog entry with its match result for ranked output.
type ScoredProduct struct {
	Product ProductCandidate `json:"product"`
	Result  MatchResult      `json:"result"`
}
