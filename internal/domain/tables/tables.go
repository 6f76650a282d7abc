// Package tables holds the curated lookup tables the scoring engine is
// built from: goal synonyms, medication interactions, optimal dosages,
// certification/evidence/brand bonuses, diet conflicts, and recommendation
// bands. Tables are immutable after construction and injected into the
// engine, so deployments can tune scoring without touching code.
package tables

import (
	"sort"
	"strings"
)

// Band maps a minimum total score to the recommendation message shown for it.
type Band struct {
	Min     int    `koanf:"min"`
	Message string `koanf:"message"`
}

// Tables bundles every lookup table consumed by the engine.
type Tables struct {
	// Synonyms maps a recognized goal/nutrient keyword to its lowercase
	// keyword variants used by the lexical matcher.
	Synonyms map[string][]string `koanf:"synonyms"`

	// Interactions maps a medication name to ingredient substances known
	// to interact with it.
	Interactions map[string][]string `koanf:"interactions"`

	// OptimalDosages maps a nutrient name to the numeric dosage strings
	// accepted as optimal, e.g. "vitamin d" -> ["1000","2000","4000"].
	OptimalDosages map[string][]string `koanf:"optimal_dosages"`

	// CertificationBonuses maps a certification tag to its credibility
	// bonus. Unrecognized tags earn DefaultCertificationBonus.
	CertificationBonuses      map[string]float64 `koanf:"certification_bonuses"`
	DefaultCertificationBonus float64            `koanf:"default_certification_bonus"`

	// EvidenceBonuses and BrandBonuses map enum values to credibility
	// bonuses. Missing keys earn zero.
	EvidenceBonuses map[string]float64 `koanf:"evidence_bonuses"`
	BrandBonuses    map[string]float64 `koanf:"brand_bonuses"`

	// DietConflicts maps a diet preference to allergen tags that conflict
	// with it, e.g. "vegetarian" -> ["gelatin","fish"].
	DietConflicts map[string][]string `koanf:"diet_conflicts"`

	// RecommendationBands lists score bands with their messages. Bands are
	// matched highest Min first.
	RecommendationBands []Band `koanf:"recommendation_bands"`

	// Add-on recommendation lines appended after the band message.
	CertifiedAddOn   string `koanf:"certified_add_on"`
	NutrientGapAddOn string `koanf:"nutrient_gap_add_on"`
}

// Defaults returns the curated default tables.
func Defaults() *Tables {
	t := &Tables{
		Synonyms: map[string][]string{
			"heart health":      {"cardiovascular", "heart", "circulation", "cholesterol", "blood pressure"},
			"immune support":    {"immune", "immunity", "defense", "antioxidant", "resistance"},
			"energy":            {"energy", "fatigue", "stamina", "vitality", "b12"},
			"sleep":             {"sleep", "melatonin", "relaxation", "restful"},
			"brain function":    {"brain", "cognitive", "memory", "focus", "mental clarity"},
			"joint health":      {"joint", "cartilage", "mobility", "inflammation"},
			"bone health":       {"bone", "calcium", "density", "skeletal"},
			"digestion":         {"digestion", "digestive", "gut", "probiotic", "fiber"},
			"muscle growth":     {"muscle", "protein", "strength", "recovery"},
			"stress relief":     {"stress", "anxiety", "cortisol", "calming", "mood"},
			"skin health":       {"skin", "collagen", "complexion", "elasticity"},
			"weight management": {"weight", "metabolism", "appetite", "fat burning"},
			"eye health":        {"eye", "vision", "lutein", "macular"},
		},
		Interactions: map[string][]string{
			"warfarin":      {"vitamin k", "fish oil", "omega-3", "ginkgo", "garlic", "vitamin e"},
			"aspirin":       {"fish oil", "omega-3", "ginkgo", "garlic", "turmeric"},
			"atorvastatin":  {"red yeast rice", "niacin", "st. john's wort"},
			"simvastatin":   {"red yeast rice", "niacin", "st. john's wort"},
			"sertraline":    {"st. john's wort", "5-htp", "sam-e", "tryptophan"},
			"fluoxetine":    {"st. john's wort", "5-htp", "sam-e", "tryptophan"},
			"levothyroxine": {"calcium", "iron", "magnesium", "biotin"},
			"metformin":     {"berberine", "chromium", "bitter melon"},
			"lisinopril":    {"potassium", "licorice"},
			"birth control": {"st. john's wort"},
		},
		OptimalDosages: map[string][]string{
			"vitamin d":   {"1000", "2000", "4000"},
			"vitamin c":   {"500", "1000"},
			"vitamin b12": {"500", "1000", "2500"},
			"magnesium":   {"200", "300", "400"},
			"zinc":        {"15", "25", "30", "50"},
			"omega-3":     {"1000", "2000"},
			"fish oil":    {"1000", "2000"},
			"iron":        {"18", "25", "65"},
			"calcium":     {"500", "600", "1000", "1200"},
			"melatonin":   {"1", "3", "5", "10"},
		},
		CertificationBonuses: map[string]float64{
			"third-party-tested": 15,
			"fda-registered":     20,
			"gmp-certified":      15,
			"usp-verified":       10,
			"nsf-certified":      15,
			"organic":            5,
			"non-gmo":            5,
		},
		DefaultCertificationBonus: 5,
		EvidenceBonuses: map[string]float64{
			"high":     20,
			"moderate": 10,
			"low":      0,
		},
		BrandBonuses: map[string]float64{
			"excellent": 15,
			"good":      10,
			"fair":      5,
			"poor":      -10,
		},
		DietConflicts: map[string][]string{
			"vegetarian":  {"gelatin", "fish"},
			"dairy-free":  {"dairy", "lactose"},
			"gluten-free": {"gluten", "wheat"},
		},
		RecommendationBands: []Band{
			{Min: 90, Message: "Excellent match for your health profile and goals."},
			{Min: 80, Message: "Great match that aligns well with your needs."},
			{Min: 70, Message: "Good match, review warnings before use."},
			{Min: 60, Message: "Moderate match, consider alternatives."},
			{Min: 0, Message: "Not recommended for your profile."},
		},
		CertifiedAddOn:   "Third-party tested for quality assurance.",
		NutrientGapAddOn: "Addresses your identified nutrient gaps.",
	}
	t.normalize()
	return t
}

// RecommendationFor returns the band message for a total score. Bands are
// evaluated highest Min first; an empty table yields an empty message.
func (t *Tables) RecommendationFor(total int) string {
	for _, b := range t.RecommendationBands {
		if total >= b.Min {
			return b.Message
		}
	}
	return ""
}

// normalize lowercases all table keys and variants so lookups stay
// case-insensitive regardless of how the tables were authored, and sorts
// recommendation bands by Min descending.
func (t *Tables) normalize() {
	t.Synonyms = lowerListMap(t.Synonyms)
	t.Interactions = lowerListMap(t.Interactions)
	t.OptimalDosages = lowerListMap(t.OptimalDosages)
	t.DietConflicts = lowerListMap(t.DietConflicts)
	t.CertificationBonuses = lowerScoreMap(t.CertificationBonuses)
	t.EvidenceBonuses = lowerScoreMap(t.EvidenceBonuses)
	t.BrandBonuses = lowerScoreMap(t.BrandBonuses)
	sort.SliceStable(t.RecommendationBands, func(i, j int) bool {
		return t.RecommendationBands[i].Min > t.RecommendationBands[j].Min
	})
}

func lowerListMap(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, vs := range in {
		lowered := make([]string, len(vs))
		for i, v := range vs {
			lowered[i] = strings.ToLower(strings.TrimSpace(v))
		}
		out[strings.ToLower(strings.TrimSpace(k))] = lowered
	}
	return out
}

func lowerScoreMap(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
