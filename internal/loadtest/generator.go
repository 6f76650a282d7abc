package loadtest

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/okian/vitarank/pkg/logger"
)

// Profile archetype cases. Each synthetic user is drawn from one of these
// buckets so the catalog sees a realistic spread of easy matches, safety
// conflicts, and empty profiles.
const (
	caseHealthyAdult     = 0
	caseAthlete          = 1
	casePregnantUser     = 2
	caseSenior           = 3
	caseAllergicUser     = 4
	casePolypharmacyUser = 5
	caseMinimalProfile   = 6
	archetypeCount       = 7
)

// Age generation ranges per archetype.
const (
	adultAgeMin     = 18
	adultAgeRange   = 40
	seniorAgeMin    = 65
	seniorAgeRange  = 25
	fertileAgeMin   = 22
	fertileAgeRange = 18
)

var (
	goalPool = []string{
		"energy", "immunity", "sleep", "muscle gain", "heart health",
		"bone health", "digestion", "stress", "focus", "joint health",
	}
	dietPool       = []string{"vegan", "vegetarian", "gluten-free", "dairy-free"}
	supplementPool = []string{"vitamin d", "fish oil", "magnesium", "zinc", "creatine"}
	medicationPool = []string{"warfarin", "statins", "ssri", "metformin", "levothyroxine"}
	allergyPool    = []string{"shellfish", "soy", "fish", "dairy", "gluten"}
	conditionPool  = []string{"hypertension", "diabetes", "kidney disease", "pregnancy"}
	gapPool        = []string{"vitamin d", "iron", "b12", "magnesium", "omega-3"}
)

// randomInt returns a uniform int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// pick returns up to n distinct entries drawn from pool.
func pick(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	seen := make(map[int]bool, n)
	for len(out) < n {
		i := randomInt(len(pool))
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, pool[i])
	}
	return out
}

// generateProfiles creates the configured number of synthetic user profiles.
func generateProfiles(ctx context.Context, config *Config, stats *Stats) ([]profile, error) {
	logger.Get().Info(ctx, "generating synthetic profiles", logger.Int("numProfiles", config.NumProfiles))

	profiles := make([]profile, config.NumProfiles)
	for i := range profiles {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		profiles[i] = generateSingleProfile()
	}

	stats.ProfilesGenerated = len(profiles)
	logger.Get().Info(ctx, "generated profiles successfully", logger.Int("count", len(profiles)))
	return profiles, nil
}

// generateSingleProfile draws one profile from the archetype distribution.
func generateSingleProfile() profile {
	switch randomInt(archetypeCount) {
	case caseHealthyAdult:
		return profile{
			Goals:        pick(goalPool, 1+randomInt(3)),
			Age:          adultAgeMin + randomInt(adultAgeRange),
			Gender:       randomGender(),
			NutrientGaps: pick(gapPool, randomInt(3)),
		}
	case caseAthlete:
		return profile{
			Goals:              []string{"muscle gain", "energy"},
			CurrentSupplements: pick(supplementPool, 1+randomInt(2)),
			Age:                adultAgeMin + randomInt(adultAgeRange),
			Gender:             randomGender(),
		}
	case casePregnantUser:
		return profile{
			Goals:            pick(goalPool, 1+randomInt(2)),
			Age:              fertileAgeMin + randomInt(fertileAgeRange),
			Gender:           "female",
			HealthConditions: []string{"pregnancy"},
			NutrientGaps:     []string{"iron", "folate"},
		}
	case caseSenior:
		return profile{
			Goals:            []string{"bone health", "heart health"},
			Medications:      pick(medicationPool, 1+randomInt(2)),
			Age:              seniorAgeMin + randomInt(seniorAgeRange),
			Gender:           randomGender(),
			HealthConditions: pick(conditionPool, randomInt(2)),
		}
	case caseAllergicUser:
		return profile{
			Goals:     pick(goalPool, 1+randomInt(3)),
			Allergies: pick(allergyPool, 1+randomInt(3)),
			Age:       adultAgeMin + randomInt(adultAgeRange),
			Gender:    randomGender(),
		}
	case casePolypharmacyUser:
		return profile{
			Goals:              pick(goalPool, 1+randomInt(2)),
			CurrentSupplements: pick(supplementPool, 2+randomInt(3)),
			Medications:        pick(medicationPool, 2+randomInt(3)),
			DietPreferences:    pick(dietPool, 1),
			Age:                adultAgeMin + randomInt(adultAgeRange),
			Gender:             randomGender(),
		}
	default:
		// Minimal profile: the empty-goals neutral path.
		return profile{
			Age:    adultAgeMin + randomInt(adultAgeRange),
			Gender: randomGender(),
		}
	}
}

func randomGender() string {
	if randomInt(2) == 0 {
		return "male"
	}
	return "female"
}
