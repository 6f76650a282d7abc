package scoring_test

import (
	"context"
	"math"
	"testing"

	model "github.com/okian/vitarank/internal/domain/model"
	scoring "github.com/okian/vitarank/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func newEngine() *scoring.Engine {
	e, err := scoring.New()
	So(err, ShouldBeNil)
	return e
}

func compose(e *scoring.Engine, user *model.UserProfile, product model.ProductCandidate) model.MatchResult {
	res, err := e.Compose(context.Background(), user, product)
	So(err, ShouldBeNil)
	return res
}

func TestNew(t *testing.T) {
	Convey("Given engine construction", t, func() {
		Convey("When using default options", func() {
			e, err := scoring.New()

			Convey("Then the engine is ready", func() {
				So(err, ShouldBeNil)
				So(e, ShouldNotBeNil)
				So(e.Matcher(), ShouldNotBeNil)
			})
		})

		Convey("When the weights do not sum to one", func() {
			_, err := scoring.New(scoring.WithWeights(scoring.Weights{
				GoalFit:             0.5,
				IngredientAlignment: 0.5,
				SafetyProfile:       0.5,
			}))

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, scoring.ErrInvalidWeights)
			})
		})

		Convey("When a weight is negative", func() {
			_, err := scoring.New(scoring.WithWeights(scoring.Weights{
				GoalFit:             -0.1,
				IngredientAlignment: 0.4,
				SafetyProfile:       0.3,
				Credibility:         0.2,
				Personalization:     0.2,
			}))

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, scoring.ErrInvalidWeights)
			})
		})
	})
}

func TestCompose(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := newEngine()

		Convey("When the profile is nil", func() {
			_, err := e.Compose(context.Background(), nil, model.ProductCandidate{})

			Convey("Then composition is rejected", func() {
				So(err, ShouldWrap, scoring.ErrNilProfile)
			})
		})

		Convey("When scoring an empty profile against an empty product", func() {
			res := compose(e, &model.UserProfile{}, model.ProductCandidate{})

			Convey("Then neutral and perfect defaults apply", func() {
				So(res.GoalFit, ShouldEqual, 50)
				So(res.IngredientAlignment, ShouldEqual, 50)
				So(res.SafetyProfile, ShouldEqual, 100)
				So(res.Personalization, ShouldEqual, 100)
				So(res.Warnings, ShouldBeEmpty)
			})
		})

		Convey("When scoring any profile/product pair", func() {
			user := &model.UserProfile{
				Goals:              []string{"energy", "sleep"},
				Medications:        []string{"warfarin"},
				Allergies:          []string{"fish"},
				CurrentSupplements: []string{"magnesium"},
				Age:                34,
				Gender:             model.GenderFemale,
				NutrientGaps:       []string{"magnesium"},
			}
			product := model.ProductCandidate{
				ID:   "sleep-complex",
				Name: "Sleep Complex",
				Ingredients: []model.Ingredient{
					{Name: "Magnesium Glycinate", Dosage: "300 mg"},
					{Name: "Melatonin", Dosage: "3 mg"},
				},
				Benefits:         []string{"restful sleep", "relaxation"},
				Certifications:   []string{"gmp-certified"},
				AllergenWarnings: []string{"contains soy"},
				EvidenceStrength: model.EvidenceModerate,
				BrandReputation:  model.BrandGood,
			}
			res := compose(e, user, product)

			Convey("Then every sub-score stays within [0,100]", func() {
				for _, s := range []float64{res.GoalFit, res.IngredientAlignment, res.SafetyProfile, res.Credibility, res.Personalization} {
					So(s, ShouldBeGreaterThanOrEqualTo, 0)
					So(s, ShouldBeLessThanOrEqualTo, 100)
				}
			})

			Convey("Then the total is the rounded weighted sum", func() {
				w := scoring.DefaultWeights()
				expected := res.GoalFit*w.GoalFit +
					res.IngredientAlignment*w.IngredientAlignment +
					res.SafetyProfile*w.SafetyProfile +
					res.Credibility*w.Credibility +
					res.Personalization*w.Personalization
				So(res.TotalScore, ShouldEqual, int(math.Round(expected)))
				So(res.TotalScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(res.TotalScore, ShouldBeLessThanOrEqualTo, 100)
			})

			Convey("Then composition is deterministic", func() {
				for i := 0; i < 20; i++ {
					again := compose(e, user, product)
					So(again, ShouldResemble, res)
				}
			})
		})
	})
}

func TestGoalFit(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := newEngine()

		Convey("When the user declares no goals", func() {
			res := compose(e, &model.UserProfile{}, model.ProductCandidate{
				Benefits: []string{"energy", "immunity"},
			})

			Convey("Then goal fit is neutral", func() {
				So(res.GoalFit, ShouldEqual, 50)
			})
		})

		Convey("When every goal matches a benefit exactly", func() {
			user := &model.UserProfile{Goals: []string{"energy"}}
			res := compose(e, user, model.ProductCandidate{
				Benefits: []string{"all-day energy support"},
			})

			Convey("Then goal fit caps at 100", func() {
				// 100 average plus the broad-spectrum bonus, clamped.
				So(res.GoalFit, ShouldEqual, 100)
			})
		})

		Convey("When half or fewer goals match", func() {
			user := &model.UserProfile{Goals: []string{"energy", "sleep"}}
			res := compose(e, user, model.ProductCandidate{
				Benefits: []string{"fights fatigue"},
			})

			Convey("Then no broad-spectrum bonus applies", func() {
				// One exact match out of two goals: 100/2 = 50.
				So(res.GoalFit, ShouldEqual, 50)
			})
		})

		Convey("When more than half the goals match", func() {
			user := &model.UserProfile{Goals: []string{"energy", "sleep", "digestion"}}
			res := compose(e, user, model.ProductCandidate{
				Benefits: []string{"fights fatigue", "restful sleep"},
			})

			Convey("Then the broad-spectrum bonus applies", func() {
				// (100+100+0)/3 = 66.67, +10 bonus.
				So(res.GoalFit, ShouldAlmostEqual, 200.0/3+10, 0.001)
			})
		})
	})
}

func TestIngredientAlignment(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := newEngine()
		user := &model.UserProfile{NutrientGaps: []string{"vitamin d"}}

		Convey("When the product has no ingredients", func() {
			res := compose(e, user, model.ProductCandidate{})

			Convey("Then alignment is neutral", func() {
				So(res.IngredientAlignment, ShouldEqual, 50)
			})
		})

		Convey("When an ingredient closes a declared gap at optimal dosage", func() {
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{{Name: "Vitamin D3", Dosage: "2000 IU"}},
			})

			Convey("Then it earns gap credit plus the dosage bonus", func() {
				So(res.IngredientAlignment, ShouldEqual, 100)
			})
		})

		Convey("When an ingredient closes a gap at a non-optimal dosage", func() {
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{{Name: "Vitamin D3", Dosage: "250 IU"}},
			})

			Convey("Then only the gap credit applies", func() {
				So(res.IngredientAlignment, ShouldEqual, 90)
			})
		})

		Convey("When an ingredient is unrelated to any gap", func() {
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{{Name: "Ashwagandha Extract", Dosage: "600 mg"}},
			})

			Convey("Then it earns baseline credit plus the default dosage bonus", func() {
				// Absent from the dosage table counts as optimally dosed.
				So(res.IngredientAlignment, ShouldEqual, 70)
			})
		})

		Convey("When a gap matches, a nutrient-gap recommendation is added", func() {
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{{Name: "Vitamin D3", Dosage: "2000 IU"}},
			})

			So(res.Recommendations, ShouldContain, "Addresses your identified nutrient gaps.")
		})
	})
}

func TestSafetyProfile(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := newEngine()

		Convey("When a medication interacts with an ingredient", func() {
			user := &model.UserProfile{Medications: []string{"Warfarin"}, Age: 40}
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{{Name: "Fish Oil Concentrate", Dosage: "1000 mg"}},
			})

			Convey("Then the interaction penalty and warning apply", func() {
				So(res.SafetyProfile, ShouldEqual, 70)
				So(res.Warnings, ShouldContain, "May interact with Warfarin. Consult your doctor.")
			})
		})

		Convey("When a health condition is contraindicated", func() {
			user := &model.UserProfile{HealthConditions: []string{"kidney disease"}, Age: 40}
			res := compose(e, user, model.ProductCandidate{
				Contraindications: []string{"kidney disease"},
			})

			Convey("Then the contraindication penalty and warning apply", func() {
				So(res.SafetyProfile, ShouldEqual, 60)
				So(res.Warnings, ShouldContain, "Not recommended for kidney disease.")
			})
		})

		Convey("When the product carries a matching allergen", func() {
			user := &model.UserProfile{Allergies: []string{"fish"}, Age: 40}
			res := compose(e, user, model.ProductCandidate{
				AllergenWarnings: []string{"contains fish"},
			})

			Convey("Then the allergen penalty and warning apply", func() {
				So(res.SafetyProfile, ShouldEqual, 50)
				So(res.Warnings, ShouldContain, "Contains fish. Not suitable for your allergies.")
			})
		})

		Convey("When the pregnancy guard applies", func() {
			product := model.ProductCandidate{Contraindications: []string{"avoid during pregnancy"}}

			Convey("And the user is a woman under the cutoff", func() {
				user := &model.UserProfile{Gender: model.GenderFemale, Age: 30, HealthConditions: []string{}}
				res := compose(e, user, product)

				Convey("Then the score drops without a warning", func() {
					So(res.SafetyProfile, ShouldEqual, 80)
					So(res.Warnings, ShouldBeEmpty)
				})
			})

			Convey("And the user is past the cutoff", func() {
				user := &model.UserProfile{Gender: model.GenderFemale, Age: 60}
				res := compose(e, user, product)

				Convey("Then no deduction applies", func() {
					So(res.SafetyProfile, ShouldEqual, 100)
				})
			})
		})

		Convey("When the user is a minor and the product excludes children", func() {
			user := &model.UserProfile{Age: 12}
			res := compose(e, user, model.ProductCandidate{
				Contraindications: []string{"not for children"},
			})

			Convey("Then the life-stage deduction applies silently", func() {
				So(res.SafetyProfile, ShouldEqual, 80)
				So(res.Warnings, ShouldBeEmpty)
			})
		})

		Convey("When violations stack past zero", func() {
			user := &model.UserProfile{
				Medications:      []string{"warfarin", "aspirin"},
				Allergies:        []string{"fish"},
				HealthConditions: []string{"kidney disease"},
				Age:              40,
			}
			res := compose(e, user, model.ProductCandidate{
				Ingredients:       []model.Ingredient{{Name: "Fish Oil", Dosage: "1000 mg"}},
				AllergenWarnings:  []string{"contains fish"},
				Contraindications: []string{"kidney disease"},
			})

			Convey("Then the score floors at zero with every warning kept", func() {
				So(res.SafetyProfile, ShouldEqual, 0)
				So(len(res.Warnings), ShouldEqual, 4)
			})
		})

		Convey("When adding a safety violation to an existing profile", func() {
			base := &model.UserProfile{Age: 40}
			worse := &model.UserProfile{Age: 40, Allergies: []string{"fish"}}
			product := model.ProductCandidate{AllergenWarnings: []string{"contains fish"}}

			baseRes := compose(e, base, product)
			worseRes := compose(e, worse, product)

			Convey("Then the safety score never rises", func() {
				So(worseRes.SafetyProfile, ShouldBeLessThan, baseRes.SafetyProfile)
			})
		})
	})
}

func TestCredibility(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := newEngine()
		user := &model.UserProfile{}

		Convey("When the product has no credibility signals", func() {
			res := compose(e, user, model.ProductCandidate{})

			Convey("Then only the base applies", func() {
				So(res.Credibility, ShouldEqual, 50)
			})
		})

		Convey("When certifications and evidence stack", func() {
			res := compose(e, user, model.ProductCandidate{
				Certifications:   []string{"FDA-Registered", "gmp-certified"},
				EvidenceStrength: model.EvidenceHigh,
				BrandReputation:  model.BrandExcellent,
			})

			Convey("Then bonuses accumulate and clamp at 100", func() {
				// 50 + 20 + 15 + 20 + 15 = 120, clamped.
				So(res.Credibility, ShouldEqual, 100)
			})
		})

		Convey("When a certification is unrecognized", func() {
			res := compose(e, user, model.ProductCandidate{
				Certifications: []string{"shiny-sticker"},
			})

			Convey("Then the default bonus applies", func() {
				So(res.Credibility, ShouldEqual, 55)
			})
		})

		Convey("When the brand is poor", func() {
			res := compose(e, user, model.ProductCandidate{
				BrandReputation: model.BrandPoor,
			})

			Convey("Then the penalty subtracts from the base", func() {
				So(res.Credibility, ShouldEqual, 40)
			})
		})

		Convey("When any product is certified", func() {
			res := compose(e, user, model.ProductCandidate{
				Certifications: []string{"organic"},
			})

			Convey("Then the certified add-on recommendation appears", func() {
				So(res.Recommendations, ShouldContain, "Third-party tested for quality assurance.")
			})
		})
	})
}

func TestPersonalization(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := newEngine()

		Convey("When a diet preference conflicts with an allergen warning", func() {
			user := &model.UserProfile{DietPreferences: []string{"vegetarian"}}
			res := compose(e, user, model.ProductCandidate{
				AllergenWarnings: []string{"capsule contains gelatin"},
			})

			Convey("Then the conflict penalty applies", func() {
				So(res.Personalization, ShouldEqual, 70)
			})
		})

		Convey("When the user already takes an ingredient", func() {
			user := &model.UserProfile{CurrentSupplements: []string{"magnesium"}}
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{{Name: "Magnesium Citrate", Dosage: "300 mg"}},
			})

			Convey("Then the duplicate penalty applies", func() {
				So(res.Personalization, ShouldEqual, 80)
			})
		})

		Convey("When penalties stack past zero", func() {
			user := &model.UserProfile{
				DietPreferences:    []string{"vegetarian", "dairy-free", "gluten-free"},
				CurrentSupplements: []string{"magnesium", "zinc"},
			}
			res := compose(e, user, model.ProductCandidate{
				Ingredients: []model.Ingredient{
					{Name: "Magnesium Citrate", Dosage: "300 mg"},
					{Name: "Zinc Picolinate", Dosage: "25 mg"},
				},
				AllergenWarnings: []string{"contains gelatin, dairy and wheat"},
			})

			Convey("Then the score floors at zero", func() {
				So(res.Personalization, ShouldEqual, 0)
			})
		})
	})
}
