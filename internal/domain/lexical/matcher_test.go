package lexical_test

import (
	"testing"

	lexical "github.com/okian/vitarank/internal/domain/lexical"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatcher(t *testing.T) {
	Convey("Given a matcher with a synonym table", t, func() {
		m := lexical.New(lexical.WithSynonyms(map[string][]string{
			"immune support": {"immune", "immunity", "defense"},
			"energy":         {"energy", "fatigue", "stamina"},
			"sleep":          {"sleep", "melatonin"},
		}))

		Convey("When a variant appears verbatim in the candidate", func() {
			Convey("Then the match is exact", func() {
				So(m.BestMatchStrength("immune support", []string{"supports immunity"}), ShouldEqual, lexical.Exact)
				So(m.Matches("immune support", "boosts your defense"), ShouldBeTrue)
			})
		})

		Convey("When only a truncated variant prefix appears", func() {
			Convey("Then the match is partial", func() {
				// "immunity" minus two runes is "immuni"; "immunization
				// aid" carries that prefix but not the full variant.
				So(m.BestMatchStrength("immune support", []string{"immunization aid"}), ShouldEqual, lexical.Partial)
			})
		})

		Convey("When no variant relates to the candidate", func() {
			Convey("Then there is no match", func() {
				So(m.BestMatchStrength("sleep", []string{"joint mobility"}), ShouldEqual, lexical.None)
				So(m.Matches("sleep", "joint mobility"), ShouldBeFalse)
			})
		})

		Convey("When the term is absent from the synonym table", func() {
			Convey("Then the raw lowercased term is the sole variant", func() {
				So(m.BestMatchStrength("Collagen", []string{"marine collagen peptides"}), ShouldEqual, lexical.Exact)
				So(m.BestMatchStrength("collagen", []string{"vitamin c"}), ShouldEqual, lexical.None)
			})
		})

		Convey("When candidates hold both partial and exact hits", func() {
			strength := m.BestMatchStrength("energy", []string{"fights fatigues", "energy support"})

			Convey("Then exact wins", func() {
				So(strength, ShouldEqual, lexical.Exact)
			})
		})

		Convey("When matching is case-insensitive", func() {
			Convey("Then casing never changes the outcome", func() {
				So(m.Matches("ENERGY", "Sustained Energy Blend"), ShouldBeTrue)
				So(m.Matches("Immune Support", "IMMUNITY COMPLEX"), ShouldBeTrue)
			})
		})

		Convey("When the candidate is empty", func() {
			Convey("Then nothing matches", func() {
				So(m.Matches("energy", ""), ShouldBeFalse)
				So(m.BestMatchStrength("energy", nil), ShouldEqual, lexical.None)
			})
		})
	})

	Convey("Given short variants near the prefix cutoff", t, func() {
		m := lexical.New(lexical.WithSynonyms(map[string][]string{
			"eye health": {"eye", "lutein"},
		}))

		Convey("When the variant is too short to truncate", func() {
			Convey("Then it can only match exactly", func() {
				// "eye" cannot produce a 4-rune prefix shorter than itself.
				So(m.BestMatchStrength("eye health", []string{"eyesight"}), ShouldEqual, lexical.Exact)
				So(m.BestMatchStrength("eye health", []string{"luteic acid"}), ShouldEqual, lexical.Partial)
			})
		})
	})

	Convey("Given strength values", t, func() {
		Convey("When rendered as strings", func() {
			So(lexical.Exact.String(), ShouldEqual, "exact")
			So(lexical.Partial.String(), ShouldEqual, "partial")
			So(lexical.None.String(), ShouldEqual, "none")
		})
	})
}
