package roster_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/solosevn/trainingrun/internal/domain/roster"
)

func TestResolve(t *testing.T) {
	Convey("Given the built-in roster", t, func() {
		r := roster.New()

		Convey("When resolving an already-canonical name", func() {
			id := r.Resolve("Claude Opus 4.5", "")

			Convey("Then it comes back unchanged with its company", func() {
				So(id.Name, ShouldEqual, "Claude Opus 4.5")
				So(id.Company, ShouldEqual, "Anthropic")
				So(id.Provisional, ShouldBeFalse)
			})
		})

		Convey("When resolving a known alias", func() {
			id := r.Resolve("claude-opus-4-5", "")

			Convey("Then it maps to the canonical name", func() {
				So(id.Name, ShouldEqual, "Claude Opus 4.5")
				So(id.Provisional, ShouldBeFalse)
			})
		})

		Convey("When the raw name carries an org path prefix", func() {
			id := r.Resolve("anthropic/claude-opus-4-5", "")

			Convey("Then the prefix is stripped before matching", func() {
				So(id.Name, ShouldEqual, "Claude Opus 4.5")
				So(id.Provisional, ShouldBeFalse)
			})
		})

		Convey("When the raw name carries an eval-harness suffix", func() {
			id := r.Resolve("Claude Opus 4.5 (thinking)", "")

			Convey("Then the suffix is stripped before matching", func() {
				So(id.Name, ShouldEqual, "Claude Opus 4.5")
				So(id.Provisional, ShouldBeFalse)
			})
		})

		Convey("When a short Claude name omits the family prefix", func() {
			id := r.Resolve("Opus 4.5", "")

			Convey("Then it expands to the canonical form", func() {
				So(id.Name, ShouldEqual, "Claude Opus 4.5")
				So(id.Provisional, ShouldBeFalse)
			})
		})

		Convey("When casing differs from the canonical form", func() {
			id := r.Resolve("gpt-4O", "")

			Convey("Then matching is case-insensitive", func() {
				So(id.Name, ShouldEqual, "GPT-4o")
				So(id.Provisional, ShouldBeFalse)
			})
		})

		Convey("When nothing matches", func() {
			id := r.Resolve("Completely New Model 9000", "NewLab")

			Convey("Then the identity is provisional, never dropped", func() {
				So(id.Name, ShouldEqual, "Completely New Model 9000")
				So(id.Company, ShouldEqual, "NewLab")
				So(id.Provisional, ShouldBeTrue)
				So(r.Provisional(), ShouldContain, "Completely New Model 9000")
			})
		})

		Convey("When several names end up provisional", func() {
			r.Resolve("Zeta Model", "")
			r.Resolve("Alpha Model", "")
			r.Resolve("Mid Model", "")

			Convey("Then the review list comes back sorted", func() {
				So(r.Provisional(), ShouldResemble,
					[]string{"Alpha Model", "Mid Model", "Zeta Model"})
			})
		})

		Convey("When two distinct models have similar names", func() {
			a := r.Resolve("GPT-5", "")
			b := r.Resolve("GPT-5.1", "")

			Convey("Then they never merge", func() {
				So(a.Name, ShouldEqual, "GPT-5")
				So(b.Name, ShouldEqual, "GPT-5.1")
			})
		})
	})
}

func TestResolveOptions(t *testing.T) {
	Convey("Given a roster with extra aliases", t, func() {
		r := roster.New(roster.WithExtraAliases(map[string]string{
			"House Model": "Claude Opus 4.5",
		}))

		Convey("Then the extra alias resolves case-insensitively", func() {
			id := r.Resolve("house model", "")
			So(id.Name, ShouldEqual, "Claude Opus 4.5")
			So(id.Provisional, ShouldBeFalse)
		})

		Convey("Then the built-in aliases still apply", func() {
			So(r.Known("claude-opus-4-5"), ShouldBeTrue)
		})
	})

	Convey("Given a replacement roster", t, func() {
		r := roster.New(roster.WithRoster(map[string]string{"Only Model": "Lab"}))

		Convey("Then only its names are known", func() {
			So(r.Known("Only Model"), ShouldBeTrue)
			So(r.Resolve("some-other-model", "").Provisional, ShouldBeTrue)
		})
	})
}
