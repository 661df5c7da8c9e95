package scoring_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/solosevn/trainingrun/internal/domain/normalize"
	"github.com/solosevn/trainingrun/internal/domain/registry"
	"github.com/solosevn/trainingrun/internal/domain/scoring"
)

// threePillarBoard is a minimal board with one source per pillar, weighted
// 0.5 / 0.3 / 0.2 and requiring two non-null pillars to qualify.
func threePillarBoard() registry.Board {
	return registry.Board{
		Key:              "bench",
		Name:             "Bench",
		FormulaVersion:   "v1.0",
		QualificationMin: 2,
		Pillars: []registry.Pillar{
			{Key: "reasoning", Weight: 0.5, Sources: []registry.Source{
				{Key: "src_reasoning", SubWeight: 0.5, Rule: normalize.Identity},
			}},
			{Key: "coding", Weight: 0.3, Sources: []registry.Source{
				{Key: "src_coding", SubWeight: 0.3, Rule: normalize.Identity},
			}},
			{Key: "knowledge", Weight: 0.2, Sources: []registry.Source{
				{Key: "src_knowledge", SubWeight: 0.2, Rule: normalize.Identity},
			}},
		},
	}
}

func TestPillarScore(t *testing.T) {
	Convey("Given a pillar with two weighted sources", t, func() {
		pillar := registry.Pillar{
			Key:    "coding",
			Weight: 0.4,
			Sources: []registry.Source{
				{Key: "src_a", SubWeight: 0.3, Rule: normalize.Identity},
				{Key: "src_b", SubWeight: 0.1, Rule: normalize.Identity},
			},
		}
		composer := scoring.NewComposer(threePillarBoard())

		Convey("When both sources report", func() {
			score, err := composer.PillarScore(pillar, map[string]float64{
				"src_a": 80,
				"src_b": 40,
			})

			Convey("Then the sources combine by sub-weight", func() {
				So(err, ShouldBeNil)
				So(score, ShouldNotBeNil)
				// (80*0.3 + 40*0.1) / 0.4
				So(*score, ShouldEqual, 70)
			})
		})

		Convey("When one source is missing", func() {
			score, err := composer.PillarScore(pillar, map[string]float64{"src_b": 40})

			Convey("Then the remaining sub-weight is renormalized", func() {
				So(err, ShouldBeNil)
				So(score, ShouldNotBeNil)
				So(*score, ShouldEqual, 40)
			})
		})

		Convey("When every source is missing", func() {
			score, err := composer.PillarScore(pillar, map[string]float64{})

			Convey("Then the pillar is null, not zero", func() {
				So(err, ShouldBeNil)
				So(score, ShouldBeNil)
			})
		})

		Convey("When a value escaped upstream validation", func() {
			_, err := composer.PillarScore(pillar, map[string]float64{"src_a": 101})

			Convey("Then it is an error rather than a clamp", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, scoring.ErrValueOutOfRange)
			})
		})
	})
}

func TestCompose(t *testing.T) {
	Convey("Given a three-pillar board requiring two non-null pillars", t, func() {
		composer := scoring.NewComposer(threePillarBoard())
		ctx := context.Background()

		Convey("When all pillars report", func() {
			rec, err := composer.Compose(ctx, "Model A", "Lab A", "2026-02-16", map[string]float64{
				"src_reasoning": 80,
				"src_coding":    90,
				"src_knowledge": 60,
			})

			Convey("Then the composite weights all three", func() {
				So(err, ShouldBeNil)
				So(rec.Composite, ShouldNotBeNil)
				// 80*0.5 + 90*0.3 + 60*0.2
				So(*rec.Composite, ShouldEqual, 79)
				So(rec.NonNullPillars(), ShouldEqual, 3)
			})
		})

		Convey("When one pillar is null", func() {
			rec, err := composer.Compose(ctx, "Model A", "Lab A", "2026-02-16", map[string]float64{
				"src_reasoning": 80,
				"src_knowledge": 60,
			})

			Convey("Then the composite renormalizes over the non-null subset", func() {
				So(err, ShouldBeNil)
				So(rec.Pillars["coding"], ShouldBeNil)
				So(rec.Composite, ShouldNotBeNil)
				// (80*0.5 + 60*0.2) / 0.7
				So(*rec.Composite, ShouldEqual, 74.29)
			})
		})

		Convey("When non-null pillars fall below the qualification threshold", func() {
			rec, err := composer.Compose(ctx, "Model A", "Lab A", "2026-02-16", map[string]float64{
				"src_reasoning": 80,
			})

			Convey("Then the composite is null and it is not an error", func() {
				So(err, ShouldBeNil)
				So(rec.Composite, ShouldBeNil)
				So(rec.Pillars["reasoning"], ShouldNotBeNil)
				So(*rec.Pillars["reasoning"], ShouldEqual, 80)
			})
		})

		Convey("When no source reports at all", func() {
			rec, err := composer.Compose(ctx, "Model A", "Lab A", "2026-02-16", nil)

			Convey("Then every pillar and the composite are null", func() {
				So(err, ShouldBeNil)
				So(rec.Composite, ShouldBeNil)
				So(rec.NonNullPillars(), ShouldEqual, 0)
			})
		})

		Convey("When composing the same inputs twice", func() {
			values := map[string]float64{
				"src_reasoning": 73.4567,
				"src_coding":    88.1,
				"src_knowledge": 12.9999,
			}
			first, err1 := composer.Compose(ctx, "Model A", "Lab A", "2026-02-16", values)
			second, err2 := composer.Compose(ctx, "Model A", "Lab A", "2026-02-16", values)

			Convey("Then the outputs are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(*first.Composite, ShouldEqual, *second.Composite)
				for key := range first.Pillars {
					So(*first.Pillars[key], ShouldEqual, *second.Pillars[key])
				}
			})
		})
	})
}
