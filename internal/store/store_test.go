package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/solosevn/trainingrun/internal/domain/model"
	"github.com/solosevn/trainingrun/internal/snapshot"
	"github.com/solosevn/trainingrun/internal/store"
)

func openTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "readings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func reading(source, mdl string, value *float64) model.Reading {
	return model.Reading{
		Board:      "trs",
		Source:     source,
		Model:      mdl,
		Company:    "Lab",
		Day:        "2026-02-16",
		Value:      value,
		RecordedAt: time.Date(2026, 2, 16, 8, 0, 0, 0, time.UTC),
	}
}

func TestAddReading(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := openTestStore(t)
		ctx := context.Background()

		Convey("When a reading is added", func() {
			r := reading("swebench_pct", "Model A", model.Float(72.5))
			superseded, err := s.AddReading(ctx, &r)

			Convey("Then it is stored without superseding anything", func() {
				So(err, ShouldBeNil)
				So(superseded, ShouldBeFalse)

				got, err := s.LatestForDay(ctx, "trs", "2026-02-16")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].Model, ShouldEqual, "Model A")
				So(*got[0].Value, ShouldEqual, 72.5)
			})

			Convey("And when the same key is recorded again", func() {
				r2 := reading("swebench_pct", "Model A", model.Float(73.0))
				superseded, err := s.AddReading(ctx, &r2)

				Convey("Then the newer reading supersedes the older", func() {
					So(err, ShouldBeNil)
					So(superseded, ShouldBeTrue)

					got, err := s.LatestForDay(ctx, "trs", "2026-02-16")
					So(err, ShouldBeNil)
					So(got, ShouldHaveLength, 1)
					So(*got[0].Value, ShouldEqual, 73.0)
				})

				Convey("And the older row stays in the history", func() {
					So(err, ShouldBeNil)
					hist, err := s.History(ctx, "trs", "swebench_pct", "Model A", "2026-02-16")
					So(err, ShouldBeNil)
					So(hist, ShouldHaveLength, 2)
					So(*hist[0].Value, ShouldEqual, 72.5)
					So(*hist[1].Value, ShouldEqual, 73.0)
				})
			})
		})

		Convey("When a null reading is added", func() {
			r := reading("arena_elo", "Model B", nil)
			_, err := s.AddReading(ctx, &r)

			Convey("Then the null survives the round trip", func() {
				So(err, ShouldBeNil)
				got, err := s.LatestForDay(ctx, "trs", "2026-02-16")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].Value, ShouldBeNil)
			})
		})

		Convey("When a batch is added", func() {
			err := s.AddReadings(ctx, []model.Reading{
				reading("swebench_pct", "Model A", model.Float(70)),
				reading("swebench_pct", "Model B", model.Float(65)),
				reading("arena_elo", "Model A", model.Float(1400)),
			})

			Convey("Then the day's batch returns one row per source and model", func() {
				So(err, ShouldBeNil)
				got, err := s.LatestForDay(ctx, "trs", "2026-02-16")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 3)
			})

			Convey("And other boards and days stay empty", func() {
				So(err, ShouldBeNil)
				got, err := s.LatestForDay(ctx, "trscode", "2026-02-16")
				So(err, ShouldBeNil)
				So(got, ShouldBeEmpty)

				got, err = s.LatestForDay(ctx, "trs", "2026-02-17")
				So(err, ShouldBeNil)
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When a provisional reading is added", func() {
			r := reading("swebench_pct", "Brand New Model", model.Float(50))
			r.Provisional = true
			_, err := s.AddReading(ctx, &r)

			Convey("Then it is listed for review", func() {
				So(err, ShouldBeNil)
				names, err := s.ProvisionalModels(ctx, "trs")
				So(err, ShouldBeNil)
				So(names, ShouldResemble, []string{"Brand New Model"})
			})
		})
	})
}

func TestTimelineEvents(t *testing.T) {
	Convey("Given recorded timeline events", t, func() {
		s := openTestStore(t)
		ctx := context.Background()

		So(s.AddTimelineEvent(ctx, "trs", snapshot.TimelineEvent{
			Date: "2026-02-16", Label: "Model B release", Company: "Lab B",
		}), ShouldBeNil)
		So(s.AddTimelineEvent(ctx, "trs", snapshot.TimelineEvent{
			Date: "2026-02-10", Label: "Model A release", Company: "Lab A",
		}), ShouldBeNil)

		Convey("Then they come back date-ordered per board", func() {
			events, err := s.TimelineEvents(ctx, "trs")
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 2)
			So(events[0].Label, ShouldEqual, "Model A release")
			So(events[1].Label, ShouldEqual, "Model B release")
		})

		Convey("Then other boards see none", func() {
			events, err := s.TimelineEvents(ctx, "trscode")
			So(err, ShouldBeNil)
			So(events, ShouldBeEmpty)
		})
	})
}
