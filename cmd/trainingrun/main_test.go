package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/solosevn/trainingrun/internal/snapshot"
)

func setDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_ = os.Setenv("TRAININGRUN_DATA_DIR", dir)
	t.Cleanup(func() { _ = os.Unsetenv("TRAININGRUN_DATA_DIR") })
	return dir
}

func execute(args ...string) error {
	root := rootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestCommandWiring(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		root := rootCmd()

		convey.Convey("Then all subcommands are registered", func() {
			names := make(map[string]bool)
			for _, c := range root.Commands() {
				names[c.Name()] = true
			}
			for _, want := range []string{"run", "ingest", "rank", "verify", "status", "event"} {
				convey.So(names[want], convey.ShouldBeTrue)
			}
		})
	})
}

func TestPipelineEndToEnd(t *testing.T) {
	convey.Convey("Given an ingested batch of readings", t, func() {
		dir := setDataDir(t)

		batch := `[
  {"board": "trs", "source": "swebench_pct", "model": "claude-opus-4-5", "company": "", "day": "2026-02-15", "value": 74.5},
  {"board": "trs", "source": "swebench_pct", "model": "GPT-5.1", "company": "", "day": "2026-02-15", "value": 70.1},
  {"board": "trs", "source": "arena_elo", "model": "claude-opus-4-5", "company": "", "day": "2026-02-15", "value": 1440},
  {"board": "trs", "source": "arena_elo", "model": "GPT-5.1", "company": "", "day": "2026-02-15", "value": 1433},
  {"board": "trs", "source": "mmlu_pro_pct", "model": "claude-opus-4-5", "company": "", "day": "2026-02-15", "value": 89.2},
  {"board": "trs", "source": "mmlu_pro_pct", "model": "GPT-5.1", "company": "", "day": "2026-02-15", "value": 88.4},
  {"board": "trs", "source": "arc_agi2_pct", "model": "claude-opus-4-5", "company": "", "day": "2026-02-15", "value": 45.1},
  {"board": "trs", "source": "arc_agi2_pct", "model": "GPT-5.1", "company": "", "day": "2026-02-15", "value": 41.0},
  {"board": "trs", "source": "safebench_score", "model": "claude-opus-4-5", "company": "", "day": "2026-02-15", "value": 97.0},
  {"board": "trs", "source": "safebench_score", "model": "GPT-5.1", "company": "", "day": "2026-02-15", "value": 94.2}
]`
		batchFile := filepath.Join(dir, "batch.json")
		convey.So(os.WriteFile(batchFile, []byte(batch), 0o644), convey.ShouldBeNil)
		convey.So(execute("ingest", "--file", batchFile), convey.ShouldBeNil)

		convey.Convey("When the pipeline runs for the day", func() {
			err := execute("run", "--day", "2026-02-15", "--board", "trs")

			convey.Convey("Then a verified snapshot lands on disk", func() {
				convey.So(err, convey.ShouldBeNil)

				snap, loadErr := snapshot.Load(filepath.Join(dir, "trs.json"))
				convey.So(loadErr, convey.ShouldBeNil)
				convey.So(snap.Dates, convey.ShouldResemble, []string{"2026-02-15"})
				convey.So(snap.Model("Claude Opus 4.5"), convey.ShouldBeGreaterThan, -1)
				convey.So(snap.Model("GPT-5.1"), convey.ShouldBeGreaterThan, -1)
			})

			convey.Convey("And verification passes from the command line", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(execute("verify", "trs"), convey.ShouldBeNil)
			})

			convey.Convey("And the status command reports the run", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(execute("status"), convey.ShouldBeNil)
			})
		})

		convey.Convey("When a timeline event is recorded and the board re-runs", func() {
			convey.So(execute("event", "trs", "Opus 4.5 release", "--day", "2026-02-15", "--company", "Anthropic"), convey.ShouldBeNil)
			convey.So(execute("run", "--day", "2026-02-15", "--board", "trs"), convey.ShouldBeNil)

			convey.Convey("Then the snapshot carries the annotation", func() {
				snap, err := snapshot.Load(filepath.Join(dir, "trs.json"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(snap.TimelineEvents, convey.ShouldHaveLength, 1)
				convey.So(snap.TimelineEvents[0].Label, convey.ShouldEqual, "Opus 4.5 release")
			})
		})
	})
}
