package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/solosevn/trainingrun/internal/config"
)

func clearConfigEnvVars() {
	_ = os.Unsetenv("TRAININGRUN_CONFIG")
	_ = os.Unsetenv("TRAININGRUN_LOG_LEVEL")
	_ = os.Unsetenv("TRAININGRUN_DATA_DIR")
	_ = os.Unsetenv("TRAININGRUN_DB_PATH")
	_ = os.Unsetenv("TRAININGRUN_RUN_TIMEOUT_SEC")
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.DataDir, convey.ShouldEqual, "data")
				convey.So(cfg.RunTimeoutSec, convey.ShouldEqual, 300)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("TRAININGRUN_LOG_LEVEL", "debug")
			_ = os.Setenv("TRAININGRUN_DATA_DIR", "/var/lib/trainingrun")
			_ = os.Setenv("TRAININGRUN_RUN_TIMEOUT_SEC", "60")
			defer clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/var/lib/trainingrun")
				convey.So(cfg.RunTimeoutSec, convey.ShouldEqual, 60)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()
			yamlContent := `
log_level: "warn"
data_dir: "/srv/boards"
db_path: "/srv/boards/readings.db"
boards:
  - trs
  - trscode
`
			tmpFile := filepath.Join(t.TempDir(), "config.yaml")
			convey.So(os.WriteFile(tmpFile, []byte(yamlContent), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("TRAININGRUN_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then it should load from the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/srv/boards")
				convey.So(cfg.Boards, convey.ShouldResemble, []string{"trs", "trscode"})
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("TRAININGRUN_LOG_LEVEL", "error")
				cfg, err := config.Load()
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/srv/boards")
			})
		})

		convey.Convey("When the file carries board definitions", func() {
			clearConfigEnvVars()
			yamlContent := `
board_definitions:
  - key: internalbench
    name: Internal Bench
    formula_version: v1
    qualification_min: 1
    pillars:
      - key: reasoning
        weight: 1.0
        sources:
          - key: internal_suite
            sub_weight: 1.0
            rule: identity
`
			tmpFile := filepath.Join(t.TempDir(), "config.yaml")
			convey.So(os.WriteFile(tmpFile, []byte(yamlContent), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("TRAININGRUN_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then they replace the built-in boards", func() {
				convey.So(err, convey.ShouldBeNil)
				reg, err := cfg.Registry()
				convey.So(err, convey.ShouldBeNil)
				convey.So(reg.Keys(), convey.ShouldResemble, []string{"internalbench"})
				board, err := reg.Board("internalbench")
				convey.So(err, convey.ShouldBeNil)
				convey.So(board.FormulaVersion, convey.ShouldEqual, "v1")
				convey.So(board.Pillars, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When a board definition is malformed", func() {
			clearConfigEnvVars()
			yamlContent := `
board_definitions:
  - key: internalbench
    formula_version: v1
    qualification_min: 1
    pillars:
      - key: reasoning
        weight: 0.5
        sources:
          - key: internal_suite
            sub_weight: 0.5
            rule: identity
`
			tmpFile := filepath.Join(t.TempDir(), "config.yaml")
			convey.So(os.WriteFile(tmpFile, []byte(yamlContent), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("TRAININGRUN_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			_, err := config.Load()

			convey.Convey("Then loading fails with ErrInvalidConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})

		convey.Convey("When the config is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("TRAININGRUN_LOG_LEVEL", "loud")
			defer clearConfigEnvVars()

			_, err := config.Load()

			convey.Convey("Then loading fails with ErrInvalidConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}

func TestDerivedPaths(t *testing.T) {
	convey.Convey("Given a config with only a data dir", t, func() {
		cfg := config.New()
		cfg.DataDir = "/srv/boards"

		convey.Convey("Then derived paths land inside it", func() {
			convey.So(cfg.DatabasePath(), convey.ShouldEqual, "/srv/boards/readings.db")
			convey.So(cfg.StatusFilePath(), convey.ShouldEqual, "/srv/boards/status.json")
			convey.So(cfg.SnapshotPath("trs"), convey.ShouldEqual, "/srv/boards/trs.json")
		})

		convey.Convey("And explicit paths win over derived ones", func() {
			cfg.DBPath = "/tmp/other.db"
			cfg.StatusPath = "/tmp/status.json"
			convey.So(cfg.DatabasePath(), convey.ShouldEqual, "/tmp/other.db")
			convey.So(cfg.StatusFilePath(), convey.ShouldEqual, "/tmp/status.json")
		})
	})
}
