// Package config defines pipeline configuration structures and loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file and env overrides on top of defaults in Load.
// - External errors must be wrapped via this package's sentinel errors.
package config

import (
	"path/filepath"

	"github.com/solosevn/trainingrun/internal/domain/registry"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the root directory for snapshots and status files.
	DataDir string `koanf:"data_dir"`

	// DBPath is the SQLite database holding raw readings. Empty means
	// <data_dir>/readings.db.
	DBPath string `koanf:"db_path"`

	// StatusPath is the per-run status file. Empty means
	// <data_dir>/status.json.
	StatusPath string `koanf:"status_path"`

	// Boards limits a run to the listed board keys. Empty means all boards.
	Boards []string `koanf:"boards"`

	// BoardDefs replaces the built-in board definitions when non-empty.
	// Validated at load: weight sums, thresholds, and duplicate keys reject
	// the whole config.
	BoardDefs []registry.Board `koanf:"board_definitions"`

	// MetricsAddr exposes the Prometheus endpoint when non-empty, e.g. ":9091".
	MetricsAddr string `koanf:"metrics_addr"`

	// RunTimeoutSec bounds one full pipeline run.
	RunTimeoutSec int `koanf:"run_timeout_sec"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		DataDir:       "data",
		MetricsAddr:   "",
		RunTimeoutSec: 300,
	}
}

// Registry builds the board registry: the configured board definitions when
// present, the built-in boards otherwise.
func (c *Config) Registry() (*registry.Registry, error) {
	if len(c.BoardDefs) == 0 {
		return registry.Default(), nil
	}
	return registry.New(c.BoardDefs)
}

// SnapshotPath returns the snapshot file path for a board key.
func (c *Config) SnapshotPath(board string) string {
	return filepath.Join(c.DataDir, board+".json")
}

// DatabasePath returns the effective readings database path.
func (c *Config) DatabasePath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(c.DataDir, "readings.db")
}

// StatusFilePath returns the effective status file path.
func (c *Config) StatusFilePath() string {
	if c.StatusPath != "" {
		return c.StatusPath
	}
	return filepath.Join(c.DataDir, "status.json")
}
