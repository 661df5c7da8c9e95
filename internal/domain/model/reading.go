// Package model contains domain models passed between layers.
package model

import "time"

// Reading is one observed value for a Model x Source x Date.
// A nil Value means the source had no value for the model that day.
// Readings are append-only: a later Reading for the same key supersedes the
// earlier one for scoring, but the earlier row is never deleted.
type Reading struct {
	Board       string    // board key, e.g. "trs"
	Source      string    // source key within a board pillar
	Model       string    // canonical model name
	Company     string    // canonical company name
	Day         string    // ISO date, e.g. "2026-02-16"
	Value       *float64  // raw scraped value, nil if unavailable
	Provisional bool      // model name was not in the roster at ingest time
	RecordedAt  time.Time // ingestion time, orders supersession
}

// DailyScoreRecord is one model's scoring outcome on one board for one day.
// Composite is nil when the model did not meet the board's qualification
// threshold that day.
type DailyScoreRecord struct {
	Model     string
	Company   string
	Board     string
	Day       string
	Pillars   map[string]*float64 // pillar key -> score, nil for all-null pillars
	Composite *float64
}

// NonNullPillars counts the pillar scores that are present.
func (r DailyScoreRecord) NonNullPillars() int {
	n := 0
	for _, s := range r.Pillars {
		if s != nil {
			n++
		}
	}
	return n
}

// Float returns a pointer to v. Convenience for building optional scores.
func Float(v float64) *float64 { return &v }
