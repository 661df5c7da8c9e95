// Package snapshot models the published per-board dataset and its atomic
// replacement on disk.
//
// A snapshot is an immutable value: a scoring run loads the previous one,
// builds a new one, seals it, and swaps the file in a single rename. Readers
// therefore never observe a half-written dataset, and an interrupted run
// leaves the prior snapshot authoritative.
//
// The seal covers only the model names and score series; weights, dates,
// formula version, and timeline events sit outside the digest, matching what
// consumers verify.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/solosevn/trainingrun/internal/integrity"
)

// TimelineEvent annotates the trend chart with a dated label.
type TimelineEvent struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Company string `json:"company"`
}

// ModelSeries carries one model's date-aligned score series. A nil entry is
// an explicit null placeholder, never a gap. There is deliberately no rank
// field: rank is derived at read time from the scores.
type ModelSeries struct {
	Name    string     `json:"name"`
	Company string     `json:"company"`
	Scores  []*float64 `json:"scores"`
}

// Board is one board's full published dataset.
type Board struct {
	FormulaVersion string             `json:"formula_version"`
	Checksum       string             `json:"checksum"`
	Weights        map[string]float64 `json:"weights"`
	Dates          []string           `json:"dates"`
	Models         []ModelSeries      `json:"models"`
	TimelineEvents []TimelineEvent    `json:"timeline_events"`
}

// New creates an empty snapshot for a board formula.
func New(formulaVersion string, weights map[string]float64) *Board {
	return &Board{
		FormulaVersion: formulaVersion,
		Weights:        weights,
		Dates:          []string{},
		Models:         []ModelSeries{},
		TimelineEvents: []TimelineEvent{},
	}
}

// Validate checks the structural invariants of the snapshot: a strictly
// increasing duplicate-free date axis and series lengths equal to it. A
// snapshot failing validation must not be sealed or published.
func (b *Board) Validate() error {
	for i := 1; i < len(b.Dates); i++ {
		if b.Dates[i] <= b.Dates[i-1] {
			return fmt.Errorf("%w: date %q at index %d does not increase over %q",
				ErrInvalidSnapshot, b.Dates[i], i, b.Dates[i-1])
		}
	}
	for _, m := range b.Models {
		if len(m.Scores) != len(b.Dates) {
			return fmt.Errorf("%w: model %q has %d scores for %d dates",
				ErrInvalidSnapshot, m.Name, len(m.Scores), len(b.Dates))
		}
	}
	return nil
}

// Seal recomputes and stores the checksum. It must be the last mutation
// before publish; any later change invalidates the seal.
func (b *Board) Seal() error {
	if err := b.Validate(); err != nil {
		return err
	}
	b.Checksum = integrity.Digest(b.series())
	return nil
}

// VerifyIntegrity recomputes the digest over the snapshot content and
// compares it with the stored checksum.
func (b *Board) VerifyIntegrity() error {
	return integrity.Verify(b.Checksum, b.series())
}

func (b *Board) series() []integrity.Series {
	s := make([]integrity.Series, len(b.Models))
	for i, m := range b.Models {
		s[i] = integrity.Series{Name: m.Name, Scores: m.Scores}
	}
	return s
}

// Clone returns a deep copy. Runs mutate a clone and swap it in whole.
func (b *Board) Clone() *Board {
	c := &Board{
		FormulaVersion: b.FormulaVersion,
		Checksum:       b.Checksum,
		Weights:        make(map[string]float64, len(b.Weights)),
		Dates:          append([]string{}, b.Dates...),
		Models:         make([]ModelSeries, len(b.Models)),
		TimelineEvents: append([]TimelineEvent{}, b.TimelineEvents...),
	}
	for k, v := range b.Weights {
		c.Weights[k] = v
	}
	for i, m := range b.Models {
		scores := make([]*float64, len(m.Scores))
		for j, s := range m.Scores {
			if s != nil {
				v := *s
				scores[j] = &v
			}
		}
		c.Models[i] = ModelSeries{Name: m.Name, Company: m.Company, Scores: scores}
	}
	return c
}

// Model returns the index of a model series by canonical name, or -1.
func (b *Board) Model(name string) int {
	for i, m := range b.Models {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// AddTimelineEvent appends an annotation, keeping events date-ordered.
func (b *Board) AddTimelineEvent(ev TimelineEvent) {
	b.TimelineEvents = append(b.TimelineEvents, ev)
	sort.SliceStable(b.TimelineEvents, func(i, j int) bool {
		return b.TimelineEvents[i].Date < b.TimelineEvents[j].Date
	})
}
