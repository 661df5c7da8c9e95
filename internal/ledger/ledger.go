// Package ledger maintains the append-only per-model, per-day score series
// of a board snapshot and derives standings from it.
//
// Rank is never read from storage. It is recomputed on every query from the
// latest non-null score in each model's series, because a persisted rank
// goes stale the moment any series changes.
package ledger

import (
	"fmt"
	"sort"

	"github.com/solosevn/trainingrun/internal/domain/model"
	"github.com/solosevn/trainingrun/internal/domain/types"
	"github.com/solosevn/trainingrun/internal/snapshot"
)

// Ledger wraps one board snapshot with history operations.
type Ledger struct {
	board *snapshot.Board
}

// New wraps a snapshot. The snapshot must satisfy its structural invariants.
func New(b *snapshot.Board) *Ledger {
	return &Ledger{board: b}
}

// Board exposes the underlying snapshot.
func (l *Ledger) Board() *snapshot.Board {
	return l.board
}

// Append records one day's score records. Models absent from records get an
// explicit null for the day; models never seen before enter with a
// null-padded history. Appending the current last date replaces that day's
// column (a re-run recomputes the day); any earlier date is rejected to keep
// the axis monotonic.
func (l *Ledger) Append(day string, records map[string]model.DailyScoreRecord) error {
	b := l.board
	n := len(b.Dates)

	var idx int
	switch {
	case n > 0 && day == b.Dates[n-1]:
		idx = n - 1
	case n > 0 && day < b.Dates[n-1]:
		return fmt.Errorf("%w: day %q precedes last recorded day %q", ErrDateOutOfOrder, day, b.Dates[n-1])
	default:
		b.Dates = append(b.Dates, day)
		idx = n
		for i := range b.Models {
			b.Models[i].Scores = append(b.Models[i].Scores, nil)
		}
	}

	seen := make(map[string]bool, len(b.Models))
	for i := range b.Models {
		seen[b.Models[i].Name] = true
		rec, ok := records[b.Models[i].Name]
		if !ok {
			b.Models[i].Scores[idx] = nil
			continue
		}
		b.Models[i].Scores[idx] = copyScore(rec.Composite)
	}

	// First appearance: backfill the history with explicit nulls.
	var added []string
	for name := range records {
		if !seen[name] {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	for _, name := range added {
		rec := records[name]
		scores := make([]*float64, len(b.Dates))
		scores[idx] = copyScore(rec.Composite)
		b.Models = append(b.Models, snapshot.ModelSeries{
			Name:    rec.Model,
			Company: rec.Company,
			Scores:  scores,
		})
	}

	return b.Validate()
}

// Rank returns the standings as of day: models ordered by their latest
// non-null score at or before day, descending, ties broken by canonical name
// ascending. Models with no non-null score by then are unranked and omitted.
func (l *Ledger) Rank(day string) ([]types.Entry, error) {
	b := l.board
	last := l.lastIndexAtOrBefore(day)
	if last < 0 {
		return nil, fmt.Errorf("%w: no dates at or before %q", ErrNoSuchDate, day)
	}

	var entries []types.Entry
	for _, m := range b.Models {
		for i := last; i >= 0; i-- {
			if m.Scores[i] != nil {
				entries = append(entries, types.Entry{
					Model:   m.Name,
					Company: m.Company,
					Score:   *m.Scores[i],
					AsOf:    b.Dates[i],
				})
				break
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Model < entries[j].Model
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// ChangeSince returns score(day) - score(priorDay) for a model, or nil when
// either endpoint is null or missing.
func (l *Ledger) ChangeSince(modelName, day, priorDay string) *float64 {
	b := l.board
	mi := b.Model(modelName)
	if mi < 0 {
		return nil
	}
	di := l.dateIndex(day)
	pi := l.dateIndex(priorDay)
	if di < 0 || pi < 0 {
		return nil
	}
	cur := b.Models[mi].Scores[di]
	prior := b.Models[mi].Scores[pi]
	if cur == nil || prior == nil {
		return nil
	}
	delta := *cur - *prior
	return &delta
}

// dateIndex returns the exact index of day in the axis, or -1.
func (l *Ledger) dateIndex(day string) int {
	i := sort.SearchStrings(l.board.Dates, day)
	if i < len(l.board.Dates) && l.board.Dates[i] == day {
		return i
	}
	return -1
}

// lastIndexAtOrBefore returns the index of the latest date <= day, or -1.
// ISO dates compare lexicographically.
func (l *Ledger) lastIndexAtOrBefore(day string) int {
	i := sort.SearchStrings(l.board.Dates, day)
	if i < len(l.board.Dates) && l.board.Dates[i] == day {
		return i
	}
	return i - 1
}

func copyScore(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
