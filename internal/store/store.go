// Package store persists raw benchmark readings between scoring runs.
//
// Readings are append-only. Re-recording the same Model x Source x Day key
// inserts a new row rather than updating the old one; the newest row wins
// when a run loads the day's batch, and the earlier rows remain as history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/solosevn/trainingrun/internal/domain/model"
	"github.com/solosevn/trainingrun/internal/snapshot"
)

// Store is the persistence interface for readings.
type Store interface {
	// AddReading appends one reading. Returns true when it supersedes an
	// earlier reading for the same Model x Source x Day key.
	AddReading(ctx context.Context, r *model.Reading) (bool, error)
	// AddReadings appends a batch, stopping at the first error.
	AddReadings(ctx context.Context, rs []model.Reading) error

	// LatestForDay returns the effective batch for one board and day: the
	// newest reading per Model x Source key.
	LatestForDay(ctx context.Context, board, day string) ([]model.Reading, error)
	// History returns every recorded reading for a key, oldest first.
	History(ctx context.Context, board, source, mdl, day string) ([]model.Reading, error)
	// ProvisionalModels lists distinct model names ingested without a roster
	// match, for review before they appear on a board.
	ProvisionalModels(ctx context.Context, board string) ([]string, error)

	// AddTimelineEvent records a chart annotation for a board.
	AddTimelineEvent(ctx context.Context, board string, ev snapshot.TimelineEvent) error
	// TimelineEvents returns a board's annotations ordered by date.
	TimelineEvents(ctx context.Context, board string) ([]snapshot.TimelineEvent, error)

	Close() error
}

// row is the database shape of a reading.
type row struct {
	ID          int64           `db:"id"`
	Board       string          `db:"board"`
	Source      string          `db:"source"`
	Model       string          `db:"model"`
	Company     string          `db:"company"`
	Day         string          `db:"day"`
	Value       sql.NullFloat64 `db:"value"`
	Provisional bool            `db:"provisional"`
	RecordedAt  time.Time       `db:"recorded_at"`
}

func (r row) toReading() model.Reading {
	m := model.Reading{
		Board:       r.Board,
		Source:      r.Source,
		Model:       r.Model,
		Company:     r.Company,
		Day:         r.Day,
		Provisional: r.Provisional,
		RecordedAt:  r.RecordedAt,
	}
	if r.Value.Valid {
		v := r.Value.Float64
		m.Value = &v
	}
	return m
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// New opens a SQLite database at path and runs migrations.
func New(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) AddReading(ctx context.Context, r *model.Reading) (bool, error) {
	var prior int
	err := s.db.GetContext(ctx, &prior, `
		SELECT COUNT(*) FROM readings
		WHERE board = ? AND source = ? AND model = ? AND day = ?
	`, r.Board, r.Source, r.Model, r.Day)
	if err != nil {
		return false, fmt.Errorf("check reading %s/%s/%s: %w", r.Board, r.Source, r.Model, err)
	}

	var value sql.NullFloat64
	if r.Value != nil {
		value = sql.NullFloat64{Float64: *r.Value, Valid: true}
	}
	recordedAt := r.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO readings (board, source, model, company, day, value, provisional, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Board, r.Source, r.Model, r.Company, r.Day, value, r.Provisional, recordedAt)
	if err != nil {
		return false, fmt.Errorf("insert reading %s/%s/%s: %w", r.Board, r.Source, r.Model, err)
	}
	return prior > 0, nil
}

func (s *SQLiteStore) AddReadings(ctx context.Context, rs []model.Reading) error {
	for i := range rs {
		if _, err := s.AddReading(ctx, &rs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) LatestForDay(ctx context.Context, board, day string) ([]model.Reading, error) {
	var rows []row
	err := s.db.SelectContext(ctx, &rows, `
		SELECT r.* FROM readings r
		JOIN (
			SELECT MAX(id) AS id FROM readings
			WHERE board = ? AND day = ?
			GROUP BY source, model
		) latest ON latest.id = r.id
		ORDER BY r.source, r.model
	`, board, day)
	if err != nil {
		return nil, fmt.Errorf("latest readings %s/%s: %w", board, day, err)
	}
	readings := make([]model.Reading, len(rows))
	for i, r := range rows {
		readings[i] = r.toReading()
	}
	return readings, nil
}

func (s *SQLiteStore) History(ctx context.Context, board, source, mdl, day string) ([]model.Reading, error) {
	var rows []row
	err := s.db.SelectContext(ctx, &rows, `
		SELECT * FROM readings
		WHERE board = ? AND source = ? AND model = ? AND day = ?
		ORDER BY id
	`, board, source, mdl, day)
	if err != nil {
		return nil, fmt.Errorf("reading history %s/%s/%s: %w", board, source, mdl, err)
	}
	readings := make([]model.Reading, len(rows))
	for i, r := range rows {
		readings[i] = r.toReading()
	}
	return readings, nil
}

func (s *SQLiteStore) ProvisionalModels(ctx context.Context, board string) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names, `
		SELECT DISTINCT model FROM readings
		WHERE board = ? AND provisional = 1
		ORDER BY model
	`, board)
	if err != nil {
		return nil, fmt.Errorf("provisional models %s: %w", board, err)
	}
	return names, nil
}

func (s *SQLiteStore) AddTimelineEvent(ctx context.Context, board string, ev snapshot.TimelineEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO timeline_events (board, day, label, company)
		VALUES (?, ?, ?, ?)
	`, board, ev.Date, ev.Label, ev.Company)
	if err != nil {
		return fmt.Errorf("insert timeline event %s: %w", board, err)
	}
	return nil
}

func (s *SQLiteStore) TimelineEvents(ctx context.Context, board string) ([]snapshot.TimelineEvent, error) {
	type evRow struct {
		Day     string `db:"day"`
		Label   string `db:"label"`
		Company string `db:"company"`
	}
	var rows []evRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT day, label, company FROM timeline_events
		WHERE board = ? ORDER BY day, id
	`, board)
	if err != nil {
		return nil, fmt.Errorf("timeline events %s: %w", board, err)
	}
	events := make([]snapshot.TimelineEvent, len(rows))
	for i, r := range rows {
		events[i] = snapshot.TimelineEvent{Date: r.Day, Label: r.Label, Company: r.Company}
	}
	return events, nil
}
