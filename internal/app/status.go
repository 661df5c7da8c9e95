package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/solosevn/trainingrun/pkg/logger"
)

// RunRecord is one board's most recent run outcome.
type RunRecord struct {
	RunID      string `json:"run_id"`
	Board      string `json:"board"`
	Day        string `json:"day"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	Status     string   `json:"status"` // "ok" or "failed"
	Error      string   `json:"error,omitempty"`
	Models     int      `json:"models"`
	Qualified  int      `json:"qualified"`
	Sources    int      `json:"sources"`
	Top        []string `json:"top,omitempty"`
}

// recordStatus updates the status file with the run's outcome. Status is
// advisory: a write failure is logged, never propagated into the run result.
func (s *Service) recordStatus(ctx context.Context, board, day string, started time.Time, res RunResult, runErr error) {
	if s.statusPath == "" {
		return
	}

	rec := RunRecord{
		RunID:      uuid.NewString(),
		Board:      board,
		Day:        day,
		StartedAt:  started.UTC().Format(time.RFC3339),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
		Status:     "ok",
		Models:     res.Models,
		Qualified:  res.Qualified,
		Sources:    res.Sources,
		Top:        res.Top,
	}
	if runErr != nil {
		rec.Status = "failed"
		rec.Error = runErr.Error()
	}

	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if err := updateStatusFile(s.statusPath, rec); err != nil {
		s.logger.Warn(ctx, "status file update failed",
			logger.String("path", s.statusPath),
			logger.Error(err),
		)
	}
}

// updateStatusFile merges one record into the status file, keyed by board,
// swapping the file atomically.
func updateStatusFile(path string, rec RunRecord) error {
	records := make(map[string]RunRecord)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// A corrupt status file is replaced, not fatal.
		_ = json.Unmarshal(data, &records)
	case errors.Is(err, os.ErrNotExist):
	default:
		return err
	}
	records[rec.Board] = rec

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
