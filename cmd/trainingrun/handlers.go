package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solosevn/trainingrun/internal/app"
	"github.com/solosevn/trainingrun/internal/config"
	"github.com/solosevn/trainingrun/internal/domain/model"
	"github.com/solosevn/trainingrun/internal/snapshot"
	"github.com/solosevn/trainingrun/internal/store"
	"github.com/solosevn/trainingrun/pkg/logger"
	"github.com/solosevn/trainingrun/pkg/metrics"
)

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		os.Setenv("TRAININGRUN_CONFIG", cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(); err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildService(cfg *config.Config, db store.Store) (*app.Service, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return app.New(
		app.WithStore(db),
		app.WithRegistry(reg),
		app.WithDataDir(cfg.DataDir),
		app.WithStatusPath(cfg.StatusFilePath()),
	), nil
}

func openStore(cfg *config.Config) (*store.SQLiteStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := store.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return db, nil
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func runPipeline(day string, boards []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if day == "" {
		day = today()
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, time.Duration(cfg.RunTimeoutSec)*time.Second)
	defer cancelTimeout()

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
			}
		}()
	}

	svc, err := buildService(cfg, db)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		boards = cfg.Boards
	}
	return svc.RunAll(ctx, day, boards)
}

func runIngest(file string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var batch []struct {
		Board   string   `json:"board"`
		Source  string   `json:"source"`
		Model   string   `json:"model"`
		Company string   `json:"company"`
		Day     string   `json:"day"`
		Value   *float64 `json:"value"`
	}
	if err := json.NewDecoder(in).Decode(&batch); err != nil {
		return fmt.Errorf("decode readings: %w", err)
	}

	readings := make([]model.Reading, len(batch))
	for i, b := range batch {
		readings[i] = model.Reading{
			Board:   b.Board,
			Source:  b.Source,
			Model:   b.Model,
			Company: b.Company,
			Day:     b.Day,
			Value:   b.Value,
		}
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc, err := buildService(cfg, db)
	if err != nil {
		return err
	}
	n, err := svc.Ingest(context.Background(), readings)
	fmt.Fprintf(os.Stderr, "ingested %d readings\n", n)
	return err
}

func runRank(board, day string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if day == "" {
		day = today()
	}

	svc, err := buildService(cfg, nil)
	if err != nil {
		return err
	}
	entries, err := svc.Rank(context.Background(), board, day)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("no ranked models (try running the pipeline first: trainingrun run)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tMODEL\tCOMPANY\tAS OF")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\t%s\n", e.Rank, e.Score, e.Model, e.Company, e.AsOf)
	}
	return w.Flush()
}

func runVerify(boards []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := buildService(cfg, nil)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		boards = reg.Keys()
	}

	failed := false
	for _, board := range boards {
		err := svc.Verify(context.Background(), board)
		switch {
		case err == nil:
			fmt.Printf("%s: ok\n", board)
		case errors.Is(err, snapshot.ErrNotFound):
			fmt.Printf("%s: no snapshot\n", board)
		default:
			fmt.Printf("%s: FAILED: %v\n", board, err)
			failed = true
		}
	}
	if failed {
		return errors.New("integrity verification failed")
	}
	return nil
}

func runStatus() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.StatusFilePath())
	if errors.Is(err, os.ErrNotExist) {
		fmt.Println("no runs recorded yet")
		return nil
	}
	if err != nil {
		return err
	}

	var records map[string]app.RunRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse status file: %w", err)
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOARD\tDAY\tSTATUS\tMODELS\tQUALIFIED\tFINISHED")
	for _, board := range reg.Keys() {
		rec, ok := records[board]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			rec.Board, rec.Day, rec.Status, rec.Models, rec.Qualified, rec.FinishedAt)
	}
	return w.Flush()
}

func runEvent(board, label, day, company string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if day == "" {
		day = today()
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	if _, err := reg.Board(board); err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.AddTimelineEvent(context.Background(), board, snapshot.TimelineEvent{
		Date:    day,
		Label:   label,
		Company: company,
	})
}
