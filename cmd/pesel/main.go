// Package main implements the pesel command, which generates a batch of
// unique identification codes for the configured sex and birth date range
// and writes them to stdout, one per line.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/pesel/internal/config"
	"github.com/phrazzld/pesel/internal/domain/pesel"
	"github.com/phrazzld/pesel/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(ctx, os.Stdout); err != nil {
		app.logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

// application holds the wired components of one command invocation.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	service  pesel.Service
	request  pesel.Request
	strategy pesel.Strategy
}

// initializeApp loads configuration and sets up application components.
// Log output goes to logOut.
func initializeApp(logOut io.Writer) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return newApplication(cfg, logOut)
}

func newApplication(cfg *config.Config, logOut io.Writer) (*application, error) {
	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Log.Level, Writer: logOut})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	strategy, err := pesel.ParseStrategy(cfg.Generator.Strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid generator strategy: %w", err)
	}

	req, err := pesel.ParseRequest(pesel.RawRequest{
		Sex:      cfg.Request.Sex,
		DateFrom: cfg.Request.DateFrom,
		DateTo:   cfg.Request.DateTo,
		Count:    cfg.Request.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	params := pesel.NewParams(pesel.ParamsConfig{
		FailureBudget:    cfg.Generator.FailureBudget,
		EnumerationLimit: cfg.Generator.EnumerationLimit,
		Workers:          cfg.Generator.Workers,
		Seed:             cfg.Generator.Seed,
	})

	l.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"strategy", strategy,
		"failure_budget", params.FailureBudget,
		"workers", params.Workers,
		"seeded", params.Seed != 0)

	return &application{
		cfg:      cfg,
		logger:   l,
		service:  pesel.NewServiceWithParams(params, l),
		request:  req,
		strategy: strategy,
	}, nil
}

// run generates the configured batch and writes it to out.
func (a *application) run(ctx context.Context, out io.Writer) error {
	batch, err := a.service.Generate(ctx, a.request, a.strategy)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, c := range batch.Codes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return fmt.Errorf("failed to write code: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write codes: %w", err)
	}

	if !batch.Complete() {
		a.logger.Warn("request only partially satisfied",
			"batch_id", batch.ID,
			"requested", batch.Requested,
			"produced", len(batch.Codes),
			"shortfall", batch.Shortfall,
			"feasible", batch.Feasible)
		return nil
	}

	a.logger.Info("batch written",
		"batch_id", batch.ID,
		"strategy", batch.Strategy,
		"produced", len(batch.Codes))
	return nil
}
