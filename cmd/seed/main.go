// Command seed loads the system agency reference rows into a development
// database. It never creates tables; the schema must already exist.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"agency-articles/internal/config"
	"agency-articles/internal/infra/db"
	"agency-articles/internal/observability/logging"
	"agency-articles/internal/resilience/circuitbreaker"
)

func main() {
	file := flag.String("file", "", "YAML file with system_agencies (default: built-in seed)")
	dryRun := flag.Bool("dry-run", false, "parse and print the agencies without touching the database")
	flag.Parse()

	if err := run(*file, *dryRun); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(file string, dryRun bool) error {
	data := db.DefaultAgencySeed
	if file != "" {
		var err error
		if data, err = os.ReadFile(file); err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
	}
	agencies, err := db.ParseAgencySeed(data)
	if err != nil {
		return err
	}

	if dryRun {
		logger := logging.NewLogger("info")
		for _, a := range agencies {
			logger.Info("system agency", slog.Int64("id_system_agency", a.ID), slog.String("name", a.Name))
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger := logging.New(os.Stdout, cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = pool.Close() }()

	n, err := db.SeedSystemAgencies(ctx, circuitbreaker.NewDBCircuitBreaker(pool), agencies)
	if err != nil {
		return err
	}
	logger.Info("system agencies seeded", slog.Int("count", n))
	return nil
}
