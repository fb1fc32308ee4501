package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/cli"
	"github.com/alexanderramin/herdbook/internal/config"
	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/alexanderramin/herdbook/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg := config.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	breedingRepo := repository.NewSQLiteBreedingRepo(database)
	pregnancyRepo := repository.NewSQLitePregnancyRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry: structured log lines on demand, metrics when a
	// textfile target is configured.
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	if cfg.MetricsFile != "" {
		reg := prometheus.NewRegistry()
		metrics, err := service.NewMetricsUseCaseObserver(reg)
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		observers = append(observers, metrics)
		defer func() {
			if werr := prometheus.WriteToTextfile(cfg.MetricsFile, reg); werr != nil {
				logger.Warn("writing metrics textfile", "path", cfg.MetricsFile, "error", werr)
			}
		}()
	}

	clock := &app.Clock{}
	opts := service.Options{
		Now:       clock.Now,
		Lifecycle: cfg.Lifecycle(),
		Logger:    logger,
	}

	// Wire services
	a := &cli.App{
		Breedings:   service.NewBreedingService(breedingRepo, uow, opts, observers...),
		Pregnancies: service.NewPregnancyService(pregnancyRepo, uow, opts, observers...),
		Reminders:   service.NewReminderService(breedingRepo, pregnancyRepo, opts, observers...),
		Import:      service.NewImportService(uow, opts, observers...),
		Clock:       clock,
		Lifecycle:   opts.Lifecycle,
	}

	// Detect interactive terminal for the birth form.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	return cli.NewRootCmd(a).Execute()
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
