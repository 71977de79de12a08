package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/slumber/internal/cli"
	"github.com/alexanderramin/slumber/internal/config"
	"github.com/alexanderramin/slumber/internal/db"
	"github.com/alexanderramin/slumber/internal/repository"
	"github.com/alexanderramin/slumber/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire stores
	kv := repository.NewSQLiteKVStore(database)
	sessions := repository.NewJSONSessionStore(kv)
	prefs := repository.NewKVPreferenceStore(kv)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	ids, err := service.NewIDGenerator(cfg.IDStrategy, time.Now)
	if err != nil {
		return err
	}

	opts := []service.SleepOption{
		service.WithIDGenerator(ids),
		service.WithObserver(observer),
	}

	app := &cli.App{
		Sleep:       service.NewSleepService(sessions, uow, opts...),
		Settings:    service.NewSettingsService(prefs, cfg.DefaultTheme(), observer),
		Import:      service.NewImportService(sessions, uow, opts...),
		TrendWindow: cfg.TrendWindow,
		HistoryRows: cfg.HistoryRows,
	}

	// Only offer the log form on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
