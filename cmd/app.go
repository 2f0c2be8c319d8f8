package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"smartfurnace/internal/config"
	"smartfurnace/internal/logger"
	"smartfurnace/internal/metrics"
	"smartfurnace/internal/repository"
	"smartfurnace/internal/repository/db"
	"smartfurnace/internal/service"
)

// app is the wired dependency graph for one command invocation.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	db       *sql.DB
	services *service.Service
}

// openApp loads configuration, opens the database and wires the services.
// Only serve logs to the console; one-shot commands keep stdout for their
// own output.
func openApp(cmd *cobra.Command, opts *rootOptions, daemon bool) (*app, error) {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("db.path", flags.Lookup("db")); err != nil {
		return nil, fmt.Errorf("bind --db: %w", err)
	}
	if err := v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		return nil, fmt.Errorf("bind --log-level: %w", err)
	}

	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: logger.Nop()}
	if daemon {
		a.log = logger.Init(cfg.Log)
		a.metrics = metrics.New()
	}

	a.db, err = db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("init sqlite: %w", err)
	}

	var cycle repository.CycleRepo
	if cfg.Cycle.Store == config.CycleStoreFile {
		cycle = repository.NewCycleFile(cfg.Cycle.File)
	}
	repos := repository.NewRepository(a.db, cycle)
	a.services = service.NewService(repos, service.Options{
		Bounds:  cfg.Temperature,
		Log:     a.log,
		Metrics: a.metrics,
	})
	return a, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorw("failed to close sqlite", "err", err)
	}
}
