package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"PokeHunter/internal/catalog"
	"PokeHunter/internal/config"
	"PokeHunter/internal/database"
	"PokeHunter/pkg/kit"
)

const service = "catalog"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(pflag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := kit.NewRegistry()

	store, closeStore, err := openStore(ctx, cfg, reg, log)
	if err != nil {
		log.Error("open store failed", zap.String("storage", cfg.Storage), zap.Error(err))
		return err
	}
	defer closeStore()

	s := &catalog.Server{Store: store, Log: log}
	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(ctx, cfg.Addr, h, log); err != nil {
		log.Error("http server stopped", zap.Error(err))
		return err
	}
	return nil
}

func openStore(ctx context.Context, cfg config.Config, reg prometheus.Registerer, log *zap.Logger) (catalog.Store, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Info("using in-memory store with demo catalog")
		return catalog.NewMemStore(), func() {}, nil
	}

	conn, err := database.Open(ctx, cfg.Storage, cfg.DatabaseURL, cfg.SQLitePath, log)
	if err != nil {
		return nil, nil, err
	}
	closeConn := func() {
		if err := conn.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}

	if err := catalog.Migrate(conn.DB.WithContext(ctx)); err != nil {
		closeConn()
		return nil, nil, err
	}

	if sqlDB, err := conn.DB.DB(); err == nil {
		if err := kit.RegisterDBStats(reg, sqlDB, service); err != nil {
			log.Warn("register db stats", zap.Error(err))
		}
	}

	log.Info("using persistent store", zap.String("storage", cfg.Storage))
	return catalog.NewGormStore(conn.DB), closeConn, nil
}
