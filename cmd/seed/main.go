package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"PokeHunter/internal/catalog"
	"PokeHunter/internal/config"
	"PokeHunter/internal/database"
	"PokeHunter/internal/seed"
	"PokeHunter/pkg/kit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.CommandLine
	password := fs.String("demo-password", "collector", "password for the demo collector account")

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.Storage == config.StorageMemory {
		return fmt.Errorf("seed needs a persistent storage backend, got %q", cfg.Storage)
	}

	log, err := kit.NewLogger("seed", cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := database.Open(ctx, cfg.Storage, cfg.DatabaseURL, cfg.SQLitePath, log)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	if err := catalog.Migrate(conn.DB.WithContext(ctx)); err != nil {
		return err
	}

	store := catalog.NewGormStore(conn.DB)
	if err := store.Reset(ctx); err != nil {
		return err
	}

	log.Info("seeding database", zap.String("storage", cfg.Storage))
	if err := seed.Load(ctx, store, *password); err != nil {
		log.Error("seed failed", zap.Error(err))
		return err
	}
	log.Info("database seeding completed",
		zap.Int("products", seed.ProductCount),
		zap.Int("articles", seed.ArticleCount),
	)
	return nil
}
