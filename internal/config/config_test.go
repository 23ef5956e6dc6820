package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

// chdir moves into an empty directory so a developer's .env cannot leak in.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unsetenv %s: %v", k, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	unsetenv(t, "CATALOG_STORAGE", "CATALOG_ADDR", "METRICS_ENABLED")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("expected memory storage, got %q", cfg.Storage)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	chdir(t)
	t.Setenv("CATALOG_ADDR", ":9000")
	t.Setenv("CATALOG_STORAGE", "memory")

	cfg, err := Load(newFlagSet(), []string{"--addr", ":9100", "--storage", "SQLite", "--sqlite-path", "x.db"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9100" {
		t.Fatalf("expected flag addr, got %q", cfg.Addr)
	}
	if cfg.Storage != StorageSQLite || cfg.SQLitePath != "x.db" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := chdir(t)
	unsetenv(t, "LOG_LEVEL", "CATALOG_STORAGE")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level from .env, got %q", cfg.LogLevel)
	}
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	chdir(t)
	t.Setenv("CATALOG_STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load(newFlagSet(), nil)
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}

func TestLoadUnknownStorage(t *testing.T) {
	chdir(t)
	t.Setenv("CATALOG_STORAGE", "redis")

	if _, err := Load(newFlagSet(), nil); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}

func TestParseEnvError(t *testing.T) {
	chdir(t)
	t.Setenv("METRICS_ENABLED", "not-a-bool")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
