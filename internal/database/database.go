package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxConns          = int32(8)
	defaultMinConns          = int32(1)
	defaultMaxConnLifetime   = 10 * time.Minute
	defaultMaxConnIdleTime   = 5 * time.Minute
	defaultHealthCheckPeriod = time.Minute
	defaultConnectTimeout    = 5 * time.Second

	slowQueryThreshold = 500 * time.Millisecond

	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// PoolConfig parses dsn and applies the service's pool limits.
func PoolConfig(dsn string) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = defaultMaxConns
	cfg.MinConns = defaultMinConns
	cfg.MaxConnLifetime = defaultMaxConnLifetime
	cfg.MaxConnIdleTime = defaultMaxConnIdleTime
	cfg.HealthCheckPeriod = defaultHealthCheckPeriod
	cfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	return cfg, nil
}

// Conn is an open catalog database. Close releases the gorm handle and,
// for Postgres, the underlying pgx pool.
type Conn struct {
	DB   *gorm.DB
	pool *pgxpool.Pool
}

func (c *Conn) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	err = sqlDB.Close()
	if c.pool != nil {
		c.pool.Close()
	}
	return err
}

// OpenPostgres connects to Postgres through a pgx pool and wraps it in gorm.
func OpenPostgres(ctx context.Context, dsn string, log *zap.Logger) (*Conn, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database url is required")
	}

	cfg, err := PoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}
	return &Conn{DB: db, pool: pool}, nil
}

// OpenSQLite opens a single-file database with foreign keys enforced.
func OpenSQLite(path string, log *zap.Logger) (*Conn, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	if err := registerLower(); err != nil {
		return nil, fmt.Errorf("register sqlite lower: %w", err)
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open(sqlite.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	db, err := gorm.Open(&sqlite.Dialector{Conn: sqlDB}, gormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm sqlite: %w", err)
	}
	return &Conn{DB: db}, nil
}

// Open connects to the named driver: "postgres" uses dsn, "sqlite" uses
// sqlitePath.
func Open(ctx context.Context, driver, dsn, sqlitePath string, log *zap.Logger) (*Conn, error) {
	switch driver {
	case "postgres":
		return OpenPostgres(ctx, dsn, log)
	case "sqlite":
		return OpenSQLite(sqlitePath, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// IsConstraintViolation reports whether err was raised by a Postgres
// foreign key or unique constraint.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgForeignKeyViolation || pgErr.Code == pgUniqueViolation
}

func gormConfig(log *zap.Logger) *gorm.Config {
	if log == nil {
		log = zap.NewNop()
	}
	return &gorm.Config{
		Logger: logger.New(
			zap.NewStdLog(log.Named("gorm")),
			logger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}
}
