// Package db owns the database connection pool: construction from
// configuration, pool tuning and the startup readiness check.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"agency-articles/internal/config"
	"agency-articles/internal/resilience/retry"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

// Open creates the connection pool described by cfg and blocks until the
// database answers a ping, retrying transient connection failures for at
// most cfg.ConnectTimeout.
func Open(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	pool, err := sql.Open(DriverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	configurePool(pool, cfg)

	slog.Info("database connection pool configured",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("service", cfg.Service),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	if err := WaitReady(ctx, pool, cfg, retry.DBConfig()); err != nil {
		_ = pool.Close()
		return nil, err
	}

	slog.Info("database connection established successfully")
	return pool, nil
}

// WaitReady pings pool until it answers, giving up after cfg.ConnectTimeout.
func WaitReady(ctx context.Context, pool *sql.DB, cfg config.Database, rc retry.Config) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := retry.WithBackoff(ctx, rc, func() error {
		return pool.PingContext(ctx)
	}); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func configurePool(pool *sql.DB, cfg config.Database) {
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}
