package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"agency-articles/internal/config"
	pgRepo "agency-articles/internal/infra/adapter/persistence/postgres"
	"agency-articles/internal/infra/db"
	"agency-articles/internal/observability/logging"
	"agency-articles/internal/observability/metrics"
	"agency-articles/internal/observability/slo"
	"agency-articles/internal/observability/tracing"
	"agency-articles/internal/resilience/circuitbreaker"

	agencyUC "agency-articles/internal/usecase/agency"
	artUC "agency-articles/internal/usecase/article"

	hhttp "agency-articles/internal/handler/http"
	"agency-articles/internal/handler/http/middleware"
	"agency-articles/internal/handler/http/respond"

	_ "agency-articles/docs" // swagger docs
)

// @title           Agency Articles API
// @version         1.0
// @description     Create and read articles published by system agencies.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const (
	poolStatsInterval   = 15 * time.Second
	sloWindow           = time.Minute
	rateLimitCleanEvery = time.Minute
	rateLimitIdleAfter  = 10 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Observability)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// initLogger initializes and returns a structured logger based on configuration.
func initLogger(cfg config.Observability) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return logger
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing, err := tracing.Setup(tracing.Options{
		Enabled:     cfg.Observability.TracingEnabled,
		ServiceName: cfg.Observability.ServiceName,
		Version:     cfg.Observability.Version,
		Exporter:    cfg.Observability.TracesExporter,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	pool, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	breaker := newDBBreaker(pool)

	var limiter *hhttp.RateLimiter
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter = hhttp.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.HTTP.RateLimitRPS),
			slog.Int("burst", cfg.HTTP.RateLimitBurst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	router := hhttp.Router{
		Articles:       artUC.Service{Repo: pgRepo.NewArticleRepo(breaker)},
		Agencies:       agencyUC.Service{Repo: pgRepo.NewSystemAgencyRepo(breaker)},
		Responder:      respond.Responder{Legacy: cfg.API.LegacyErrorStatus},
		DB:             pool,
		Breaker:        breaker,
		Limiter:        limiter,
		SLO:            slo.NewTracker(slo.DefaultMaxSamples),
		Version:        cfg.Observability.Version,
		Logger:         logger,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		CORS:           middleware.DefaultCORSConfig(cfg.HTTP.CORSAllowedOrigins),
		CSP:            middleware.DefaultCSPConfig(cfg.HTTP.CSPEnabled),
	}
	if cfg.API.LegacyErrorStatus {
		logger.Info("legacy error status enabled: every failure is answered with 500")
	}

	return serve(ctx, cfg.HTTP, logger, router, pool)
}

// newDBBreaker wraps the pool and mirrors the breaker state into metrics.
func newDBBreaker(pool *sql.DB) *circuitbreaker.DBCircuitBreaker {
	cbCfg := circuitbreaker.DBConfig()
	cbCfg.OnStateChange = func(_ string, _, to gobreaker.State) {
		metrics.SetDBCircuitOpen(to == gobreaker.StateOpen)
	}
	return circuitbreaker.NewDBCircuitBreakerWithConfig(pool, cbCfg)
}

// serve listens on cfg.Addr and hands off to serveListener.
func serve(ctx context.Context, cfg config.HTTP, logger *slog.Logger, router hhttp.Router, pool *sql.DB) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return serveListener(ctx, ln, cfg, logger, router, pool)
}

// serveListener runs the HTTP server and its background jobs until ctx is
// cancelled, then shuts the server down gracefully. Request contexts do not
// inherit ctx's cancellation so in-flight requests can finish within
// cfg.ShutdownTimeout.
func serveListener(ctx context.Context, ln net.Listener, cfg config.HTTP, logger *slog.Logger, router hhttp.Router, pool *sql.DB) error {
	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler:           router.Handler(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(gctx)
		},
	}

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		reportPoolStats(gctx, pool)
		return nil
	})

	g.Go(func() error {
		router.SLO.Run(gctx, sloWindow)
		return nil
	})

	if router.Limiter != nil {
		g.Go(func() error {
			router.Limiter.StartCleanup(gctx, rateLimitCleanEvery, rateLimitIdleAfter)
			return nil
		})
	}

	return g.Wait()
}

// reportPoolStats publishes connection pool gauges until ctx is cancelled.
func reportPoolStats(ctx context.Context, pool *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := pool.Stats()
			metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		}
	}
}
