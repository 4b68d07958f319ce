package http

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"agency-articles/internal/handler/http/agency"
	"agency-articles/internal/handler/http/article"
	"agency-articles/internal/handler/http/middleware"
	"agency-articles/internal/handler/http/requestid"
	"agency-articles/internal/handler/http/respond"
	"agency-articles/internal/observability/slo"
	"agency-articles/internal/observability/tracing"
	agencyUC "agency-articles/internal/usecase/agency"
	artUC "agency-articles/internal/usecase/article"
)

// Router collects everything NewRouter needs. Limiter may be nil to
// disable rate limiting and SLO may be nil to skip SLO tracking. DB and
// Breaker may be nil in tests.
type Router struct {
	Articles  artUC.Service
	Agencies  agencyUC.Service
	Responder respond.Responder

	DB      *sql.DB
	Breaker BreakerState
	Limiter *RateLimiter
	SLO     *slo.Tracker
	Version string
	Logger  *slog.Logger

	RequestTimeout time.Duration
	MaxBodyBytes   int64
	CORS           middleware.CORSConfig
	CSP            middleware.CSPConfig
}

// Handler registers the API, probe, metrics and Swagger routes and wraps
// them in the middleware chain.
// Order: Request ID → Recovery → Tracing → Logging → CORS → Security headers →
// Metrics → SLO → URI length → Rate limit → Body limit → Timeout.
func (rt Router) Handler() http.Handler {
	logger := rt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	article.Register(mux, rt.Articles, rt.Responder)
	agency.Register(mux, rt.Agencies, rt.Responder)

	mux.Handle("GET /health", &HealthHandler{DB: rt.DB, Breaker: rt.Breaker, Limiter: rt.Limiter, Version: rt.Version})
	mux.Handle("GET /ready", &ReadyHandler{DB: rt.DB, Breaker: rt.Breaker})
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mws := []func(http.Handler) http.Handler{
		requestid.Middleware,
		Recover(logger),
		tracing.Middleware,
		Logging(logger),
		middleware.CORS(rt.CORS),
		middleware.SecurityHeaders(rt.CSP),
		MetricsMiddleware,
	}
	if rt.SLO != nil {
		mws = append(mws, SLOMiddleware(rt.SLO))
	}
	mws = append(mws, InputValidation())
	if rt.Limiter != nil {
		mws = append(mws, rt.Limiter.Middleware)
	}
	if rt.MaxBodyBytes > 0 {
		mws = append(mws, LimitRequestBody(rt.MaxBodyBytes))
	}
	if rt.RequestTimeout > 0 {
		mws = append(mws, Timeout(rt.RequestTimeout))
	}
	return Chain(mux, mws...)
}
