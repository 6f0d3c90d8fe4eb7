// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the QCS Cargo backend.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"qcscargo/internal/api/handler/v1handler"
	"qcscargo/internal/config"
	"qcscargo/pkg/controller"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
	"riverqueue.com/riverui"
)

// v1Spec is the embedded OpenAPI document of the v1 API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	jobDashboardPrefix = "/riverui"
	healthTimeout      = 2 * time.Second
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions limits request bodies of v1 endpoints.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSAllowedOrigins lists the origins allowed to call the API.
	CORSAllowedOrigins []string
	// RateLimit limits v1 requests per client IP. Nil disables it.
	RateLimit *controller.RateLimitOptions
	// JobDashboard serves the River UI under /riverui/.
	JobDashboard bool
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	opts := Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions: v1handler.Options{
			MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
			MaxUploadBytes: cfg.Documents.MaxSizeBytes,
		},

		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		JobDashboard:       cfg.HTTP.JobDashboard,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimit = &controller.RateLimitOptions{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			CacheSize:         cfg.RateLimit.CacheSize,
			TTL:               cfg.RateLimit.TTL,
		}
	}

	return opts
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the dependencies of the server.
type Deps struct {
	v1handler.Deps

	// Health is pinged by /healthz. Optional.
	Health Pinger
	// Jobs backs the job dashboard. Optional.
	Jobs *river.Client[pgx.Tx]
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Health check at /healthz
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes, rate limited per client IP
// - pprof endpoints for profiling
// - the River job dashboard when enabled
// It also wraps the router with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	r := chi.NewRouter()

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withInFlight, err := controller.WithInFlight(mp)
	if err != nil {
		return nil, err
	}

	r.Use(middleware.Recoverer, controller.WithCORS(opts.CORSAllowedOrigins), withInFlight, controller.WithMetrics)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// health
	r.Get("/healthz", healthHandler(deps.Health))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"QCS Cargo API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	var v1 http.Handler = v1handler.New(deps.Deps, opts.HandlerOptions).Routes(secHandler)
	if opts.RateLimit != nil {
		v1 = controller.WithRateLimit(controller.NewRateLimiter(*opts.RateLimit))(v1)
	}
	r.Mount("/v1", v1)

	// pprof
	r.Mount(controller.PprofPrefix, controller.PprofMux())

	// river ui
	if opts.JobDashboard && deps.Jobs != nil {
		dashboard, err := newJobDashboard(ctx, deps.Jobs)
		if err != nil {
			return nil, err
		}
		r.Mount(jobDashboardPrefix, dashboard)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		controller.WriteError(r.Context(), w, serrors.With(serrors.ErrNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})

	// logger
	handler := controller.WithLogger(r)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

func healthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := p.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrUnavailable, err, "database unreachable"))

				return
			}
		}

		controller.WriteJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

func newJobDashboard(ctx context.Context, client *river.Client[pgx.Tx]) (http.Handler, error) {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    jobDashboardPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create job dashboard: %w", err)
	}
	if err := handler.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start job dashboard: %w", err)
	}

	return handler, nil
}
