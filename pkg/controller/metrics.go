package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"qcscargo/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics observes the latency of every request, labelled by the chi
// route pattern so path parameters do not explode the label space. It must be
// installed on a chi router.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.RequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// WithInFlight counts the requests being served on an OpenTelemetry
// up-down counter of the given meter provider.
func WithInFlight(mp metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	inFlight, err := mp.Meter("qcscargo/controller").Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of HTTP requests being served"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create in-flight counter: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attrs := metric.WithAttributes(attribute.String("http.request.method", r.Method))
			inFlight.Add(r.Context(), 1, attrs)
			defer inFlight.Add(r.Context(), -1, attrs)

			next.ServeHTTP(w, r)
		})
	}, nil
}
