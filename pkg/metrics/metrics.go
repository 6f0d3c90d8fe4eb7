// Package metrics declares the Prometheus collectors of the service. They are
// registered on the default registry and served on the metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "qcs"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const (
	LabelMethod  = "method"
	LabelRoute   = "route"
	LabelStatus  = "status"
	LabelCarrier = "carrier"
	LabelChannel = "channel"
	LabelName    = "name"
	LabelDest    = "destination"
)

var RequestDuration = promauto.NewHistogramVec( //nolint: gochecknoglobals
	prometheus.HistogramOpts{
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Namespace: Namespace,
		Buckets:   DefaultBuckets,
	},
	[]string{LabelMethod, LabelRoute, LabelStatus},
)

var RateLimited = promauto.NewCounter( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Name:      "http_rate_limited_total",
		Help:      "Requests rejected by the rate limiter",
		Namespace: Namespace,
	},
)

var BookingsCreated = promauto.NewCounter( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Name:      "bookings_created_total",
		Help:      "Pickup bookings created",
		Namespace: Namespace,
	},
)

var QuotesIssued = promauto.NewCounterVec( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Name:      "quotes_issued_total",
		Help:      "Quotes issued",
		Namespace: Namespace,
	},
	[]string{LabelDest},
)

var PackagesReceived = promauto.NewCounterVec( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Name:      "packages_received_total",
		Help:      "Packages received at the warehouse",
		Namespace: Namespace,
	},
	[]string{LabelCarrier},
)

var Notifications = promauto.NewCounterVec( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Name:      "notifications_total",
		Help:      "Notification delivery attempts",
		Namespace: Namespace,
	},
	[]string{LabelChannel, LabelStatus},
)

var BreakerState = promauto.NewGaugeVec( //nolint: gochecknoglobals
	prometheus.GaugeOpts{
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		Namespace: Namespace,
	},
	[]string{LabelName},
)
