package resilience

import (
	"context"
	"errors"
	"time"

	"qcscargo/pkg/logger"
	"qcscargo/pkg/metrics"
	"qcscargo/pkg/serrors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerOptions configures a Breaker.
type BreakerOptions struct {
	// Name identifies the protected dependency in logs and metrics.
	Name string
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold uint32
	// OpenTimeout is how long the circuit stays open before a trial call is let through.
	OpenTimeout time.Duration
}

// Breaker is a named circuit breaker. Only server side failures (unavailable,
// timeout, unclassified errors) count toward opening the circuit; a rejected
// request still proves the dependency is up.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker creates a closed Breaker.
func NewBreaker(opts BreakerOptions) *Breaker {
	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	b := &Breaker{name: opts.Name}
	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: 1,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isServerFault(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn(context.Background(), "circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	metrics.BreakerState.WithLabelValues(opts.Name).Set(float64(gobreaker.StateClosed))

	return b
}

func isServerFault(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, serrors.ErrUnavailable) || errors.Is(err, serrors.ErrTimeout) {
		return true
	}

	var k serrors.Kind

	return !errors.As(err, &k)
}

// State returns the current state name: "closed", "half-open" or "open".
func (b *Breaker) State() string { return b.cb.State().String() }

// Execute runs op unless the circuit is open, in which case it fails with
// serrors.ErrUnavailable without calling op.
func (b *Breaker) Execute(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, op(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s is unavailable", b.name)
	}

	return err //nolint: wrapcheck
}
