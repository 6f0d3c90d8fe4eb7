package resilience

import (
	"context"
	"errors"
	"time"

	"qcscargo/pkg/logger"
	"qcscargo/pkg/serrors"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Policy configures Retry. Zero durations fall back to the backoff package
// defaults; MaxAttempts <= 0 retries until MaxElapsedTime.
type Policy struct {
	// InitialInterval is the wait after the first failure. Waits grow
	// exponentially with jitter.
	InitialInterval time.Duration
	// MaxInterval caps a single wait, except when a Retry-After hint asks
	// for longer.
	MaxInterval time.Duration
	// MaxElapsedTime bounds the whole Retry call, waits included.
	MaxElapsedTime time.Duration
	// MaxAttempts counts the first call.
	MaxAttempts int
}

func (p Policy) backOff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		exp.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		exp.MaxInterval = p.MaxInterval
	}
	if p.MaxElapsedTime > 0 {
		exp.MaxElapsedTime = p.MaxElapsedTime
	}
	exp.Reset()

	if p.MaxAttempts > 0 {
		return backoff.WithMaxRetries(exp, uint64(p.MaxAttempts-1)) //nolint: gosec
	}

	return exp
}

// retryAfterError carries the delay a server asked for before the next attempt.
type retryAfterError struct {
	err   error
	after time.Duration
}

func (e *retryAfterError) Error() string { return e.err.Error() }
func (e *retryAfterError) Unwrap() error { return e.err }

// WithRetryAfter attaches a Retry-After hint to err.
func WithRetryAfter(err error, after time.Duration) error {
	if err == nil || after <= 0 {
		return err
	}

	return &retryAfterError{err: err, after: after}
}

// Permanent marks err so Retry returns it without another attempt, whatever
// its kind.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return backoff.Permanent(err)
}

// RetryAfter returns the Retry-After hint attached to err, or zero.
func RetryAfter(err error) time.Duration {
	var rae *retryAfterError
	if errors.As(err, &rae) {
		return rae.after
	}

	return 0
}

// hintedBackOff waits at least as long as the last Retry-After hint.
type hintedBackOff struct {
	backoff.BackOff

	after time.Duration
}

func (h *hintedBackOff) NextBackOff() time.Duration {
	next := h.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if h.after > next {
		next = h.after
	}
	h.after = 0

	return next
}

// Retry calls op until it succeeds, returns a non retryable error, the policy
// is exhausted or ctx is done. The last error from op is returned, also when
// ctx ends during a wait.
//
// A Retry-After hint longer than what is left of MaxElapsedTime or of the ctx
// deadline is not waited out: the hinted error is returned at once so the
// caller can reschedule the work itself.
func Retry(ctx context.Context, policy Policy, op func(ctx context.Context) error) error {
	hinted := &hintedBackOff{BackOff: policy.backOff()}
	start := time.Now()
	attempt := 0

	var lastErr error
	err := backoff.RetryNotify(func() error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if !serrors.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		hint := RetryAfter(err)
		if hint > 0 && hint > policy.remaining(ctx, time.Since(start)) {
			return backoff.Permanent(err)
		}
		hinted.after = hint

		return err
	}, backoff.WithContext(hinted, ctx), func(err error, wait time.Duration) {
		logger.Debug(ctx, "retrying failed call",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait))
	})
	if err != nil {
		if lastErr != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return lastErr
		}

		return err //nolint: wrapcheck
	}

	return nil
}

// remaining is the time left for waiting after elapsed, bounded by both
// MaxElapsedTime and the ctx deadline.
func (p Policy) remaining(ctx context.Context, elapsed time.Duration) time.Duration {
	maxElapsed := p.MaxElapsedTime
	if maxElapsed <= 0 {
		maxElapsed = backoff.DefaultMaxElapsedTime
	}
	left := maxElapsed - elapsed
	if deadline, ok := ctx.Deadline(); ok {
		left = min(left, time.Until(deadline))
	}

	return left
}
