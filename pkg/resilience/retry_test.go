package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) resilience.Policy {
	return resilience.Policy{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  time.Second,
		MaxAttempts:     attempts,
	}
}

func TestRetry_SucceedsAfterTransientErrors(t *testing.T) {
	calls := 0
	err := resilience.Retry(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++
		if calls < 3 {
			return serrors.With(serrors.ErrUnavailable, "provider down")
		}

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := resilience.Retry(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++

		return serrors.With(serrors.ErrBadRequest, "invalid phone number")
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, 1, calls)
}

func TestRetry_PermanentStopsRetryableError(t *testing.T) {
	calls := 0
	err := resilience.Retry(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++

		return resilience.Permanent(serrors.With(serrors.ErrUnavailable, "account suspended"))
	})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, 1, calls)
}

func TestRetry_UnclassifiedErrorIsNotRetried(t *testing.T) {
	calls := 0
	err := resilience.Retry(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	require.Equal(t, 1, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := resilience.Retry(context.Background(), fastPolicy(3), func(context.Context) error {
		calls++

		return serrors.With(serrors.ErrTimeout, "slow")
	})
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, 3, calls)
}

func TestRetry_HonoursRetryAfter(t *testing.T) {
	calls := 0
	start := time.Now()
	err := resilience.Retry(context.Background(), fastPolicy(2), func(context.Context) error {
		calls++
		if calls == 1 {
			return resilience.WithRetryAfter(serrors.With(serrors.ErrRateLimited, "slow down"), 50*time.Millisecond)
		}

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := resilience.Retry(ctx, resilience.Policy{
		InitialInterval: time.Hour,
		MaxInterval:     time.Hour,
		MaxElapsedTime:  2 * time.Hour,
	}, func(context.Context) error {
		calls++
		cancel()

		return serrors.With(serrors.ErrUnavailable, "down")
	})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, 1, calls)
}

func TestRetry_RetryAfterBeyondDeadlineReturnsAtOnce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	calls := 0
	start := time.Now()
	err := resilience.Retry(ctx, fastPolicy(5), func(context.Context) error {
		calls++

		return resilience.WithRetryAfter(serrors.With(serrors.ErrRateLimited, "slow down"), 2*time.Minute)
	})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 2*time.Minute, resilience.RetryAfter(err))
	require.Equal(t, 1, calls)
	require.Less(t, time.Since(start), 250*time.Millisecond)
	require.NoError(t, ctx.Err())
}

func TestRetry_RetryAfterBeyondMaxElapsedReturnsAtOnce(t *testing.T) {
	calls := 0
	err := resilience.Retry(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++

		return resilience.WithRetryAfter(serrors.With(serrors.ErrRateLimited, "slow down"), 10*time.Second)
	})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 10*time.Second, resilience.RetryAfter(err))
	require.Equal(t, 1, calls)
}

func TestRetryAfter(t *testing.T) {
	base := serrors.With(serrors.ErrRateLimited, "limited")

	require.Zero(t, resilience.RetryAfter(base))
	require.Equal(t, 3*time.Second, resilience.RetryAfter(resilience.WithRetryAfter(base, 3*time.Second)))
	require.ErrorIs(t, resilience.WithRetryAfter(base, time.Second), serrors.ErrRateLimited)
	require.NoError(t, resilience.WithRetryAfter(nil, time.Second))
	require.Equal(t, base, resilience.WithRetryAfter(base, 0))
}
