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

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := resilience.NewBreaker(resilience.BreakerOptions{
		Name:             "sms-open",
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	})
	ctx := context.Background()
	down := func(context.Context) error { return serrors.With(serrors.ErrUnavailable, "502") }

	require.ErrorIs(t, b.Execute(ctx, down), serrors.ErrUnavailable)
	require.Equal(t, "closed", b.State())
	require.ErrorIs(t, b.Execute(ctx, down), serrors.ErrUnavailable)
	require.Equal(t, "open", b.State())

	called := false
	err := b.Execute(ctx, func(context.Context) error {
		called = true

		return nil
	})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.False(t, called)
}

func TestBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	b := resilience.NewBreaker(resilience.BreakerOptions{Name: "email-client", FailureThreshold: 1})
	ctx := context.Background()

	for range 3 {
		err := b.Execute(ctx, func(context.Context) error {
			return serrors.With(serrors.ErrBadRequest, "invalid recipient")
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
	require.Equal(t, "closed", b.State())

	err := b.Execute(ctx, func(context.Context) error { return errors.New("connection reset") })
	require.EqualError(t, err, "connection reset")
	require.Equal(t, "open", b.State())
}

func TestBreaker_HalfOpenRecovers(t *testing.T) {
	b := resilience.NewBreaker(resilience.BreakerOptions{
		Name:             "email-recover",
		FailureThreshold: 1,
		OpenTimeout:      20 * time.Millisecond,
	})
	ctx := context.Background()

	_ = b.Execute(ctx, func(context.Context) error { return serrors.With(serrors.ErrTimeout, "slow") })
	require.Equal(t, "open", b.State())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, "half-open", b.State())
	require.NoError(t, b.Execute(ctx, func(context.Context) error { return nil }))
	require.Equal(t, "closed", b.State())
}
