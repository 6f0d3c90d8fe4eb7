package notify_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"qcscargo/pkg/notify"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestStatusError(t *testing.T) {
	resp := func(code int, h http.Header) *http.Response {
		if h == nil {
			h = http.Header{}
		}

		return &http.Response{StatusCode: code, Header: h}
	}

	h := http.Header{}
	h.Set("Retry-After", "7")
	err := notify.StatusError("test", resp(http.StatusTooManyRequests, h), []byte("slow down"))
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 7*time.Second, resilience.RetryAfter(err))

	require.ErrorIs(t, notify.StatusError("test", resp(http.StatusUnprocessableEntity, nil), nil), serrors.ErrBadRequest)
	require.ErrorIs(t, notify.StatusError("test", resp(http.StatusGatewayTimeout, nil), nil), serrors.ErrTimeout)
	require.ErrorIs(t, notify.StatusError("test", resp(http.StatusBadGateway, nil), nil), serrors.ErrUnavailable)
}

func TestTransportError(t *testing.T) {
	require.ErrorIs(t, notify.TransportError("test", errors.New("connection refused")), serrors.ErrUnavailable)
	require.ErrorIs(t, notify.TransportError("test", context.DeadlineExceeded), serrors.ErrTimeout)

	err := notify.TransportError("test", context.Canceled)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, serrors.IsRetryable(err))
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, 30*time.Second, notify.ParseRetryAfter("30", now))
	require.Equal(t, 2*time.Minute, notify.ParseRetryAfter(now.Add(2*time.Minute).Format(http.TimeFormat), now))
	require.Zero(t, notify.ParseRetryAfter(now.Add(-time.Minute).Format(http.TimeFormat), now))
	require.Zero(t, notify.ParseRetryAfter("-5", now))
	require.Zero(t, notify.ParseRetryAfter("soon", now))
	require.Zero(t, notify.ParseRetryAfter("", now))
}
