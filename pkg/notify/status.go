package notify

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"
)

// maxErrorBody caps how much of an error response ends up in error messages.
const maxErrorBody = 512

// StatusError converts a non 2xx provider response into a semantic error.
// provider names the API in the message; body is the response payload.
func StatusError(provider string, resp *http.Response, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return resilience.WithRetryAfter(
			serrors.With(serrors.ErrRateLimited, "%s rate limited: %s", provider, msg),
			ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		)
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout:
		return serrors.With(serrors.ErrTimeout, "%s timed out (%d): %s", provider, resp.StatusCode, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return serrors.With(serrors.ErrBadRequest, "%s rejected request (%d): %s", provider, resp.StatusCode, msg)
	default:
		return serrors.With(serrors.ErrUnavailable, "%s failed (%d): %s", provider, resp.StatusCode, msg)
	}
}

// TransportError classifies an error returned by http.Client.Do.
func TransportError(provider string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "%s request timed out", provider)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach %s", provider)
}

// ParseRetryAfter parses a Retry-After header given either in seconds or as
// an HTTP date. Unparsable or past values yield zero.
func ParseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}

		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}

	return 0
}
