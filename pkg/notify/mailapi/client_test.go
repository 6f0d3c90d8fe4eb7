package mailapi_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"qcscargo/pkg/notify"
	"qcscargo/pkg/notify/mailapi"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *mailapi.Client {
	return mailapi.New(&http.Client{Transport: fn}, "https://mail.test/", "test-key", "QCS Cargo <no-reply@qcs.test>")
}

func response(code int, body string, h http.Header) *http.Response {
	if h == nil {
		h = http.Header{}
	}

	return &http.Response{StatusCode: code, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestClient_SendEmail_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "mail.test", r.URL.Host)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			From        string   `json:"from"`
			To          []string `json:"to"`
			Subject     string   `json:"subject"`
			Text        string   `json:"text"`
			Attachments []struct {
				Filename string `json:"filename"`
				Content  string `json:"content"`
			} `json:"attachments"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "QCS Cargo <no-reply@qcs.test>", body.From)
		require.Equal(t, []string{"ann@example.com"}, body.To)
		require.Equal(t, "Your quote", body.Subject)
		require.Len(t, body.Attachments, 1)
		require.Equal(t, "quote.pdf", body.Attachments[0].Filename)
		require.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF")), body.Attachments[0].Content)

		return response(http.StatusOK, `{"id":"em_123"}`, nil), nil
	})

	id, err := c.SendEmail(context.Background(), notify.Email{
		To:          []string{"ann@example.com"},
		Subject:     "Your quote",
		Text:        "see attached",
		Attachments: []notify.Attachment{{Filename: "quote.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}},
	})
	require.NoError(t, err)
	require.Equal(t, "em_123", id)
}

func TestClient_SendEmail_noRecipients(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("request must not be sent")

		return nil, nil
	})

	_, err := c.SendEmail(context.Background(), notify.Email{Subject: "x"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_SendEmail_rateLimited429(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		h := http.Header{}
		h.Set("Retry-After", "3")

		return response(http.StatusTooManyRequests, `{"message":"too many requests"}`, h), nil
	})

	_, err := c.SendEmail(context.Background(), notify.Email{To: []string{"ann@example.com"}})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 3*time.Second, resilience.RetryAfter(err))
}

func TestClient_SendEmail_validationError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusUnprocessableEntity, `{"message":"invalid to"}`, nil), nil
	})

	_, err := c.SendEmail(context.Background(), notify.Email{To: []string{"nope"}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "invalid to")
}

func TestClient_SendEmail_serverError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusInternalServerError, `oops`, nil), nil
	})

	_, err := c.SendEmail(context.Background(), notify.Email{To: []string{"ann@example.com"}})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_SendEmail_transportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	_, err := c.SendEmail(context.Background(), notify.Email{To: []string{"ann@example.com"}})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_SendEmail_badJSON(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusOK, `{not json`, nil), nil
	})

	_, err := c.SendEmail(context.Background(), notify.Email{To: []string{"ann@example.com"}})
	require.Error(t, err)
	require.False(t, serrors.IsRetryable(err))
}
