package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"qcscargo/pkg/controller"
	"qcscargo/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:    "first forwarded address",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"},
			want:    "1.2.3.4",
		},
		{
			name:    "real ip header",
			headers: map[string]string{"X-Real-IP": "9.8.7.6"},
			want:    "9.8.7.6",
		},
		{
			name:       "remote address",
			remoteAddr: "10.0.0.1:12345",
			want:       "10.0.0.1",
		},
		{
			name:       "unparsable remote address",
			remoteAddr: "not-an-addr",
			want:       "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// observed returns a request whose context logs into an observer.
func observed(level zapcore.Level, target string) (*http.Request, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := logger.WithLogger(req.Context(), zap.New(core))

	return req.WithContext(ctx), logs
}

func TestWithLogger_RequestID(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("kept from the client", func(t *testing.T) {
		req, _ := observed(zap.InfoLevel, "/v1/bookings")
		req.Header.Set(controller.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		controller.WithLogger(echo).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "abc-123", rec.Header().Get("X-Echo-Request-Id"))
		require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))
	})

	t.Run("generated", func(t *testing.T) {
		req, _ := observed(zap.InfoLevel, "/v1/bookings")
		rec := httptest.NewRecorder()

		controller.WithLogger(echo).ServeHTTP(rec, req)

		require.NotEmpty(t, rec.Header().Get(controller.RequestIDHeader))
		require.Equal(t, rec.Header().Get(controller.RequestIDHeader), rec.Header().Get("X-Echo-Request-Id"))
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		req, _ := observed(zap.InfoLevel, "/v1/bookings")
		req.Header.Set(controller.RequestIDHeader, string(make([]byte, 200)))
		rec := httptest.NewRecorder()

		controller.WithLogger(echo).ServeHTTP(rec, req)

		require.Len(t, rec.Header().Get(controller.RequestIDHeader), 20)
	})
}

func TestWithLogger_AccessLog(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		controller.AddAccessLogFields(r.Context(), zap.String("user_id", "u-1"))
		_, _ = w.Write([]byte("hello"))
	})

	req, logs := observed(zap.InfoLevel, "/v1/me")
	controller.WithLogger(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/v1/me", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status_code"])
	require.EqualValues(t, 5, fields["bytes"])
	require.Equal(t, "u-1", fields["user_id"])
	require.NotEmpty(t, fields["request_id"])
	require.Equal(t, zap.InfoLevel, entries[0].Level)
}

func TestWithLogger_ServerErrorIsWarned(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.WriteHeader(http.StatusOK)
	})

	req, logs := observed(zap.InfoLevel, "/v1/quotes")
	controller.WithLogger(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("access log").All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.WarnLevel, entries[0].Level)
	require.EqualValues(t, http.StatusBadGateway, entries[0].ContextMap()["status_code"])
}

func TestAddAccessLogFields_OutsideMiddleware(t *testing.T) {
	require.NotPanics(t, func() {
		ctx := controller.AddAccessLogFields(context.Background(), zap.String("role", "staff"))
		require.NotNil(t, ctx)
	})
}
