package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"qcscargo/internal/api"
	"qcscargo/internal/api/handler/v1handler"
	"qcscargo/pkg/controller"
	"qcscargo/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newHandler(t *testing.T, deps api.Deps, mutate func(*api.Options)) http.Handler {
	t.Helper()
	opts := api.Options{
		SecHandlerOptions:  &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		MetricsPath:        "/metrics",
		RequestTimeout:     5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
	if mutate != nil {
		mutate(&opts)
	}

	srv, err := api.NewServer(context.Background(), deps, opts)
	require.NoError(t, err)

	return srv.Handler
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestNewServer_InvalidKey(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "not a key"},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}

func TestHealthz(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := newHandler(t, api.Deps{Health: pinger{}}, nil)

		rec := serve(h, http.MethodGet, "/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		h := newHandler(t, api.Deps{Health: pinger{err: errors.New("connection refused")}}, nil)

		rec := serve(h, http.MethodGet, "/healthz")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body controller.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "UNAVAILABLE", body.Code)
		require.NotEmpty(t, body.RequestID)
	})
}

func TestServer_Routes(t *testing.T) {
	h := newHandler(t, api.Deps{}, nil)

	rec := serve(h, http.MethodGet, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/v1/me")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")

	// the job dashboard is off by default
	rec = serve(h, http.MethodGet, "/riverui/")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	h := newHandler(t, api.Deps{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/bookings", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestServer_RateLimit(t *testing.T) {
	h := newHandler(t, api.Deps{}, func(o *api.Options) {
		o.RateLimit = &controller.RateLimitOptions{
			RequestsPerSecond: 0.001,
			Burst:             1,
			CacheSize:         16,
			TTL:               time.Minute,
		}
	})

	rec := serve(h, http.MethodGet, "/v1/me")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, http.MethodGet, "/v1/me")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// only the API is limited
	rec = serve(h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
}
