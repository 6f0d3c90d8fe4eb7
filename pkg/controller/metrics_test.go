package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"qcscargo/pkg/controller"
	"qcscargo/pkg/metrics"
)

func TestWithMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(controller.WithMetrics)
	r.Get("/v1/bookings/{bookingID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	before := testutil.CollectAndCount(metrics.RequestDuration)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/9b2f", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Equal(t, before+1, testutil.CollectAndCount(metrics.RequestDuration))
}

func TestWithInFlight(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithInFlight(mp)
	require.NoError(t, err)

	var during int64
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = activeRequests(t, reader)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.EqualValues(t, 1, during)
	require.EqualValues(t, 0, activeRequests(t, reader))
}

func activeRequests(t *testing.T, reader *sdkmetric.ManualReader) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.active_requests" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}

			return total
		}
	}

	return 0
}
