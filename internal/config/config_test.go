package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"qcscargo/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	require.Equal(t, 8*time.Hour, cfg.Booking.MaxWindow)
	require.InDelta(t, 5000.0, cfg.Quote.VolumetricDivisor, 0)
	require.Equal(t, int64(10<<20), cfg.Documents.MaxSizeBytes)
	require.Equal(t, uint32(5), cfg.Notify.Breaker.FailureThreshold)
	require.Equal(t, time.Hour, cfg.Worker.QuoteExpiryInterval)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9090"
quote:
  fuelSurchargePercent: 8.5
booking:
  maxWindow: 4h
`)
	t.Setenv("WORKER_MAX_WORKERS", "3")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.InDelta(t, 8.5, cfg.Quote.FuelSurchargePercent, 0.0001)
	require.Equal(t, 4*time.Hour, cfg.Booking.MaxWindow)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
