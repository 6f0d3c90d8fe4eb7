package postgres_test

import (
	"context"
	"testing"
	"time"

	"qcscargo/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_CustomerAnalytics(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := createCustomer(t, pgSQL, "mia")
	v := createVehicle(t, pgSQL, "van-9")

	t.Run("no activity", func(t *testing.T) {
		a, err := pgSQL.CustomerAnalytics(ctx, c.ID, time.Time{}, 6)
		require.NoError(t, err)
		require.Zero(t, a.TotalPackages)
		require.Empty(t, a.Monthly)
		require.Nil(t, a.LastActivityAt)
	})

	p1, err := pgSQL.CreatePackage(ctx, newPackage(c, "TBA000000000001"))
	require.NoError(t, err)
	_, err = pgSQL.CreatePackage(ctx, newPackage(c, "TBA000000000002"))
	require.NoError(t, err)
	_, err = pgSQL.UpdatePackageStatus(ctx, p1.ID, domain.PackageStatusReceived, domain.PackageStatusShipped, nil)
	require.NoError(t, err)

	_, err = pgSQL.CreateBooking(ctx, newBooking(c, v, "key-analytic", time.Now().Add(24*time.Hour), 2))
	require.NoError(t, err)

	q := newQuote(time.Now().Add(time.Hour))
	q.CustomerID = &c.ID
	created, err := pgSQL.CreateQuote(ctx, q)
	require.NoError(t, err)
	_, err = pgSQL.UpdateQuoteStatus(ctx, created.ID, domain.QuoteStatusIssued, domain.QuoteStatusAccepted)
	require.NoError(t, err)
	_, err = pgSQL.CreateQuote(ctx, q)
	require.NoError(t, err)

	a, err := pgSQL.CustomerAnalytics(ctx, c.ID, time.Now().Add(-time.Hour), 6)
	require.NoError(t, err)
	require.Equal(t, int64(2), a.TotalPackages)
	require.Equal(t, int64(1), a.PackagesByStatus[domain.PackageStatusShipped])
	require.Equal(t, int64(1), a.PackagesByStatus[domain.PackageStatusReceived])
	require.InDelta(t, 5.0, a.TotalWeightKg, 0.001)
	require.Equal(t, int64(1), a.BookingsByStatus[domain.BookingStatusConfirmed])
	require.Equal(t, int64(2), a.QuotesIssued)
	require.Equal(t, int64(1), a.QuotesAccepted)
	require.Equal(t, int64(5500), a.QuotedValueCents)
	require.Len(t, a.Monthly, 1)
	require.Equal(t, int64(2), a.Monthly[0].Packages)
	require.NotNil(t, a.LastActivityAt)
}
