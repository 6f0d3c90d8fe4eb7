package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"qcscargo/internal/booking"
	"qcscargo/internal/capacity"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newBooking(c *domain.Customer, v *domain.Vehicle, key string, start time.Time, hours int) domain.Booking {
	return domain.Booking{
		CustomerID:     c.ID,
		VehicleID:      v.ID,
		Reference:      "BK-" + key,
		IdempotencyKey: key,
		Fingerprint:    "fp-" + key,
		Window:         domain.TimeWindow{Start: start, End: start.Add(time.Duration(hours) * time.Hour)},
		Pickup: domain.Address{
			Line1:      "1 Main St",
			City:       "Miami",
			State:      "FL",
			PostalCode: "33101",
			Country:    "US",
		},
		WeightKg: 120,
		VolumeM3: 1.5,
		Pieces:   3,
		Status:   domain.BookingStatusConfirmed,
	}
}

func TestPgSQL_CreateBooking(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := createCustomer(t, pgSQL, "dave")
	v := createVehicle(t, pgSQL, "van-1", "331")
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour).UTC()

	b, err := pgSQL.CreateBooking(ctx, newBooking(c, v, "key-00000001", start, 2))
	require.NoError(t, err)
	require.Equal(t, "33101", b.Pickup.PostalCode)
	require.Equal(t, domain.BookingStatusConfirmed, b.Status)
	require.True(t, b.Window.Start.Equal(start))

	t.Run("same key is a duplicate", func(t *testing.T) {
		dup := newBooking(c, v, "key-00000001", start, 2)
		dup.Reference = "BK-other"
		_, err := pgSQL.CreateBooking(ctx, dup)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("lookup by idempotency key", func(t *testing.T) {
		got, err := pgSQL.BookingByIdempotencyKey(ctx, c.ID, "key-00000001")
		require.NoError(t, err)
		require.Equal(t, b.ID, got.ID)
		require.Equal(t, "fp-key-00000001", got.Fingerprint)

		other, err := pgSQL.BookingByIdempotencyKey(ctx, domain.CustomerID(uuid.New()), "key-00000001")
		require.NoError(t, err)
		require.Nil(t, other)
	})
}

func TestPgSQL_BookingsInWindow(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := createCustomer(t, pgSQL, "erin")
	v := createVehicle(t, pgSQL, "truck-1")
	day := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)

	morning, err := pgSQL.CreateBooking(ctx, newBooking(c, v, "key-morning1", day.Add(8*time.Hour), 2))
	require.NoError(t, err)
	_, err = pgSQL.CreateBooking(ctx, newBooking(c, v, "key-evening1", day.Add(18*time.Hour), 2))
	require.NoError(t, err)
	cancelled, err := pgSQL.CreateBooking(ctx, newBooking(c, v, "key-cancel01", day.Add(9*time.Hour), 2))
	require.NoError(t, err)
	_, err = pgSQL.UpdateBookingStatus(ctx, cancelled.ID, domain.BookingStatusConfirmed, domain.BookingStatusCancelled)
	require.NoError(t, err)

	got, err := pgSQL.BookingsInWindow(ctx, domain.TimeWindow{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(12 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, morning.ID, got[0].ID)

	// touching windows do not overlap
	got, err = pgSQL.BookingsInWindow(ctx, domain.TimeWindow{
		Start: day.Add(10 * time.Hour),
		End:   day.Add(18 * time.Hour),
	})
	require.NoError(t, err)
	require.Empty(t, got)

	all, err := pgSQL.BookingsInWindow(ctx, domain.Day(day))
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestPgSQL_UpdateBookingStatus(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := createCustomer(t, pgSQL, "frank")
	v := createVehicle(t, pgSQL, "truck-2")
	b, err := pgSQL.CreateBooking(ctx, newBooking(c, v, "key-status01", time.Now().Add(48*time.Hour), 1))
	require.NoError(t, err)

	updated, err := pgSQL.UpdateBookingStatus(ctx, b.ID, domain.BookingStatusConfirmed, domain.BookingStatusCancelled)
	require.NoError(t, err)
	require.Equal(t, domain.BookingStatusCancelled, updated.Status)

	// not in the expected status anymore
	again, err := pgSQL.UpdateBookingStatus(ctx, b.ID, domain.BookingStatusConfirmed, domain.BookingStatusCancelled)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestPgSQL_CustomerBookings(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := createCustomer(t, pgSQL, "gina")
	other := createCustomer(t, pgSQL, "hank")
	v := createVehicle(t, pgSQL, "truck-3")
	start := time.Now().Add(72 * time.Hour)

	for _, key := range []string{"key-page0001", "key-page0002", "key-page0003"} {
		_, err := pgSQL.CreateBooking(ctx, newBooking(c, v, key, start, 1))
		require.NoError(t, err)
	}
	_, err := pgSQL.CreateBooking(ctx, newBooking(other, v, "key-other001", start, 1))
	require.NoError(t, err)

	page, err := pgSQL.CustomerBookings(ctx, c.ID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, "key-page0003", page.Items[0].IdempotencyKey)

	rest, err := pgSQL.CustomerBookings(ctx, c.ID, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, rest.Items, 1)
	require.Nil(t, rest.NextCursor)
}

func TestPgSQL_ConcurrentBookingsRespectCapacity(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	migrateRiver(t, pgSQL)
	ctx := context.Background()

	c := createCustomer(t, pgSQL, "gina")
	v := createVehicle(t, pgSQL, "van-cap", "331")
	bookings := booking.New(pgSQL, booking.Options{
		MaxWindow:           8 * time.Hour,
		MinLeadTime:         time.Hour,
		ClusterPrefixLength: 3,
		Location:            time.UTC,
	})
	principal := domain.Principal{UserID: c.UserID, Role: domain.RoleCustomer}
	start := domain.Day(time.Now().UTC().Add(48 * time.Hour)).Start.Add(10 * time.Hour)

	const (
		requests = 8
		weightKg = 300.0
	)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected []error
	)
	for i := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := bookings.Create(ctx, principal, fmt.Sprintf("concurrent-key-%02d", i), booking.Request{
				Window: domain.TimeWindow{Start: start, End: start.Add(2 * time.Hour)},
				Pickup: domain.Address{
					Line1: "1 Main St", City: "Miami", State: "FL", PostalCode: "33101", Country: "US",
				},
				WeightKg: weightKg,
				VolumeM3: 1,
				Pieces:   1,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rejected = append(rejected, err)

				return
			}
			accepted++
		}()
	}
	wg.Wait()

	// 1000 kg van: three 300 kg loads fit, a fourth does not
	require.Equal(t, 3, accepted)
	require.Len(t, rejected, requests-3)
	for _, err := range rejected {
		require.ErrorIs(t, err, capacity.ErrNoCapacity)
		require.ErrorIs(t, err, serrors.ErrUnprocessable)
	}

	stored, err := pgSQL.BookingsInWindow(ctx, domain.TimeWindow{Start: start, End: start.Add(2 * time.Hour)})
	require.NoError(t, err)
	total := 0.0
	for _, b := range stored {
		require.Equal(t, v.ID, b.VehicleID)
		total += b.WeightKg
	}
	require.Len(t, stored, 3)
	require.LessOrEqual(t, total, v.CapacityKg)
}
