package storage

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// BookingStorage persists pickup bookings.
type BookingStorage interface {
	// CreateBooking inserts a booking. Reusing an idempotency key for the same
	// customer fails with ErrDuplicate.
	CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	BookingByID(ctx context.Context, ID domain.BookingID) (*domain.Booking, error)
	BookingByIdempotencyKey(ctx context.Context, customerID domain.CustomerID, key string) (*domain.Booking, error)
	// BookingsInWindow returns the non-cancelled bookings whose window overlaps
	// window, ordered by window start.
	BookingsInWindow(ctx context.Context, window domain.TimeWindow) ([]domain.Booking, error)
	// CustomerBookings returns the customer's bookings created before cursor,
	// newest first.
	CustomerBookings(ctx context.Context,
		customerID domain.CustomerID,
		cursor time.Time,
		limit uint) (Page[domain.Booking], error)
	// UpdateBookingStatus moves a booking from one status to another. It
	// returns nil when the booking does not exist or is not in status from.
	UpdateBookingStatus(ctx context.Context,
		ID domain.BookingID,
		from, to domain.BookingStatus) (*domain.Booking, error)
}
