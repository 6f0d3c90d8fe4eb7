package postgres

import (
	"context"
	"fmt"
	"time"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	bookingsTable = "bookings"
)

func (p *PgSQL) CreateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	var row PgBooking
	if err := row.FromDomain(booking); err != nil {
		return nil, err
	}

	var result PgBooking
	if _, err := p.Builder.Insert(bookingsTable).
		Rows(row).
		Returning(&PgBooking{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store booking into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) bookingBy(ctx context.Context, where ...goqu.Expression) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.From(bookingsTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch booking: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) BookingByID(ctx context.Context, id domain.BookingID) (*domain.Booking, error) {
	return p.bookingBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) BookingByIdempotencyKey(ctx context.Context,
	customerID domain.CustomerID,
	key string) (*domain.Booking, error) {
	return p.bookingBy(ctx,
		goqu.I("customer_id").Eq(uuid.UUID(customerID)),
		goqu.I("idempotency_key").Eq(key),
	)
}

// BookingsInWindow returns non-cancelled bookings with window_start < window.End
// and window_end > window.Start.
func (p *PgSQL) BookingsInWindow(ctx context.Context, window domain.TimeWindow) ([]domain.Booking, error) {
	var rows []PgBooking
	if err := p.Builder.From(bookingsTable).
		Where(
			goqu.I("status").Neq(string(domain.BookingStatusCancelled)),
			goqu.I("window_start").Lt(window.End),
			goqu.I("window_end").Gt(window.Start),
		).
		Order(goqu.I("window_start").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch bookings in window from pg: %w", err)
	}

	return toDomain[domain.Booking](rows)
}

// CustomerBookings returns bookings ordered by created_at DESC, id DESC.
func (p *PgSQL) CustomerBookings(ctx context.Context,
	customerID domain.CustomerID,
	cursor time.Time,
	limit uint) (storage.Page[domain.Booking], error) {
	w := []goqu.Expression{
		goqu.I("customer_id").Eq(uuid.UUID(customerID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	var rows []PgBooking
	if err := p.Builder.From(bookingsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Booking]{}, fmt.Errorf("could not fetch customer bookings from pg: %w", err)
	}

	return paginate[domain.Booking](rows, limit)
}

func (p *PgSQL) UpdateBookingStatus(ctx context.Context,
	id domain.BookingID,
	from, to domain.BookingStatus) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.Update(bookingsTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgBooking{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update booking status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
