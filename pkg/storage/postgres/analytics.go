package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"qcscargo/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type statusCount struct {
	Status   string  `db:"status"`
	Count    int64   `db:"count"`
	WeightKg float64 `db:"weight_kg"`
}

type quoteTotals struct {
	Issued   int64 `db:"issued"`
	Accepted int64 `db:"accepted"`
	Value    int64 `db:"value"`
}

type monthlyRow struct {
	Month    time.Time `db:"month"`
	Packages int64     `db:"packages"`
	WeightKg float64   `db:"weight_kg"`
}

// CustomerAnalytics runs one aggregate query per table. The queries are not
// wrapped in a transaction; figures may be off by in-flight writes.
func (p *PgSQL) CustomerAnalytics(ctx context.Context,
	customerID domain.CustomerID,
	since time.Time,
	months int) (*domain.CustomerAnalytics, error) {
	cid := uuid.UUID(customerID)
	out := &domain.CustomerAnalytics{
		CustomerID:       customerID,
		Since:            since,
		PackagesByStatus: map[domain.PackageStatus]int64{},
		BookingsByStatus: map[domain.BookingStatus]int64{},
		Monthly:          []domain.MonthlyVolume{},
	}

	var packages []statusCount
	if err := p.Builder.From(packagesTable).
		Select(
			goqu.I("status"),
			goqu.COUNT(goqu.Star()).As("count"),
			goqu.COALESCE(goqu.SUM("weight_kg"), 0).As("weight_kg"),
		).
		Where(goqu.I("customer_id").Eq(cid), goqu.I("received_at").Gte(since)).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &packages); err != nil {
		return nil, fmt.Errorf("could not aggregate packages: %w", err)
	}
	for _, row := range packages {
		out.PackagesByStatus[domain.PackageStatus(row.Status)] = row.Count
		out.TotalPackages += row.Count
		out.TotalWeightKg += row.WeightKg
	}

	var bookings []statusCount
	if err := p.Builder.From(bookingsTable).
		Select(
			goqu.I("status"),
			goqu.COUNT(goqu.Star()).As("count"),
			goqu.COALESCE(goqu.SUM("weight_kg"), 0).As("weight_kg"),
		).
		Where(goqu.I("customer_id").Eq(cid), goqu.I("created_at").Gte(since)).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("could not aggregate bookings: %w", err)
	}
	for _, row := range bookings {
		out.BookingsByStatus[domain.BookingStatus(row.Status)] = row.Count
	}

	var quotes quoteTotals
	if _, err := p.Builder.From(quotesTable).
		Select(
			goqu.COUNT(goqu.Star()).As("issued"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", string(domain.QuoteStatusAccepted)).As("accepted"),
			goqu.L("COALESCE(SUM(total_cents), 0)::bigint").As("value"),
		).
		Where(goqu.I("customer_id").Eq(cid), goqu.I("created_at").Gte(since)).
		Executor().ScanStructContext(ctx, &quotes); err != nil {
		return nil, fmt.Errorf("could not aggregate quotes: %w", err)
	}
	out.QuotesIssued = quotes.Issued
	out.QuotesAccepted = quotes.Accepted
	out.QuotedValueCents = quotes.Value

	if months > 0 {
		month := goqu.L("date_trunc('month', received_at)")
		y, m, _ := time.Now().UTC().Date()
		from := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

		var monthly []monthlyRow
		if err := p.Builder.From(packagesTable).
			Select(
				month.As("month"),
				goqu.COUNT(goqu.Star()).As("packages"),
				goqu.COALESCE(goqu.SUM("weight_kg"), 0).As("weight_kg"),
			).
			Where(goqu.I("customer_id").Eq(cid), goqu.I("received_at").Gte(from)).
			GroupBy(month).
			Order(month.Asc()).
			Executor().ScanStructsContext(ctx, &monthly); err != nil {
			return nil, fmt.Errorf("could not aggregate monthly volume: %w", err)
		}
		for _, row := range monthly {
			out.Monthly = append(out.Monthly, domain.MonthlyVolume(row))
		}
	}

	var last sql.NullTime
	if err := p.DB.QueryRowContext(ctx, `SELECT GREATEST(
		(SELECT MAX(received_at) FROM packages WHERE customer_id = $1),
		(SELECT MAX(created_at) FROM bookings WHERE customer_id = $1),
		(SELECT MAX(created_at) FROM quotes WHERE customer_id = $1))`, cid).Scan(&last); err != nil {
		return nil, fmt.Errorf("could not fetch last activity: %w", err)
	}
	out.LastActivityAt = timePtr(last)

	return out, nil
}
