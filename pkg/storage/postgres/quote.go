package postgres

import (
	"context"
	"fmt"
	"time"

	"qcscargo/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	quotesTable = "quotes"
	ratesTable  = "shipping_rates"
)

func (p *PgSQL) CreateQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error) {
	var row PgQuote
	if err := row.FromDomain(quote); err != nil {
		return nil, err
	}

	var result PgQuote
	if _, err := p.Builder.Insert(quotesTable).
		Rows(row).
		Returning(&PgQuote{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store quote into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) QuoteByID(ctx context.Context, id domain.QuoteID) (*domain.Quote, error) {
	var row PgQuote
	found, err := p.Builder.From(quotesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch quote by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateQuoteStatus(ctx context.Context,
	id domain.QuoteID,
	from, to domain.QuoteStatus) (*domain.Quote, error) {
	var row PgQuote
	found, err := p.Builder.Update(quotesTable).
		Set(goqu.Record{"status": string(to)}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgQuote{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update quote status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ExpireQuotes(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Update(quotesTable).
		Set(goqu.Record{"status": string(domain.QuoteStatusExpired)}).
		Where(
			goqu.I("status").Eq(string(domain.QuoteStatusIssued)),
			goqu.I("expires_at").Lte(now),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not expire quotes in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count expired quotes: %w", err)
	}

	return n, nil
}

func (p *PgSQL) ShippingRate(ctx context.Context,
	destination string,
	level domain.ServiceLevel) (*domain.ShippingRate, error) {
	var row PgShippingRate
	found, err := p.Builder.From(ratesTable).
		Where(
			goqu.I("destination").Eq(destination),
			goqu.I("service_level").Eq(string(level)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipping rate: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpsertShippingRate(ctx context.Context, rate domain.ShippingRate) (*domain.ShippingRate, error) {
	var row PgShippingRate
	row.FromDomain(rate)

	var result PgShippingRate
	if _, err := p.Builder.Insert(ratesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("destination, service_level", goqu.Record{
			"rate_per_kg_cents": goqu.L("EXCLUDED.rate_per_kg_cents"),
			"minimum_cents":     goqu.L("EXCLUDED.minimum_cents"),
			"transit_days_min":  goqu.L("EXCLUDED.transit_days_min"),
			"transit_days_max":  goqu.L("EXCLUDED.transit_days_max"),
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgShippingRate{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not upsert shipping rate into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) ShippingRates(ctx context.Context) ([]domain.ShippingRate, error) {
	var rows []PgShippingRate
	if err := p.Builder.From(ratesTable).
		Order(goqu.I("destination").Asc(), goqu.I("service_level").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch shipping rates from pg: %w", err)
	}

	return toDomain[domain.ShippingRate](rows)
}
