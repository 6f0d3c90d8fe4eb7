package storage

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// QuoteStorage persists quotes and the tariffs they are priced with.
type QuoteStorage interface {
	CreateQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error)
	QuoteByID(ctx context.Context, ID domain.QuoteID) (*domain.Quote, error)
	// UpdateQuoteStatus moves a quote from one status to another. It returns
	// nil when the quote does not exist or is not in status from.
	UpdateQuoteStatus(ctx context.Context, ID domain.QuoteID, from, to domain.QuoteStatus) (*domain.Quote, error)
	// ExpireQuotes marks issued quotes whose expiry is before now as expired
	// and returns how many were changed.
	ExpireQuotes(ctx context.Context, now time.Time) (int64, error)

	ShippingRate(ctx context.Context, destination string, level domain.ServiceLevel) (*domain.ShippingRate, error)
	// UpsertShippingRate inserts or replaces the rate of a destination and
	// service level.
	UpsertShippingRate(ctx context.Context, rate domain.ShippingRate) (*domain.ShippingRate, error)
	// ShippingRates lists all rates ordered by destination and service level.
	ShippingRates(ctx context.Context) ([]domain.ShippingRate, error)
}
