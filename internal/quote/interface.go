package quote

import (
	"context"

	"qcscargo/pkg/domain"
)

// Service issues and serves shipping quotes. A nil principal is an
// anonymous visitor of the marketing site.
//
//go:generate mockgen -package mockquote -source=interface.go -destination=mock/mockquote.go *
type Service interface {
	Create(ctx context.Context, principal *domain.Principal, req Request) (*domain.Quote, error)
	Get(ctx context.Context, principal *domain.Principal, ID domain.QuoteID) (*domain.Quote, error)
	Accept(ctx context.Context, principal domain.Principal, ID domain.QuoteID) (*domain.Quote, error)
	PDF(ctx context.Context, principal *domain.Principal, ID domain.QuoteID) ([]byte, error)

	Rates(ctx context.Context) ([]domain.ShippingRate, error)
	UpsertRate(ctx context.Context, rate domain.ShippingRate) (*domain.ShippingRate, error)
}
