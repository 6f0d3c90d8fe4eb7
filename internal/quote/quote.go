// Package quote prices shipments and issues quotes. Quotes are e-mailed with
// a PDF attachment by a background job enqueued with the quote.
package quote

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"qcscargo/internal/config"
	"qcscargo/internal/jobs"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/metrics"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"go.uber.org/zap"
)

const (
	maxPieces      = 50
	maxDimensionCm = 400
	maxPieceKg     = 1000
)

// Options configure quote pricing and validity.
type Options struct {
	// Tariff holds the surcharges applied on top of the per kg route rate.
	Tariff Tariff
	// Origin is the ISO country code every quote ships from.
	Origin string
	// Currency is the ISO 4217 code amounts are quoted in.
	Currency string
	// Validity is how long an issued quote can be accepted before the
	// expiry job marks it expired.
	Validity time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Tariff: Tariff{
			VolumetricDivisor:     cfg.Quote.VolumetricDivisor,
			FuelSurchargePercent:  cfg.Quote.FuelSurchargePercent,
			HandlingFeeCents:      cfg.Quote.HandlingFeeCents,
			InsuranceRatePercent:  cfg.Quote.InsuranceRatePercent,
			InsuranceMinimumCents: cfg.Quote.InsuranceMinimumCents,
		},
		Origin:   cfg.Quote.Origin,
		Currency: cfg.Quote.Currency,
		Validity: cfg.Quote.Validity,
	}
}

// Request is a quote request.
type Request struct {
	Name               string
	Email              string
	Destination        string
	ServiceLevel       domain.ServiceLevel
	Pieces             []domain.Piece
	DeclaredValueCents int64
	Insured            bool
}

type service struct {
	options Options
	storage storage.Storage
}

func validPiece(i int, p domain.Piece) error {
	for _, d := range []float64{p.LengthCm, p.WidthCm, p.HeightCm} {
		if d <= 0 || d > maxDimensionCm {
			return serrors.With(serrors.ErrBadRequest, "piece %d: dimensions must be between 0 and %d cm", i+1, maxDimensionCm)
		}
	}
	if p.WeightKg <= 0 || p.WeightKg > maxPieceKg {
		return serrors.With(serrors.ErrBadRequest, "piece %d: weight must be between 0 and %d kg", i+1, maxPieceKg)
	}

	return nil
}

func (s service) normalize(req *Request, profile *domain.Customer) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if profile != nil {
		if req.Name == "" {
			req.Name = profile.Name
		}
		if req.Email == "" {
			req.Email = profile.Email
		}
	}
	if req.Name == "" {
		return serrors.With(serrors.ErrBadRequest, "name is required")
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid e-mail address")
	}
	req.Email = strings.ToLower(addr.Address)

	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	if len(req.Destination) != 2 {
		return serrors.With(serrors.ErrBadRequest, "destination must be an ISO 3166-1 alpha-2 country code")
	}
	if !req.ServiceLevel.Valid() {
		return serrors.With(serrors.ErrBadRequest, "invalid service level %q", req.ServiceLevel)
	}
	if len(req.Pieces) == 0 || len(req.Pieces) > maxPieces {
		return serrors.With(serrors.ErrBadRequest, "a quote needs between 1 and %d pieces", maxPieces)
	}
	for i, p := range req.Pieces {
		if err := validPiece(i, p); err != nil {
			return err
		}
	}
	if req.DeclaredValueCents < 0 {
		return serrors.With(serrors.ErrBadRequest, "declared value must not be negative")
	}

	return nil
}

// Create prices and stores a quote and enqueues the e-mail carrying its PDF.
func (s service) Create(ctx context.Context, principal *domain.Principal, req Request) (*domain.Quote, error) {
	var profile *domain.Customer
	if principal != nil {
		c, err := s.storage.CustomerByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("could not get customer: %w", err)
		}
		profile = c
	}
	if err := s.normalize(&req, profile); err != nil {
		return nil, err
	}

	rate, err := s.storage.ShippingRate(ctx, req.Destination, req.ServiceLevel)
	if err != nil {
		return nil, fmt.Errorf("could not get shipping rate: %w", err)
	}
	if rate == nil {
		return nil, serrors.With(serrors.ErrBadRequest,
			"%s shipping to %s is not offered", req.ServiceLevel, req.Destination)
	}

	pricing := Price(req.Pieces, *rate, s.options.Tariff, req.DeclaredValueCents, req.Insured)
	q := domain.Quote{
		Name:               req.Name,
		Email:              req.Email,
		Origin:             s.options.Origin,
		Destination:        req.Destination,
		ServiceLevel:       req.ServiceLevel,
		Pieces:             req.Pieces,
		DeclaredValueCents: req.DeclaredValueCents,
		Insured:            req.Insured,
		ActualWeightKg:     pricing.ActualWeightKg,
		VolumetricWeightKg: pricing.VolumetricWeightKg,
		ChargeableWeightKg: pricing.ChargeableWeightKg,
		Lines:              pricing.Lines,
		TotalCents:         pricing.TotalCents,
		Currency:           s.options.Currency,
		TransitDaysMin:     rate.TransitDaysMin,
		TransitDaysMax:     rate.TransitDaysMax,
		Status:             domain.QuoteStatusIssued,
		ExpiresAt:          time.Now().Add(s.options.Validity).UTC(),
	}
	if profile != nil {
		q.CustomerID = &profile.ID
	}

	var created *domain.Quote
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.CreateQuote(ctx, q)
		if err != nil {
			return fmt.Errorf("could not store quote: %w", err)
		}
		if _, err := tx.AddJob(ctx, jobs.QuoteEmailArgs{QuoteID: created.ID}, nil); err != nil {
			return fmt.Errorf("could not enqueue quote e-mail: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create quote: %w", err)
	}

	metrics.QuotesIssued.WithLabelValues(created.Destination).Inc()
	logger.Info(ctx, "quote issued",
		zap.String("quoteID", created.ID.String()),
		zap.String("destination", created.Destination),
		zap.Int64("totalCents", created.TotalCents))

	return created, nil
}

// Get returns a quote. Quotes issued to a customer are only visible to that
// customer and staff; anonymous quotes are readable by anyone with the id.
func (s service) Get(ctx context.Context, principal *domain.Principal, ID domain.QuoteID) (*domain.Quote, error) {
	q, err := s.storage.QuoteByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get quote: %w", err)
	}
	if q == nil {
		return nil, serrors.With(serrors.ErrNotFound, "quote not found")
	}
	if q.CustomerID == nil || (principal != nil && principal.Role.IsStaff()) {
		return q, nil
	}
	if principal == nil {
		return nil, serrors.With(serrors.ErrNotFound, "quote not found")
	}

	c, err := s.storage.CustomerByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get customer: %w", err)
	}
	if c == nil || c.ID != *q.CustomerID {
		return nil, serrors.With(serrors.ErrNotFound, "quote not found")
	}

	return q, nil
}

// Accept marks an issued, unexpired quote as accepted.
func (s service) Accept(ctx context.Context, principal domain.Principal, ID domain.QuoteID) (*domain.Quote, error) {
	q, err := s.Get(ctx, &principal, ID)
	if err != nil {
		return nil, err
	}
	if q.Status != domain.QuoteStatusIssued {
		return nil, serrors.With(serrors.ErrConflict, "quote is %s", q.Status)
	}
	if time.Now().After(q.ExpiresAt) {
		return nil, serrors.With(serrors.ErrConflict, "quote has expired")
	}

	accepted, err := s.storage.UpdateQuoteStatus(ctx, ID, domain.QuoteStatusIssued, domain.QuoteStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("could not accept quote: %w", err)
	}
	if accepted == nil {
		return nil, serrors.With(serrors.ErrConflict, "quote was changed concurrently")
	}

	return accepted, nil
}

// PDF renders the quote document.
func (s service) PDF(ctx context.Context, principal *domain.Principal, ID domain.QuoteID) ([]byte, error) {
	q, err := s.Get(ctx, principal, ID)
	if err != nil {
		return nil, err
	}

	return RenderPDF(*q)
}

// Rates lists the shipping tariffs.
func (s service) Rates(ctx context.Context) ([]domain.ShippingRate, error) {
	rates, err := s.storage.ShippingRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list shipping rates: %w", err)
	}

	return rates, nil
}

// UpsertRate creates or replaces the tariff of a destination and service level.
func (s service) UpsertRate(ctx context.Context, rate domain.ShippingRate) (*domain.ShippingRate, error) {
	rate.Destination = strings.ToUpper(strings.TrimSpace(rate.Destination))
	switch {
	case len(rate.Destination) != 2:
		return nil, serrors.With(serrors.ErrBadRequest, "destination must be an ISO 3166-1 alpha-2 country code")
	case !rate.ServiceLevel.Valid():
		return nil, serrors.With(serrors.ErrBadRequest, "invalid service level %q", rate.ServiceLevel)
	case rate.RatePerKgCents <= 0 || rate.MinimumCents < 0:
		return nil, serrors.With(serrors.ErrBadRequest, "rate must be positive and minimum not negative")
	case rate.TransitDaysMin <= 0 || rate.TransitDaysMax < rate.TransitDaysMin:
		return nil, serrors.With(serrors.ErrBadRequest, "invalid transit days range")
	}

	r, err := s.storage.UpsertShippingRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("could not store shipping rate: %w", err)
	}

	return r, nil
}

// New creates a quote Service.
func New(storage storage.Storage, options Options) Service {
	return &service{options: options, storage: storage}
}
