// Package analytics serves the customer dashboard figures.
package analytics

import (
	"context"
	"fmt"
	"time"

	"qcscargo/internal/customer"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"
)

const (
	defaultLookback = 365 * 24 * time.Hour
	monthlyBuckets  = 12
)

type service struct {
	storage storage.Storage
	now     func() time.Time
}

// Customer returns the activity figures of a customer.
func (s service) Customer(ctx context.Context,
	principal domain.Principal,
	customerID *domain.CustomerID,
	since time.Time) (*domain.CustomerAnalytics, error) {
	now := s.now()
	if since.IsZero() {
		since = now.Add(-defaultLookback)
	}
	if since.After(now) {
		return nil, serrors.With(serrors.ErrBadRequest, "since must be in the past")
	}

	var ID domain.CustomerID
	switch {
	case customerID != nil && principal.Role.IsStaff():
		c, err := s.storage.CustomerByID(ctx, *customerID)
		if err != nil {
			return nil, fmt.Errorf("could not get customer: %w", err)
		}
		if c == nil {
			return nil, serrors.With(serrors.ErrNotFound, "customer not found")
		}
		ID = c.ID
	case customerID != nil:
		return nil, serrors.With(serrors.ErrForbidden, "only staff can view other customers")
	default:
		c, err := customer.Of(ctx, s.storage, principal)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		ID = c.ID
	}

	a, err := s.storage.CustomerAnalytics(ctx, ID, since.UTC(), monthlyBuckets)
	if err != nil {
		return nil, fmt.Errorf("could not aggregate customer analytics: %w", err)
	}

	return a, nil
}

// New creates an analytics Service.
func New(storage storage.Storage) Service {
	return &service{storage: storage, now: time.Now}
}
