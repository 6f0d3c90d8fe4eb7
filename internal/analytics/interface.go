package analytics

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// Service aggregates customer activity for dashboards.
//
//go:generate mockgen -package mockanalytics -source=interface.go -destination=mock/mockanalytics.go *
type Service interface {
	// Customer returns the analytics of the caller, or of customerID when the
	// caller is an admin. A zero since covers the last year.
	Customer(ctx context.Context,
		principal domain.Principal,
		customerID *domain.CustomerID,
		since time.Time) (*domain.CustomerAnalytics, error)
}
