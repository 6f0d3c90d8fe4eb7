package storage

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// AnalyticsStorage aggregates customer activity.
type AnalyticsStorage interface {
	// CustomerAnalytics aggregates the activity of a customer since the given
	// time, with a monthly package breakdown of the last months months.
	CustomerAnalytics(ctx context.Context,
		customerID domain.CustomerID,
		since time.Time,
		months int) (*domain.CustomerAnalytics, error)
}
