package worker

import (
	"context"
	"fmt"
	"time"

	"qcscargo/internal/jobs"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExpireQuotesWorker marks issued quotes past their validity as expired. A
// failed sweep is returned to River for retry; the next periodic run picks up
// whatever it missed.
type ExpireQuotesWorker struct {
	river.WorkerDefaults[jobs.ExpireQuotesArgs]

	quotes storage.QuoteStorage
	now    func() time.Time
}

// NewExpireQuotesWorker constructs an ExpireQuotesWorker.
func NewExpireQuotesWorker(quotes storage.QuoteStorage) *ExpireQuotesWorker {
	return &ExpireQuotesWorker{quotes: quotes, now: time.Now}
}

// Work runs one expiry sweep.
func (w *ExpireQuotesWorker) Work(ctx context.Context, job *river.Job[jobs.ExpireQuotesArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.quotes.ExpireQuotes(ctx, w.now().UTC())
	if err != nil {
		logger.Error(ctx, "could not expire quotes", zap.Error(err))

		return fmt.Errorf("could not expire quotes: %w", err)
	}

	if n > 0 {
		logger.Info(ctx, "expired quotes", zap.Int64("count", n))
	}

	return nil
}
