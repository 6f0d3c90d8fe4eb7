package worker

import (
	"context"
	"fmt"
	"time"

	"qcscargo/internal/config"
	"qcscargo/internal/jobs"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Deps are the collaborators the workers need.
type Deps struct {
	// Quotes loads quotes for the quote e-mail and expiry jobs.
	Quotes storage.QuoteStorage
	// Email delivers e-mail notifications and quote e-mails. It is expected
	// to retry transient failures itself (see notify.ResilientEmail); errors
	// it returns are mapped onto River cancel, snooze or retry.
	Email notify.EmailSender
	// SMS delivers SMS and WhatsApp notifications, with the same error
	// contract as Email.
	SMS notify.SMSSender
	// Gate is shared by every worker sending through Email and SMS so a rate
	// limited channel is paused for all of them. Nil creates one in Workers.
	Gate *ChannelGate
}

// Options configures the River client.
type Options struct {
	// MaxWorkers is the number of jobs each queue (default and
	// notifications) works concurrently. Defaults to 10.
	MaxWorkers int
	// QuoteExpiryInterval is how often the quote expiry job runs. The job
	// also runs once when the client starts. Defaults to one hour.
	QuoteExpiryInterval time.Duration
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:          cfg.Worker.MaxWorkers,
		QuoteExpiryInterval: cfg.Worker.QuoteExpiryInterval,
	}
}

// Workers registers every worker of the backend. Jobs failing with a plain
// error are retried by River with its default exponential backoff; workers
// snooze or cancel jobs where the error says a retry is pointless or early.
func Workers(deps Deps) *river.Workers {
	gate := deps.Gate
	if gate == nil {
		gate = NewChannelGate()
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotificationWorker(deps.Email, deps.SMS, gate))
	river.AddWorker(workers, NewQuoteEmailWorker(deps.Quotes, deps.Email, gate))
	river.AddWorker(workers, NewExpireQuotesWorker(deps.Quotes))

	return workers
}

// PeriodicJobs returns the jobs River schedules on its own.
func PeriodicJobs(opts Options) []*river.PeriodicJob {
	interval := opts.QuoteExpiryInterval
	if interval <= 0 {
		interval = time.Hour
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.ExpireQuotesArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start creates a River client processing the default and notification
// queues and starts it.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault:      {MaxWorkers: maxWorkers},
			jobs.QueueNotifications: {MaxWorkers: maxWorkers},
		},
		Workers:      Workers(deps),
		PeriodicJobs: PeriodicJobs(opts),
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
