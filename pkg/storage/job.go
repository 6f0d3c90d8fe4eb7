package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the data they refer to.
//
// Services call AddJob on the handle passed to WithTx so a notification is
// only queued when the change it announces is committed.
type JobStorage interface {
	// AddJob enqueues args. It reports false when a unique job with the same
	// key is already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
