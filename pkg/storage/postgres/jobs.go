package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"qcscargo/pkg/logger"
	"qcscargo/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"go.uber.org/zap"
)

// jobInserter is a River client without a pool. It only inserts jobs into
// transactions handed to it and is shared by every PgSQL handle.
var jobInserter = sync.OnceValues(func() (*river.Client[*sql.Tx], error) { //nolint: gochecknoglobals
	return river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
})

// AddJob inserts a River job. Inside a transaction the job commits or rolls
// back with it, so a notification is never sent for a change that was not
// saved. Outside a transaction it is inserted in one of its own.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var inserted bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			inserted, err = s.AddJob(ctx, args, opts)

			return err
		})

		return inserted, err
	}

	client, err := jobInserter()
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}
	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job skipped as duplicate", zap.String("kind", args.Kind()))

		return false, nil
	}

	return true, nil
}
