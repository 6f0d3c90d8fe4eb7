package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"qcscargo/pkg/storage"
)

// AdvisoryLock takes pg_advisory_xact_lock on a 64 bit hash of key. The lock
// is released when the surrounding transaction ends.
func (p *PgSQL) AdvisoryLock(ctx context.Context, key string) error {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return storage.ErrNotInTx
	}

	if _, err := p.DB.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key); err != nil {
		return fmt.Errorf("could not acquire advisory lock: %w", err)
	}

	return nil
}
