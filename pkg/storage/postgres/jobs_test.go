package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"qcscargo/pkg/storage"
	"qcscargo/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type reminderJobArgs struct {
	BookingRef string `json:"bookingRef"`
}

func (reminderJobArgs) Kind() string { return "pickup_reminder" }

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_InsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	_, err = txStorage.AddJob(ctx, reminderJobArgs{BookingRef: "BK-1"}, &river.InsertOpts{})
	require.NoError(t, err)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&reminderJobArgs{BookingRef: "BK-1"},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, reminderJobArgs{BookingRef: "BK-1"}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&reminderJobArgs{BookingRef: "BK-1"},
		nil,
	)
}

func TestPgSQL_AddJob_RolledBackTransaction_DiscardsJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.AddJob(ctx, reminderJobArgs{BookingRef: "BK-2"}, nil); err != nil {
			return err
		}

		return errors.New("booking failed")
	})
	require.Error(t, err)

	var count int
	require.NoError(t, pg.DB.(*sql.DB).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM river_job WHERE kind = 'pickup_reminder'`).Scan(&count))
	require.Zero(t, count)
}

func TestPgSQL_AddJob_UniqueDuplicateIsSkipped(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	inserted, err := pg.AddJob(ctx, reminderJobArgs{BookingRef: "BK-3"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, reminderJobArgs{BookingRef: "BK-3"}, opts)
	require.NoError(t, err)
	require.False(t, inserted)

	inserted, err = pg.AddJob(ctx, reminderJobArgs{BookingRef: "BK-4"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)
}
