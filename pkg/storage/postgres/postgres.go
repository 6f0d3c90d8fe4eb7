package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"qcscargo/pkg/logger"
	"qcscargo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const applicationName = "qcs-cargo"

// Options are the connection settings of the pool.
type Options struct {
	Username string
	Password string
	Host     string
	// SslMode is a libpq sslmode ("disable", "require", ...).
	SslMode  string
	Port     int
	Database string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is kept open even when the pool is idle.
	MaxIdleConnections int
}

// DB is what queries run on: a *sql.DB outside a transaction and a *sql.Tx
// inside one.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the goqu handle bound to DB.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// PgSQL is the Postgres implementation of every storage interface. A handle
// returned by Begin runs all its queries in that transaction.
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool is nil on transaction handles. River workers run on it.
	Pool *pgxpool.Pool
}

// Ping checks that the database is reachable.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool != nil {
		if err := p.Pool.Ping(ctx); err != nil {
			return fmt.Errorf("could not ping pg pool: %w", err)
		}

		return nil
	}

	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping pg: %w", err)
	}

	return nil
}

// Close closes the database/sql wrapper and then the pool under it.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		if cerr := db.Close(); cerr != nil {
			err = fmt.Errorf("could not close sql db: %w", cerr)
		}
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err
}

// Commit commits the transaction of a handle returned by Begin.
func (p *PgSQL) Commit() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the transaction of a handle returned by Begin.
func (p *PgSQL) Rollback() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction. Nested transactions are not supported.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// WithTx runs cb in a transaction and commits when it returns nil. An error
// or a panic in cb rolls the transaction back; the panic is re-raised.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rerr := tx.Rollback(); rerr != nil {
			logger.Warn(ctx, "could not roll back transaction", zap.Error(rerr))
		}
	}()

	if err := cb(tx); err != nil {
		return err
	}

	err = tx.Commit()
	committed = true

	return err //nolint: wrapcheck
}

// New opens a pgx pool and checks the database is reachable. Sessions run in
// UTC so date_trunc and friends bucket by UTC days and months.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	cfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(options.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres at %s:%d: %w", options.Host, options.Port, err)
	}

	// goqu and goose need a *sql.DB
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}
