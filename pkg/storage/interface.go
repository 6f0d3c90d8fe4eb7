// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
// Lookups by key return (nil, nil) when nothing matches; services decide
// whether a missing row is an error.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	CustomerStorage
	VehicleStorage
	BookingStorage
	QuoteStorage
	PackageStorage
	DocumentStorage
	PostStorage
	AnalyticsStorage
	LockStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// Page is one page of a list ordered newest first. NextCursor is the
// timestamp to pass as cursor for the next page, nil on the last page.
type Page[T any] struct {
	Items      []T
	NextCursor *time.Time
}

// LockStorage serialises concurrent writers on an arbitrary key.
type LockStorage interface {
	// AdvisoryLock takes a transaction scoped lock on key, blocking until it
	// is granted. It returns ErrNotInTx outside of a transaction.
	AdvisoryLock(ctx context.Context, key string) error
}
