package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when an insert or update violates a unique
	// constraint (tracking number, slug, idempotency key, ...). Implementations
	// wrap it with the name of the violated constraint.
	ErrDuplicate = errors.New("duplicate key")
)
