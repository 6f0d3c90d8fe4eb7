package postgres

import (
	"errors"
	"fmt"

	"qcscargo/pkg/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// UniqueViolationCode indicates a unique constraint violation.
	UniqueViolationCode = "23505"
	// ForeignKeyViolationCode indicates a foreign key violation.
	ForeignKeyViolationCode = "23503"
	// CheckViolationCode indicates a check constraint violation.
	CheckViolationCode = "23514"
)

// AsPgError extracts the server error from err, if any.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}

	return nil, false
}

// wrapErr wraps err with msg, marking unique violations with storage.ErrDuplicate.
func wrapErr(err error, msg string) error {
	if pe, ok := AsPgError(err); ok && pe.Code == UniqueViolationCode {
		return fmt.Errorf("%s: %w (%s): %w", msg, storage.ErrDuplicate, pe.ConstraintName, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
