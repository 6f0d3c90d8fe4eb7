// Package serrors provides semantic error kinds shared by services, storage and
// transports. A service returns serrors.With/Wrap values; the HTTP layer maps
// the kind to a status code and a public message through HTTPStatus.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and can be used with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnprocessable indicates a well-formed request that cannot be fulfilled,
	// e.g. no vehicle has capacity left for the requested window.
	ErrUnprocessable = NewKind("UNPROCESSABLE")
	// ErrConflict indicates a state conflict (duplicate tracking number, idempotency key reuse, ...).
	ErrConflict = NewKind("CONFLICT")
	// ErrPayloadTooLarge indicates an upload exceeded the configured limit.
	ErrPayloadTooLarge = NewKind("PAYLOAD_TOO_LARGE")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional arbitrary message. It fully supports
// errors.Is/errors.As and unwrapping.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a human-readable message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// statuses maps every kind to the HTTP status it is reported with.
var statuses = map[Kind]int{ //nolint: gochecknoglobals
	ErrNotFound:        http.StatusNotFound,
	ErrUnauthorized:    http.StatusUnauthorized,
	ErrForbidden:       http.StatusForbidden,
	ErrBadRequest:      http.StatusBadRequest,
	ErrUnprocessable:   http.StatusUnprocessableEntity,
	ErrConflict:        http.StatusConflict,
	ErrPayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrInternal:        http.StatusInternalServerError,
	ErrTimeout:         http.StatusGatewayTimeout,
	ErrUnavailable:     http.StatusServiceUnavailable,
	ErrRateLimited:     http.StatusTooManyRequests,
}

// defaultMessages are reported when a semantic error carries no message.
var defaultMessages = map[Kind]string{ //nolint: gochecknoglobals
	ErrNotFound:        "resource not found",
	ErrUnauthorized:    "unauthorized",
	ErrForbidden:       "forbidden",
	ErrBadRequest:      "bad request",
	ErrUnprocessable:   "request cannot be processed",
	ErrConflict:        "conflict",
	ErrPayloadTooLarge: "payload too large",
	ErrInternal:        "internal error",
	ErrTimeout:         "timeout",
	ErrUnavailable:     "service unavailable",
	ErrRateLimited:     "too many requests",
}

// HTTPStatus classifies err for a transport. It returns the status code, the
// kind and the public message. Errors that are not semantic errors, and
// semantic errors of kind ErrInternal, are reported as internal errors and
// their message is never exposed.
func HTTPStatus(err error) (int, Kind, string) {
	var k Kind
	if errors.As(err, &k) {
		if status, ok := statuses[k]; ok && k != ErrInternal {
			msg := defaultMessages[k]
			var se *Error
			if errors.As(err, &se) && se.Message() != "" {
				msg = se.Message()
			}

			return status, k, msg
		}
	}

	return http.StatusInternalServerError, ErrInternal, defaultMessages[ErrInternal]
}

// IsRetryable reports whether an operation failing with err may succeed when
// attempted again later.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrRateLimited)
}
