// Package apperr defines the error kinds surfaced to API callers. Handlers
// map a Kind to an HTTP status; everything unclassified is Upstream.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	Upstream Kind = iota
	Validation
	Authentication
	Authorization
	NotFound
	Conflict
	Configuration
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "VALIDATION"
	case Authentication:
		return "UNAUTHENTICATED"
	case Authorization:
		return "FORBIDDEN"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case Configuration:
		return "CONFIGURATION"
	default:
		return "UPSTREAM"
	}
}

// Error carries a caller-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validationf reports malformed or out-of-range input.
func Validationf(format string, args ...any) *Error { return newf(Validation, format, args...) }

// Unauthenticated reports a missing or unusable session.
func Unauthenticated(msg string) *Error { return &Error{Kind: Authentication, Message: msg} }

// Forbidden reports an authenticated caller acting on something they do not own.
func Forbidden(msg string) *Error { return &Error{Kind: Authorization, Message: msg} }

// NotFoundf reports a missing tournament, match or logo.
func NotFoundf(format string, args ...any) *Error { return newf(NotFound, format, args...) }

// Conflictf reports a clash with existing data, such as a taken username.
func Conflictf(format string, args ...any) *Error { return newf(Conflict, format, args...) }

// Misconfigured reports an unusable backing store. Always fatal for the request.
func Misconfigured(msg string, err error) *Error {
	return &Error{Kind: Configuration, Message: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or Upstream.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Upstream
}

// Message returns the caller-facing message. Upstream errors pass the
// underlying message through.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == Upstream && e.Err != nil {
			return e.Error()
		}
		return e.Message
	}
	return err.Error()
}

// Is reports whether err is of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
