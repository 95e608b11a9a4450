// Package errs defines the typed error taxonomy shared by the usecases and the
// HTTP adapter. Callers match on Kind, never on message text.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalid      Kind = "invalid"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInvalidState Kind = "invalid_state"
	KindVerification Kind = "verification"
	KindForbidden    Kind = "forbidden"
	KindRateLimited  Kind = "rate_limited"
	KindTransport    Kind = "transport"
	KindUnavailable  Kind = "unavailable"
)

// Error carries a Kind plus an optional cause.
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

// Is lets errors.Is match two *Error values by kind and message, so package
// level sentinels keep working after being wrapped with a cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// With attaches a cause to a sentinel without losing its identity.
func With(sentinel *Error, err error) *Error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: err}
}

func Invalid(message string) *Error      { return New(KindInvalid, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func InvalidState(message string) *Error { return New(KindInvalidState, message) }
func Verification(message string) *Error { return New(KindVerification, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }

func Unavailable(message string, err error) *Error { return Wrap(KindUnavailable, message, err) }
func Transport(message string, err error) *Error   { return Wrap(KindTransport, message, err) }

// KindOf returns the kind of the first *Error in the chain, or "" when there
// is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
