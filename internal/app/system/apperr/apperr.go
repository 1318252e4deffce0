// Package apperr defines the error taxonomy shared by stores, features,
// and the response layer.
//
// Every error a handler can surface falls into one of six kinds. Stores
// construct errors with the helpers here; the respond package maps kinds to
// HTTP status codes and the uniform response envelope. Wrapped causes stay
// attached for logging but are never shown to clients.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
	KindForbidden
	KindStorage
)

// Error carries a kind, a client-facing message, and an optional cause.
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

// Validation reports malformed or missing required input.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict reports a uniqueness or concurrent-modification clash the
// client can resolve by altering input or retrying.
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NotFound reports an unknown id for a user, member, or task.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Auth reports bad credentials, a role mismatch, or an invalid session.
func Auth(msg string) error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Forbidden reports a valid session with insufficient role.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Storage wraps a persistence-layer failure. The cause is kept for logs;
// clients see a generic retryable message.
func Storage(err error) error {
	return &Error{Kind: KindStorage, Message: "storage failure, please retry", Err: err}
}

// KindOf extracts the kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the client-facing message for err. Foreign errors get
// a generic message so internal detail never leaks to clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
