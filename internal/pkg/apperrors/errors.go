// Package apperrors defines the error kinds produced at component
// boundaries and their HTTP mapping. Components detect a condition,
// wrap it in a kind and return; nothing is retried internally.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	// KindValidation marks malformed client input (bad timestamp,
	// out-of-range coordinate)
	KindValidation Kind = iota + 1
	// KindModelUnavailable marks a missing or corrupt model artifact
	KindModelUnavailable
	// KindConfiguration marks service misconfiguration (missing provider key)
	KindConfiguration
	// KindNotFound marks a resource or route that does not exist
	KindNotFound
	// KindProvider marks an upstream directions-provider failure; the
	// underlying message is passed through verbatim for diagnostics
	KindProvider
)

// Error is an application error with a kind
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an error of the given kind with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of err, or 0 if err carries none
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCode maps an error to its HTTP status
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindModelUnavailable, KindConfiguration:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
