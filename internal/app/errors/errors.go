package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error by the stage of the pipeline that produced it.
type Kind string

const (
	KindConfig            Kind = "config"
	KindUnsupportedFormat Kind = "unsupported_format"
	KindAuth              Kind = "auth"
	KindTransport         Kind = "transport"
	KindContentBlocked    Kind = "content_blocked"
	KindIO                Kind = "io"
)

// Error is a kind-tagged error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// New creates a new error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new formatted error of the given kind
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a kind and formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// NewConfigError creates a configuration error
func NewConfigError(message string) *Error {
	return New(KindConfig, message)
}

// NewUnsupportedFormatError creates an error for a file extension
// outside the supported set.
func NewUnsupportedFormatError(path string, supported []string) *Error {
	return Newf(KindUnsupportedFormat, "unsupported audio format %q (supported: %s)", path, strings.Join(supported, ", "))
}

// NewAuthError creates an error for an API key rejected by the remote service
func NewAuthError(message string) *Error {
	return New(KindAuth, message)
}

// NewTransportError creates an error for a failed or timed-out request
func NewTransportError(message string) *Error {
	return New(KindTransport, message)
}

// NewContentBlockedError creates an error for a transcription refused
// or emptied by the model's safety filters.
func NewContentBlockedError(message string) *Error {
	return New(KindContentBlocked, message)
}

// NewIOError creates an error for a local read or write failure
func NewIOError(message string) *Error {
	return New(KindIO, message)
}

// KindOf returns the kind of err, or an empty Kind when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether any error in err's chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func IsConfig(err error) bool            { return IsKind(err, KindConfig) }
func IsUnsupportedFormat(err error) bool { return IsKind(err, KindUnsupportedFormat) }
func IsAuth(err error) bool              { return IsKind(err, KindAuth) }
func IsTransport(err error) bool         { return IsKind(err, KindTransport) }
func IsContentBlocked(err error) bool    { return IsKind(err, KindContentBlocked) }
func IsIO(err error) bool                { return IsKind(err, KindIO) }

// ExitCode returns the process exit code for the error kind.
// Every error maps to a non-zero code; nil maps to zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindConfig:
		return 2
	case KindUnsupportedFormat:
		return 3
	case KindAuth:
		return 4
	case KindTransport:
		return 5
	case KindContentBlocked:
		return 6
	case KindIO:
		return 7
	default:
		return 1
	}
}
