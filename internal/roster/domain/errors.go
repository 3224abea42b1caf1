package domain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind classifies an Error. The HTTP layer maps every Kind to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindUnknownReference
	KindNotFound
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindDuplicate:
		return "duplicate"
	case KindUnknownReference:
		return "unknown_reference"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	default:
		return "internal_error"
	}
}

// Kinds lists every Kind.
var Kinds = []Kind{
	KindInternal,
	KindValidation,
	KindDuplicate,
	KindUnknownReference,
	KindNotFound,
	KindInvalidCredentials,
}

// Error is the error type returned by services. Message is safe to show to
// callers; Err is the underlying cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string

	// Fields holds per-field messages for KindValidation.
	Fields map[string]string

	// IDs holds the missing ids for KindUnknownReference.
	IDs []int64

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so callers can write
// errors.Is(err, domain.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// Kind-only sentinels for use with errors.Is.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrDuplicate          = &Error{Kind: KindDuplicate}
	ErrUnknownReference   = &Error{Kind: KindUnknownReference}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrInternal           = &Error{Kind: KindInternal}
)

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "request validation failed", Fields: fields}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

// UnknownReference reports ids that a request referenced but that do not
// exist. The ids are sorted and named in the message.
func UnknownReference(what string, ids ...int64) *Error {
	ids = slices.Clone(ids)
	slices.Sort(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return &Error{
		Kind:    KindUnknownReference,
		Message: fmt.Sprintf("%s not found: [%s]", what, strings.Join(parts, ", ")),
		IDs:     ids,
	}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid username or password"}
}

// Internal wraps an unexpected failure. The message never includes the cause.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "an internal error occurred", Err: err}
}

// KindOf reports the Kind of err. Errors that are not an *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// AsError returns err as an *Error, wrapping it with Internal if needed.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
