package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidArgument
	KindOutOfMemory
	KindInvalidJSON
	KindValidationFailed
	KindNotFound
)

var kindMessages = [...]string{
	KindNone:             "No error",
	KindInvalidArgument:  "Invalid argument",
	KindOutOfMemory:      "Out of memory",
	KindInvalidJSON:      "Invalid JSON",
	KindValidationFailed: "Validation failed",
	KindNotFound:         "Not found",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindMessages) {
		return "Unknown error"
	}
	return kindMessages[k]
}

// Fatal reports whether callers should treat errors of this kind as unrecoverable.
func (k Kind) Fatal() bool {
	return k == KindOutOfMemory
}

// Sentinel values for use with errors.Is.
// Matching only compares the kind.
var (
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument}
	ErrOutOfMemory      = &Error{Kind: KindOutOfMemory}
	ErrInvalidJSON      = &Error{Kind: KindInvalidJSON}
	ErrValidationFailed = &Error{Kind: KindValidationFailed}
	ErrNotFound         = &Error{Kind: KindNotFound}
)

// Error is returned by every fallible operation of the object model.
type Error struct {
	Kind    Kind
	Message string
	// Field names the offending field, if any.
	Field string
	// Location is the file:line that produced the error.
	Location string

	cause error
}

// NewError creates an Error and records the location of the caller.
func NewError(kind Kind, field string, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Field:    field,
		Location: location(2),
	}
}

// WrapError is like NewError but keeps cause accessible through errors.Unwrap.
func WrapError(cause error, kind Kind, field string, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Field:    field,
		Location: location(2),
		cause:    cause,
	}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind. A target with a field set also
// requires the field to match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// KindOf returns the kind of the first *Error in err's chain, or KindNone.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// location returns file:line of the frame skip levels above its caller.
func location(skip int) string {
	st := errors.New("").(stackTracer).StackTrace()
	if len(st) <= skip {
		return ""
	}
	f := st[skip]
	return fmt.Sprintf("%s:%d", f, f)
}

// ReleasedError is the panic value raised when a resource is used after its
// last reference was released.
type ReleasedError struct {
	Type ResourceType
	ID   string
}

func (e *ReleasedError) Error() string {
	return fmt.Sprintf("%s/%s used after release", e.Type, e.ID)
}
