package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers and for the HTTP layer.
type Kind string

const (
	KindInvalidArgument     Kind = "INVALID_ARGUMENT"
	KindDuplicateEntity     Kind = "DUPLICATE_ENTITY"
	KindEntityNotFound      Kind = "ENTITY_NOT_FOUND"
	KindInvalidTransition   Kind = "INVALID_TRANSITION"
	KindPostulationRejected Kind = "POSTULATION_REJECTED"
	KindInternal            Kind = "INTERNAL"
)

// Error is the error type returned by business operations.
type Error struct {
	Kind    Kind
	Message string
	// Field names the offending input field for InvalidArgument errors.
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// InvalidArgument reports a missing or malformed input field.
func InvalidArgument(field, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message, Field: field}
}

func DuplicateEntity(entity, id string) *Error {
	return &Error{Kind: KindDuplicateEntity, Message: fmt.Sprintf("%s %q already exists", entity, id)}
}

func NotFound(entity, id string) *Error {
	return &Error{Kind: KindEntityNotFound, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

func PostulationRejected(reason string) *Error {
	return &Error{Kind: KindPostulationRejected, Message: reason}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
