// Package apperror defines the categorized errors exchanged between the
// repository, service and handler layers. Every error is tagged with the
// entity it belongs to and the operation that failed; the low-level cause is
// retained for logging only and never rendered to clients.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindCreation Kind = "CreationError"
	KindGetAll   Kind = "GetAllError"
	KindNotFound Kind = "RecordNotFoundError"
	KindUpdate   Kind = "UpdateError"
	KindDelete   Kind = "DeleteError"
	// KindLookup marks a failure resolving a dependent record, such as the
	// doctor referenced by an appointment. Distinct from KindNotFound so the
	// primary record being absent and the enrichment failing stay
	// distinguishable.
	KindLookup Kind = "LookupError"
)

type Error struct {
	Entity  string
	Kind    Kind
	Message string
	cause   error
}

func New(entity string, kind Kind, message string) *Error {
	return &Error{Entity: entity, Kind: kind, Message: message}
}

func Wrap(entity string, kind Kind, message string, cause error) *Error {
	return &Error{Entity: entity, Kind: kind, Message: message, cause: cause}
}

func (e *Error) Error() string {
	return e.Message
}

// Name reports the entity-tagged category, e.g. "doctors CreationError".
func (e *Error) Name() string {
	return e.Entity + " " + string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode keeps the whole error surface at 400: callers are never shown a
// 5xx regardless of the underlying failure.
func (e *Error) StatusCode() int {
	return http.StatusBadRequest
}

// Is matches on entity and kind so categorized errors can be compared with
// errors.Is against a template.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Entity == other.Entity && e.Kind == other.Kind
}

// IsKind reports whether err is a categorized error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
