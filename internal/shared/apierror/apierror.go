// Package apierror defines the typed failure kinds shared by every domain.
// Each kind carries a stable three-digit code that clients key on; the
// human-readable message is resolved separately from the locale catalog.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a class of failure. The underlying value is the stable
// error code exposed to clients as "error_code".
type Kind string

const (
	// RequiredInput - a required field was blank or missing.
	RequiredInput Kind = "100"

	// InvalidInput - a value was present but fails format rules
	// (ISBN format, date parse, field size).
	InvalidInput Kind = "101"

	// ParamFormat - the request param/query/body could not be parsed
	// into the expected shape.
	ParamFormat Kind = "102"

	// ExistData - uniqueness violation (duplicate email or ISBN).
	ExistData Kind = "103"

	// NotExistData - a referenced entity id does not exist.
	NotExistData Kind = "104"

	// Custom - caller-supplied ad hoc message, no catalog entry.
	Custom Kind = "777"

	// Unauthorized - reserved; has no localized catalog entry.
	Unauthorized Kind = "888"

	// ServerError - unexpected/unclassified failure.
	ServerError Kind = "999"
)

// Code returns the stable wire code for the kind.
func (k Kind) Code() string {
	return string(k)
}

// HTTPStatus maps a kind to its HTTP status. The mapping is fixed per kind
// so the same failure always yields the same status on every operation.
func (k Kind) HTTPStatus() int {
	switch k {
	case RequiredInput, InvalidInput, ParamFormat, ExistData, Custom:
		return http.StatusBadRequest
	case NotExistData:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed domain failure: a kind plus contextual detail.
// Services raise it and propagate it unchanged up to the HTTP boundary.
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause, kept for server-side logging only.
func Wrap(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind.Code(), e.Detail, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind.Code(), e.Detail)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// From extracts a typed failure from an error chain. The second return is
// false when err is not one of the taxonomy kinds, in which case the
// boundary must treat it as ServerError.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
