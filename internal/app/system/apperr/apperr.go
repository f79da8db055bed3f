// Package apperr defines the error taxonomy shared by the engine, stores,
// and HTTP handlers.
//
// Each sentinel classifies a failure so callers can branch with errors.Is
// without parsing messages: stores wrap mongo failures as ErrStorage, the
// travel resolver distinguishes a bad postcode (ErrInvalidLocation) from a
// missing route (ErrRoutingUnavailable), and handlers map each kind onto an
// HTTP status. None of these are retried automatically.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the input failed a business rule; the message
	// names the failing field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStatus means a status value outside the quote workflow's
	// enumerated set was supplied.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidLocation means a postcode failed to geocode.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrRoutingUnavailable means no driving route could be found between
	// two geocoded points.
	ErrRoutingUnavailable = errors.New("routing unavailable")

	// ErrUnauthorized means an elevated operation was attempted without the
	// required capability.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorage wraps any underlying persistence failure. Fatal for the
	// current operation; logged and surfaced as a generic failure.
	ErrStorage = errors.New("storage error")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// Validationf wraps ErrValidation with a formatted message naming the
// failing field.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// Storagef wraps an underlying persistence error as ErrStorage.
func Storagef(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
