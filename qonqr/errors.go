package qonqr

import (
	"errors"
	"fmt"
)

// Argument errors, raised locally before any network call. None of these
// wrap an underlying cause.
var (
	// ErrMissingAPIKey indicates a blank application key
	ErrMissingAPIKey = errors.New("qonqr: api key is required")

	// ErrInvalidAPISecret indicates the application secret is not exactly
	// 32 characters
	ErrInvalidAPISecret = errors.New("qonqr: api secret must be exactly 32 characters")

	// ErrInvalidGridReference indicates a malformed grid reference
	ErrInvalidGridReference = errors.New("qonqr: malformed grid reference")

	// ErrClientClosed indicates the client was used after Close
	ErrClientClosed = errors.New("qonqr: client is closed")
)

// RequestError wraps a transport or decode failure with the logical request
// that produced it. The original cause is available through Unwrap.
type RequestError struct {
	// Op names the failed operation, e.g. "zone status"
	Op string
	// Context describes the request parameters. Coordinates are rounded to
	// 3 decimal places here; the request path itself is not rounded.
	Context string
	// Err is the originating transport or decode error
	Err error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("qonqr: %s request failed (%s): %v", e.Op, e.Context, e.Err)
}

// Unwrap returns the originating error
func (e *RequestError) Unwrap() error {
	return e.Err
}
