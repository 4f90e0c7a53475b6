// Package errors defines the error taxonomy shared by the delivery client.
// Construction failures are MissingParameterError; request failures are
// TransportError.
package errors

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrMissingParameter is the sentinel matched by every MissingParameterError.
var ErrMissingParameter = errors.New("missing required parameter")

// MissingParameterError reports a required client parameter that was absent
// or empty at construction time.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("expected parameter %s", e.Name)
}

// Is lets errors.Is match ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// TransportError wraps a failed GET: either the request never produced a
// response (StatusCode 0) or the response status was outside 2xx.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int    // HTTP status code (0 for network errors)
	Body       string // Response body for debugging
	Response   *resty.Response
	Underlying error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: HTTP %d: %v", e.Method, e.URL, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error {
	return e.Underlying
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
