package errors

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// NewHTTPError creates a TransportError for a response with a non-2xx status.
func NewHTTPError(resp *resty.Response) *TransportError {
	e := &TransportError{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
		Response:   resp,
		Underlying: fmt.Errorf("unexpected status %s", resp.Status()),
	}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = resp.Request.URL
	}
	return e
}

// NewNetworkError creates a TransportError for a request that produced no
// response at all (DNS, connect, TLS, timeout, cancellation).
func NewNetworkError(method, url string, err error) *TransportError {
	return &TransportError{
		Method:     method,
		URL:        url,
		Underlying: fmt.Errorf("network error: %w", err),
	}
}
