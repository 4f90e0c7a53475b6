package contentful

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run before parameters are validated and before the transport chain
// is assembled, so they only record settings. Options must be deterministic
// and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout bounds
// the total time spent on a single request. The value must be greater than
// zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// WithHTTPClient uses hc's transport, timeout, jar and redirect policy.
// hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.httpClient = &cp
		return nil
	}
}

// WithDebugLogging installs a transport that logs every request and response
// at debug level when enabled is true. The Authorization header is redacted,
// but response bodies are logged verbatim.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithEnvironment overrides the detected runtime environment. Use it when the
// process runs in a host whose header restrictions differ from what GOOS
// suggests.
func WithEnvironment(e Environment) Option {
	return func(c *Client) error {
		c.env = e
		return nil
	}
}

// WithLogger sets the logger used by the client. Defaults to the global
// zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// withProxy returns a copy of base that routes through proxy.
func withProxy(base http.RoundTripper, proxy string) (http.RoundTripper, error) {
	u, err := url.Parse(proxy)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid proxy url %q", proxy)
	}
	t, ok := base.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("proxy requires an *http.Transport, got %T", base)
	}
	t = t.Clone()
	t.Proxy = http.ProxyURL(u)
	return t, nil
}
