package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/tombrtls/contentful/internal/errors"
)

// RequestOptions are the per-call additions to a GET.
type RequestOptions struct {
	Query   map[string]string
	Headers map[string]string
}

// HTTPClient issues GET requests below a fixed base URL with a fixed set of
// default headers. Nothing is written after New returns, so a single
// HTTPClient may be shared between goroutines.
type HTTPClient struct {
	client         *resty.Client
	baseURL        string
	defaultHeaders http.Header
}

// New builds an HTTPClient from cfg. httpClient supplies the transport and
// timeout; when nil a client with a 30s timeout is used.
func New(cfg Config, httpClient *http.Client, logger zerolog.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	rc := resty.NewWithClient(httpClient).
		SetLogger(restyLogger{logger}).
		SetRetryCount(0)
	if cfg.Environment.Browser {
		// resty falls back to its own User-Agent when none is set.
		rc.SetPreRequestHook(func(_ *resty.Client, r *http.Request) error {
			r.Header.Del("User-Agent")
			return nil
		})
	}

	return &HTTPClient{
		client:         rc,
		baseURL:        CreateURL(cfg),
		defaultHeaders: CreateDefaultHeaders(cfg),
	}
}

// BaseURL returns the URL every request path is appended to.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// DefaultHeaders returns a copy of the headers sent with every request.
func (c *HTTPClient) DefaultHeaders() http.Header { return c.defaultHeaders.Clone() }

// Get issues GET baseURL+path. Per-call headers override a copy of the
// defaults; the defaults themselves are never modified.
//
// A request that yields no response returns a *errors.TransportError with
// StatusCode 0. A non-2xx response is returned together with a
// *errors.TransportError describing it. Status codes are not otherwise
// interpreted.
func (c *HTTPClient) Get(ctx context.Context, path string, opts RequestOptions) (*resty.Response, error) {
	url := c.baseURL + path

	headers := c.defaultHeaders.Clone()
	for k, v := range opts.Headers {
		headers.Set(k, v)
	}

	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(opts.Query)
	req.Header = headers

	resp, err := req.Get(url)
	if err != nil {
		return resp, errors.NewNetworkError(http.MethodGet, url, err)
	}
	if !resp.IsSuccess() {
		return resp, errors.NewHTTPError(resp)
	}
	return resp, nil
}

// restyLogger routes resty's internal warnings through zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
