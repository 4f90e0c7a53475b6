// Package contentful is a client for the Contentful Content Delivery API.
//
// New validates the space and access token, derives the base URL and default
// headers, and returns a Client whose HTTP capability issues authenticated GET
// requests. Links in responses are not resolved; ShouldLinksResolve reports
// whether the consumer asked for resolution.
package contentful

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tombrtls/contentful/internal/api"
	"github.com/tombrtls/contentful/internal/config"
	"github.com/tombrtls/contentful/internal/env"
	"github.com/tombrtls/contentful/internal/params"
	"github.com/tombrtls/contentful/internal/rest"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	http   *rest.HTTPClient
	config params.Config

	// construction state, set by options
	httpClient *http.Client
	env        env.Environment
	logger     zerolog.Logger
	debug      bool
}

// New constructs a Client from p. It fails with a *MissingParameterError when
// AccessToken or Space is empty; no request is issued during construction.
// Additional options can be provided via functional arguments.
func New(p Params, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		env:        env.Current(),
		logger:     log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	cfg, err := params.Normalize(p, c.env)
	if err != nil {
		return nil, err
	}
	c.config = cfg

	rt, err := c.buildTransport(p)
	if err != nil {
		return nil, err
	}
	hc := *c.httpClient
	hc.Transport = rt

	c.http = rest.New(cfg.Config, &hc, c.logger)

	c.logger.Debug().
		Str("base_url", c.http.BaseURL()).
		Bool("resolve_links", cfg.ResolveLinks).
		Bool("browser", c.env.Browser).
		Msg("contentful client created")

	return c, nil
}

// NewFromEnv constructs a Client from CONTENTFUL_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return New(cfg.Params(), opts...)
}

// buildTransport layers, from the bottom: the caller's transport (or the
// default), the proxy, debug logging, and request metrics.
func (c *Client) buildTransport(p Params) (http.RoundTripper, error) {
	base := c.httpClient.Transport
	if p.Transport != nil {
		base = p.Transport
	}
	if base == nil {
		base = http.DefaultTransport
	}

	if p.Proxy != "" {
		proxied, err := withProxy(base, p.Proxy)
		if err != nil {
			return nil, err
		}
		base = proxied
	}

	if c.debug {
		base = &debugTransport{base: base, logger: c.logger}
	}
	return &metricsTransport{base: base}, nil
}

// HTTP returns the GET capability bound to the space's base URL.
func (c *Client) HTTP() *HTTPClient { return c.http }

// ShouldLinksResolve reports whether link resolution was requested.
func (c *Client) ShouldLinksResolve() bool { return c.config.ShouldLinksResolve() }

// Get is shorthand for c.HTTP().Get.
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.http.Get(ctx, path, opts)
}

// --------------------------------------------------------------------
// Entity operations - delegated to internal/api
// --------------------------------------------------------------------

// GetSpace retrieves the space the client is bound to.
func (c *Client) GetSpace(ctx context.Context) (*Space, error) {
	return api.GetSpace(ctx, c.http)
}

// GetLocales lists the space's locales.
func (c *Client) GetLocales(ctx context.Context) (*LocaleCollection, error) {
	return api.GetLocales(ctx, c.http)
}

// GetContentType retrieves a content type by ID.
func (c *Client) GetContentType(ctx context.Context, id string) (*ContentType, error) {
	return api.GetContentType(ctx, c.http, id)
}

// GetContentTypes lists content types.
func (c *Client) GetContentTypes(ctx context.Context, query map[string]string) (*ContentTypeCollection, error) {
	return api.GetContentTypes(ctx, c.http, query)
}

// GetEntry retrieves an entry by ID. Returns ErrNotFound when no entry matches.
func (c *Client) GetEntry(ctx context.Context, id string, query map[string]string) (*Entry, error) {
	return api.GetEntry(ctx, c.http, id, query)
}

// GetEntries lists entries. Links are returned unresolved.
func (c *Client) GetEntries(ctx context.Context, query map[string]string) (*EntryCollection, error) {
	return api.GetEntries(ctx, c.http, query)
}

// GetAsset retrieves an asset by ID.
func (c *Client) GetAsset(ctx context.Context, id string, query map[string]string) (*Asset, error) {
	return api.GetAsset(ctx, c.http, id, query)
}

// GetAssets lists assets.
func (c *Client) GetAssets(ctx context.Context, query map[string]string) (*AssetCollection, error) {
	return api.GetAssets(ctx, c.http, query)
}
