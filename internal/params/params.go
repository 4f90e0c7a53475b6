// Package params validates caller parameters and turns them into the
// immutable configuration the HTTP client factory consumes.
package params

import (
	"net/http"

	"github.com/tombrtls/contentful/internal/env"
	"github.com/tombrtls/contentful/internal/errors"
	"github.com/tombrtls/contentful/internal/rest"
	"github.com/tombrtls/contentful/internal/types"
	"github.com/tombrtls/contentful/internal/useragent"
)

// Version is the SDK version reported in the user-agent signature.
const Version = "1.0.0"

// SDKName identifies this SDK in the user-agent signature.
const SDKName = "contentful.go/" + Version

// ContentType is sent with every delivery request.
const ContentType = "application/vnd.contentful.delivery.v1+json"

// Config is the normalized form of types.Params.
type Config struct {
	rest.Config
	ResolveLinks bool
}

// ShouldLinksResolve reports whether the consumer should resolve links.
func (c Config) ShouldLinksResolve() bool { return c.ResolveLinks }

// Normalize validates p and applies defaults. accessToken is checked before
// space.
func Normalize(p types.Params, e env.Environment) (Config, error) {
	if p.AccessToken == "" {
		return Config{}, &errors.MissingParameterError{Name: "accessToken"}
	}
	if p.Space == "" {
		return Config{}, &errors.MissingParameterError{Name: "space"}
	}

	resolveLinks := true
	if p.ResolveLinks != nil {
		resolveLinks = *p.ResolveLinks
	}

	headers := make(http.Header, len(p.Headers)+2)
	for k, v := range p.Headers {
		headers.Set(k, v)
	}
	headers.Set("Content-Type", ContentType)
	headers.Set("X-Contentful-User-Agent", useragent.Format(SDKName, p.Application, p.Integration, e))

	return Config{
		Config: rest.Config{
			Space:       p.Space,
			AccessToken: p.AccessToken,
			Insecure:    p.Insecure,
			Host:        p.Host,
			Headers:     headers,
			Environment: e,
		},
		ResolveLinks: resolveLinks,
	}, nil
}
