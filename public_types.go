package contentful

import (
	"github.com/go-resty/resty/v2"

	"github.com/tombrtls/contentful/internal/env"
	"github.com/tombrtls/contentful/internal/params"
	"github.com/tombrtls/contentful/internal/rest"
	"github.com/tombrtls/contentful/internal/types"
)

// Public type aliases so SDK consumers can import only this package.
type (
	Params         = types.Params
	Environment    = env.Environment
	HTTPClient     = rest.HTTPClient
	RequestOptions = rest.RequestOptions
	Response       = resty.Response

	// Domain entities
	Sys         = types.Sys
	Link        = types.Link
	Space       = types.Space
	Locale      = types.Locale
	ContentType = types.ContentType
	Field       = types.Field
	Entry       = types.Entry
	Asset       = types.Asset

	// Responses
	Includes              = types.Includes
	EntryCollection       = types.Collection[types.Entry]
	AssetCollection       = types.Collection[types.Asset]
	ContentTypeCollection = types.Collection[types.ContentType]
	LocaleCollection      = types.Collection[types.Locale]
)

const (
	DefaultHost         = rest.DefaultHost
	Version             = params.Version
	DeliveryContentType = params.ContentType
)

// Bool returns a pointer to b, for Params.ResolveLinks.
func Bool(b bool) *bool { return &b }
