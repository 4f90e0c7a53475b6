package api

import (
	"context"

	"github.com/tombrtls/contentful/internal/types"
)

// GetSpace fetches the space the client is bound to.
func GetSpace(ctx context.Context, httpClient HTTPClient) (*types.Space, error) {
	var space types.Space
	if err := getJSON(ctx, httpClient, "get space", "", nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// GetLocales lists the locales of the space.
func GetLocales(ctx context.Context, httpClient HTTPClient) (*types.Collection[types.Locale], error) {
	var c types.Collection[types.Locale]
	if err := getJSON(ctx, httpClient, "get locales", "locales", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
