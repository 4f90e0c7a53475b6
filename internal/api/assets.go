package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tombrtls/contentful/internal/types"
)

// GetAsset fetches a single asset by ID.
func GetAsset(ctx context.Context, httpClient HTTPClient, id string, query map[string]string) (*types.Asset, error) {
	if id == "" {
		return nil, fmt.Errorf("get asset: id is required")
	}
	var a types.Asset
	if err := getJSON(ctx, httpClient, "get asset", "assets/"+url.PathEscape(id), query, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAssets lists assets matching query.
func GetAssets(ctx context.Context, httpClient HTTPClient, query map[string]string) (*types.Collection[types.Asset], error) {
	var c types.Collection[types.Asset]
	if err := getJSON(ctx, httpClient, "get assets", "assets", query, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
