package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tombrtls/contentful/internal/types"
)

// GetContentType fetches a single content type by ID.
func GetContentType(ctx context.Context, httpClient HTTPClient, id string) (*types.ContentType, error) {
	if id == "" {
		return nil, fmt.Errorf("get content type: id is required")
	}
	var ct types.ContentType
	if err := getJSON(ctx, httpClient, "get content type", "content_types/"+url.PathEscape(id), nil, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// GetContentTypes lists content types matching query.
func GetContentTypes(ctx context.Context, httpClient HTTPClient, query map[string]string) (*types.Collection[types.ContentType], error) {
	var c types.Collection[types.ContentType]
	if err := getJSON(ctx, httpClient, "get content types", "content_types", query, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
