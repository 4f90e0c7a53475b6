package api

import (
	"context"
	"fmt"

	"github.com/tombrtls/contentful/internal/types"
)

// GetEntry fetches one entry through the collection endpoint so that query
// options such as locale and include apply. Returns types.ErrNotFound when
// nothing matches.
func GetEntry(ctx context.Context, httpClient HTTPClient, id string, query map[string]string) (*types.Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("get entry: id is required")
	}
	q := make(map[string]string, len(query)+1)
	for k, v := range query {
		q[k] = v
	}
	q["sys.id"] = id

	var c types.Collection[types.Entry]
	if err := getJSON(ctx, httpClient, "get entry", "entries", q, &c); err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, fmt.Errorf("get entry %s: %w", id, types.ErrNotFound)
	}
	return &c.Items[0], nil
}

// GetEntries lists entries matching query. Links in the response are not
// resolved; linked entities are available in Includes.
func GetEntries(ctx context.Context, httpClient HTTPClient, query map[string]string) (*types.Collection[types.Entry], error) {
	var c types.Collection[types.Entry]
	if err := getJSON(ctx, httpClient, "get entries", "entries", query, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
