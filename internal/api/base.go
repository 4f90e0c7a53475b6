package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/tombrtls/contentful/internal/rest"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Get(ctx context.Context, path string, opts rest.RequestOptions) (*resty.Response, error)
}

// getJSON issues a GET and decodes the 2xx body into out.
func getJSON(ctx context.Context, httpClient HTTPClient, op, path string, query map[string]string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := httpClient.Get(ctx, path, rest.RequestOptions{Query: query})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
