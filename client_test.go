package contentful

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// recorder answers every request with body and keeps a copy of each request.
type recorder struct {
	mu   sync.Mutex
	reqs []*http.Request
	body string
}

func (rec *recorder) RoundTrip(r *http.Request) (*http.Response, error) {
	rec.mu.Lock()
	rec.reqs = append(rec.reqs, r.Clone(context.Background()))
	rec.mu.Unlock()
	body := rec.body
	if body == "" {
		body = "{}"
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    r,
	}, nil
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.reqs)
}

var linux = Environment{Platform: "go/1.24.5", OS: "Linux"}

func newTestClient(t *testing.T, p Params, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	p.Transport = rec
	opts = append([]Option{WithEnvironment(linux), WithLogger(zerolog.Nop())}, opts...)
	c, err := New(p, opts...)
	require.NoError(t, err)
	return c, rec
}

func TestNew_MissingAccessToken(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	c, err := New(Params{Space: "abc", Transport: rec}, WithLogger(zerolog.Nop()))
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Contains(t, err.Error(), "accessToken")
	assert.Zero(t, rec.count())
}

func TestNew_MissingSpace(t *testing.T) {
	t.Parallel()
	_, err := New(Params{AccessToken: "tok"}, WithLogger(zerolog.Nop()))
	require.Error(t, err)
	var mp *MissingParameterError
	require.True(t, errors.As(err, &mp))
	assert.Equal(t, "space", mp.Name)
}

func TestNew_BaseURL(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, Params{Space: "abc", AccessToken: "tok"})
	assert.Equal(t, "https://cdn.contentful.com:443/spaces/abc/", c.HTTP().BaseURL())

	c, _ = newTestClient(t, Params{Space: "abc", AccessToken: "tok", Insecure: true, Host: "example.com:9000"})
	assert.Equal(t, "http://example.com:9000/spaces/abc/", c.HTTP().BaseURL())
}

func TestNew_DefaultHeaders(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, Params{
		Space:       "abc",
		AccessToken: "tok",
		Integration: "gatsby",
		Headers:     map[string]string{"Authorization": "Bearer spoofed", "X-Team": "web"},
	})
	h := c.HTTP().DefaultHeaders()
	assert.Equal(t, "Bearer tok", h.Get("Authorization"))
	assert.Equal(t, DeliveryContentType, h.Get("Content-Type"))
	assert.Equal(t, "integration gatsby; sdk contentful.go/"+Version+"; platform go/1.24.5; os Linux;", h.Get("X-Contentful-User-Agent"))
	assert.Equal(t, "go/1.24.5", h.Get("User-Agent"))
	assert.Equal(t, "gzip", h.Get("Accept-Encoding"))
	assert.Equal(t, "web", h.Get("X-Team"))
}

func TestNew_BrowserEnvironment(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, Params{Space: "abc", AccessToken: "tok"}, WithEnvironment(Environment{Browser: true, Platform: "browser"}))
	h := c.HTTP().DefaultHeaders()
	assert.Empty(t, h.Values("User-Agent"))
	assert.Empty(t, h.Values("Accept-Encoding"))
	assert.Equal(t, "sdk contentful.go/"+Version+"; platform browser;", h.Get("X-Contentful-User-Agent"))
}

func TestNew_ResolveLinks(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, Params{Space: "abc", AccessToken: "tok"})
	assert.True(t, c.ShouldLinksResolve())

	c, _ = newTestClient(t, Params{Space: "abc", AccessToken: "tok", ResolveLinks: Bool(false)})
	assert.False(t, c.ShouldLinksResolve())
}

func TestGet_PerCallHeadersMerged(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, Params{Space: "abc", AccessToken: "tok"})

	_, err := c.Get(context.Background(), "entries", RequestOptions{Headers: map[string]string{"X-Foo": "bar"}})
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "entries", RequestOptions{})
	require.NoError(t, err)

	require.Equal(t, 2, rec.count())
	first, second := rec.reqs[0], rec.reqs[1]
	assert.Equal(t, "https://cdn.contentful.com:443/spaces/abc/entries", first.URL.String())
	assert.Equal(t, "bar", first.Header.Get("X-Foo"))
	assert.Equal(t, "Bearer tok", first.Header.Get("Authorization"))
	assert.Equal(t, DeliveryContentType, first.Header.Get("Content-Type"))
	assert.Empty(t, second.Header.Get("X-Foo"))
	assert.Equal(t, "Bearer tok", second.Header.Get("Authorization"))
}

func TestNew_Idempotent(t *testing.T) {
	t.Parallel()
	p := Params{Space: "abc", AccessToken: "tok", Headers: map[string]string{"X-A": "1"}}
	a, _ := newTestClient(t, p)
	b, _ := newTestClient(t, p)

	assert.Equal(t, a.HTTP().BaseURL(), b.HTTP().BaseURL())
	assert.Equal(t, a.HTTP().DefaultHeaders(), b.HTTP().DefaultHeaders())

	p.Headers["X-A"] = "2"
	assert.Equal(t, "1", a.HTTP().DefaultHeaders().Get("X-A"))
	assert.NotSame(t, a.HTTP(), b.HTTP())
}

func TestGetEntries_ThroughClient(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, Params{Space: "abc", AccessToken: "tok"})
	rec.body = `{"total":1,"items":[{"sys":{"id":"e1"},"fields":{"title":"Hi"}}]}`

	got, err := c.GetEntries(context.Background(), map[string]string{"content_type": "post"})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Hi", got.Items[0].Fields["title"])
	assert.Equal(t, "post", rec.reqs[0].URL.Query().Get("content_type"))
}

func TestGet_TransportError(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New(Params{Space: "abc", AccessToken: "tok", Transport: rt}, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "", RequestOptions{})
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_NonSuccessStatus(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Status:     "429 Too Many Requests",
			Body:       io.NopCloser(strings.NewReader(`{"sys":{"id":"RateLimitExceeded"}}`)),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	})
	c, err := New(Params{Space: "abc", AccessToken: "tok", Transport: rt}, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "entries", RequestOptions{})
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusTooManyRequests, te.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CONTENTFUL_SPACE", "abc")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "tok")
	t.Setenv("CONTENTFUL_HOST", "preview.contentful.com")
	t.Setenv("CONTENTFUL_RESOLVE_LINKS", "false")

	c, err := NewFromEnv(WithEnvironment(linux), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Equal(t, "https://preview.contentful.com:443/spaces/abc/", c.HTTP().BaseURL())
	assert.False(t, c.ShouldLinksResolve())

	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "")
	_, err = NewFromEnv(WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, ErrMissingParameter)
}
