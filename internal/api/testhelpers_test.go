package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tombrtls/contentful/internal/env"
	"github.com/tombrtls/contentful/internal/rest"
)

// newClient returns an HTTPClient bound to space "abc" on srv.
func newClient(t *testing.T, srv *httptest.Server) *rest.HTTPClient {
	t.Helper()
	cfg := rest.Config{
		Space:       "abc",
		AccessToken: "tok",
		Insecure:    true,
		Host:        strings.TrimPrefix(srv.URL, "http://"),
		Headers:     http.Header{},
		Environment: env.Environment{Platform: "go/test"},
	}
	return rest.New(cfg, srv.Client(), zerolog.Nop())
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.contentful.delivery.v1+json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
