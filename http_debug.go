package contentful

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport logs each request and its response at debug level, tagged
// with a per-request id so that the two lines can be paired.
//
// Enable with CONTENTFUL_DEBUG=true or DEBUG=true, or WithDebugLogging.
// Response bodies are logged as received; keep this off in production.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()

	redacted := req.Clone(req.Context())
	if redacted.Header.Get("Authorization") != "" {
		redacted.Header.Set("Authorization", "Bearer [redacted]")
	}
	if reqDump, err := httputil.DumpRequestOut(redacted, false); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether CONTENTFUL_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("CONTENTFUL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
