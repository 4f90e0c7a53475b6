// Package rest derives the delivery base URL and default headers and issues
// GET requests bound to them.
package rest

import (
	"net/http"
	"strings"

	"github.com/tombrtls/contentful/internal/env"
)

// DefaultHost is the Content Delivery API hostname used when Host is empty.
const DefaultHost = "cdn.contentful.com"

// Config is the normalized input to the client factory.
type Config struct {
	Space       string
	AccessToken string
	Insecure    bool
	Host        string
	// Headers already contain caller headers plus Content-Type and
	// X-Contentful-User-Agent.
	Headers     http.Header
	Environment env.Environment
}

// CreateURL derives {scheme}://{hostname}:{port}/spaces/{space}/.
//
// The scheme comes from Insecure only, never from Host. A port embedded in
// Host wins over the Insecure-derived default.
func CreateURL(cfg Config) string {
	hostname := DefaultHost
	port := ""
	if cfg.Host != "" {
		parts := strings.Split(cfg.Host, ":")
		if len(parts) == 2 {
			hostname, port = parts[0], parts[1]
		} else {
			hostname = cfg.Host
		}
	}

	scheme := "https"
	if cfg.Insecure {
		scheme = "http"
	}
	if port == "" {
		if cfg.Insecure {
			port = "80"
		} else {
			port = "443"
		}
	}

	baseURL := scheme + "://" + hostname + ":" + port + "/spaces/"
	if cfg.Space != "" {
		baseURL += cfg.Space + "/"
	}
	return baseURL
}

// CreateDefaultHeaders returns a fresh header set: cfg.Headers, then a forced
// Authorization header, then User-Agent and Accept-Encoding on server-side
// hosts only.
func CreateDefaultHeaders(cfg Config) http.Header {
	headers := cfg.Headers.Clone()
	if headers == nil {
		headers = make(http.Header)
	}
	headers.Set("Authorization", "Bearer "+cfg.AccessToken)

	if !cfg.Environment.Browser {
		headers.Set("User-Agent", cfg.Environment.Platform)
		headers.Set("Accept-Encoding", "gzip")
	}
	return headers
}
