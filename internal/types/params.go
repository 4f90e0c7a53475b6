package types

import "net/http"

// Params holds caller-supplied client configuration. Space and AccessToken are
// required; everything else is optional.
type Params struct {
	Space       string
	AccessToken string

	// Insecure selects http and port 80 instead of https and port 443.
	Insecure bool
	// Host is "hostname" or "hostname:port"; empty means cdn.contentful.com.
	Host string
	// Headers are added to every request. Protocol headers win on conflict.
	Headers map[string]string

	// ResolveLinks is nil when unset, which means true.
	ResolveLinks *bool

	// Application and Integration extend the X-Contentful-User-Agent signature.
	Application string
	Integration string

	// Transport is used as the base round tripper when non-nil.
	Transport http.RoundTripper
	// Proxy is a proxy URL applied to the base transport.
	Proxy string
}
