package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/tombrtls/contentful/internal/types"
)

// Config holds client settings read from the environment.
// Environment variables are automatically parsed from the CONTENTFUL_ prefix.
type Config struct {
	Space       string `envconfig:"SPACE"`
	AccessToken string `envconfig:"ACCESS_TOKEN"`

	Host     string `envconfig:"HOST"`
	Insecure bool   `envconfig:"INSECURE" default:"false"`

	// Left nil when CONTENTFUL_RESOLVE_LINKS is unset.
	ResolveLinks *bool `envconfig:"RESOLVE_LINKS"`

	Application string `envconfig:"APPLICATION"`
	Integration string `envconfig:"INTEGRATION"`

	Proxy string `envconfig:"PROXY"`

	// Format: "X-One:a,X-Two:b"
	Headers map[string]string `envconfig:"HEADERS"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// New creates a new Config by parsing environment variables.
// Example: CONTENTFUL_SPACE, CONTENTFUL_ACCESS_TOKEN, CONTENTFUL_HOST
//
// Missing space or access token is not an error here; the client reports it
// when it is constructed.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CONTENTFUL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("space", cfg.Space).
		Bool("access_token_present", cfg.AccessToken != "").
		Str("host", cfg.Host).
		Bool("insecure", cfg.Insecure).
		Bool("proxy_present", cfg.Proxy != "").
		Int("headers", len(cfg.Headers)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Params converts the environment configuration into client parameters.
func (c *Config) Params() types.Params {
	var headers map[string]string
	if len(c.Headers) > 0 {
		headers = make(map[string]string, len(c.Headers))
		for k, v := range c.Headers {
			headers[k] = v
		}
	}
	return types.Params{
		Space:        c.Space,
		AccessToken:  c.AccessToken,
		Insecure:     c.Insecure,
		Host:         c.Host,
		Headers:      headers,
		ResolveLinks: c.ResolveLinks,
		Application:  c.Application,
		Integration:  c.Integration,
		Proxy:        c.Proxy,
	}
}
