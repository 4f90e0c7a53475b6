package contentful

import (
	"github.com/tombrtls/contentful/internal/errors"
	"github.com/tombrtls/contentful/internal/types"
)

type (
	// MissingParameterError is returned by New when space or accessToken is empty.
	MissingParameterError = errors.MissingParameterError
	// TransportError is returned by GET operations on network failure or a
	// non-2xx status.
	TransportError = errors.TransportError
)

// ErrMissingParameter matches every MissingParameterError via errors.Is.
var ErrMissingParameter = errors.ErrMissingParameter

// Re-export shared SDK error so callers compare against a single symbol.
var ErrNotFound = types.ErrNotFound

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool { return errors.IsTransportError(err) }
