// Package useragent builds the X-Contentful-User-Agent signature.
package useragent

import (
	"strings"

	"github.com/tombrtls/contentful/internal/env"
)

// Format composes the signature from the SDK identifier, optional application
// and integration identifiers, and the runtime environment. Parts are joined
// with "; " and the result ends with ";".
//
//	app my-app/1.0; integration gatsby; sdk contentful.go/1.0.0; platform go/1.24.5; os Linux;
func Format(sdk, application, integration string, e env.Environment) string {
	parts := make([]string, 0, 5)
	if application != "" {
		parts = append(parts, "app "+application)
	}
	if integration != "" {
		parts = append(parts, "integration "+integration)
	}
	parts = append(parts, "sdk "+sdk)
	if e.Platform != "" {
		parts = append(parts, "platform "+e.Platform)
	}
	if e.OS != "" {
		parts = append(parts, "os "+e.OS)
	}
	return strings.Join(parts, "; ") + ";"
}
