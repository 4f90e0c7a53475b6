// Package env probes the host runtime once so that header decisions which
// depend on it are made from configuration instead of ad hoc checks.
package env

import (
	"runtime"
	"strings"
	"sync"
)

// Environment describes the runtime the client executes in.
type Environment struct {
	// Browser is true when the binary runs inside a browser host (GOOS=js).
	// Browsers reject script-set User-Agent and Accept-Encoding headers.
	Browser bool
	// Platform identifies the language runtime, e.g. "go/1.24.5" or "browser".
	Platform string
	// OS is the human-readable operating system name, empty when unknown.
	OS string
}

// Detect inspects the current process. Prefer Current, which caches the result.
func Detect() Environment {
	return detect(runtime.GOOS, runtime.Version())
}

// Current returns the Environment detected for this process, computed once.
var Current = sync.OnceValue(Detect)

func detect(goos, version string) Environment {
	if goos == "js" {
		return Environment{Browser: true, Platform: "browser"}
	}
	return Environment{
		Platform: "go/" + strings.TrimPrefix(version, "go"),
		OS:       osName(goos),
	}
}

func osName(goos string) string {
	switch goos {
	case "darwin":
		return "macOS"
	case "ios":
		return "iOS"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	case "android":
		return "Android"
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return "BSD"
	case "":
		return ""
	default:
		return goos
	}
}
