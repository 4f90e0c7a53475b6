package env

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetect_Browser(t *testing.T) {
	t.Parallel()
	e := detect("js", "go1.24.5")
	if !e.Browser || e.Platform != "browser" || e.OS != "" {
		t.Fatalf("unexpected browser environment: %+v", e)
	}
}

func TestDetect_Server(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"linux":   "Linux",
		"darwin":  "macOS",
		"windows": "Windows",
		"freebsd": "BSD",
		"plan9":   "plan9",
	}
	for goos, want := range cases {
		e := detect(goos, "go1.24.5")
		if e.Browser {
			t.Fatalf("%s: expected server environment", goos)
		}
		if e.Platform != "go/1.24.5" {
			t.Fatalf("%s: unexpected platform %q", goos, e.Platform)
		}
		if e.OS != want {
			t.Fatalf("%s: want OS %q, got %q", goos, want, e.OS)
		}
	}
}

func TestCurrent_Cached(t *testing.T) {
	t.Parallel()
	a, b := Current(), Current()
	if a != b {
		t.Fatalf("expected identical cached environments: %+v vs %+v", a, b)
	}
	if runtime.GOOS != "js" && !strings.HasPrefix(a.Platform, "go/") {
		t.Fatalf("unexpected platform %q", a.Platform)
	}
}
