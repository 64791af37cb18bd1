package utils

import (
	"net/url"
	"strings"
)

// dangerousURLChars are shell metacharacters that could smuggle arguments to
// the probe subprocesses. URLs containing any of them are rejected outright.
const dangerousURLChars = ";&|`$()\n\r"

// IsSafeStreamURL reports whether raw is an http(s) URL with a host and no
// dangerous characters. Probers and the playlist fetcher refuse anything
// that fails this check, so no subprocess ever sees an unvetted URL.
func IsSafeStreamURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	return !strings.ContainsAny(raw, dangerousURLChars)
}
