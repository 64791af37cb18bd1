package utils

import (
	"os"
	"testing"
)

func TestCalculateChecksum(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{"identical input", "#EXTM3U\nhttp://a/1\n", "#EXTM3U\nhttp://a/1\n", true},
		{"different input", "#EXTM3U\nhttp://a/1\n", "#EXTM3U\nhttp://a/2\n", false},
		{"empty input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csA := CalculateChecksum(tt.a)
			csB := CalculateChecksum(tt.b)
			if (csA == csB) != tt.same {
				t.Errorf("checksum comparison = %v, want %v", csA == csB, tt.same)
			}
			if len(csA) != 64 {
				t.Errorf("checksum length = %d, want 64", len(csA))
			}
		})
	}
}

func TestStreamFingerprint(t *testing.T) {
	a := StreamFingerprint("http://example.com/stream/1")
	b := StreamFingerprint("http://example.com/stream/1")
	c := StreamFingerprint("http://example.com/stream/2")

	if a != b {
		t.Errorf("same URL produced different fingerprints: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different URLs produced the same fingerprint: %s", a)
	}
	if len(a) != 56 {
		t.Errorf("fingerprint length = %d, want 56", len(a))
	}
}

func TestIsSafeStreamURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		safe bool
	}{
		{"plain http", "http://example.com/stream.m3u8", true},
		{"https with query", "https://example.com/live?token=abc", true},
		{"empty", "", false},
		{"scheme only", "http://", false},
		{"ftp scheme", "ftp://example.com/stream", false},
		{"file scheme", "file:///etc/passwd", false},
		{"no scheme", "example.com/stream", false},
		{"semicolon", "http://example.com/a;rm -rf /", false},
		{"command substitution", "http://example.com/$(reboot)", false},
		{"backtick", "http://example.com/`id`", false},
		{"pipe", "http://example.com/a|b", false},
		{"ampersand", "http://example.com/a&b", false},
		{"newline", "http://example.com/a\nb", false},
		{"carriage return", "http://example.com/a\rb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafeStreamURL(tt.url); got != tt.safe {
				t.Errorf("IsSafeStreamURL(%q) = %v, want %v", tt.url, got, tt.safe)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		value    string
		expected string
	}{
		{"probe agent default", "USER_AGENT", "", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Safari/605.1.15"},
		{"probe agent override", "USER_AGENT", "custom-agent/2.0", "custom-agent/2.0"},
		{"fetch agent default", "FETCH_USER_AGENT", "", "TV-Playlist-Cleaner/1.0"},
		{"unknown key", "SOME_OTHER_VAR", "whatever", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("USER_AGENT")
			os.Unsetenv("FETCH_USER_AGENT")
			if tt.value != "" {
				os.Setenv(tt.env, tt.value)
				defer os.Unsetenv(tt.env)
			}

			if got := GetEnv(tt.env); got != tt.expected {
				t.Errorf("GetEnv(%q) = %q, want %q", tt.env, got, tt.expected)
			}
		})
	}
}
