package utils

import (
	"os"
)

func GetEnv(env string) string {
	switch env {
	case "USER_AGENT":
		// User-Agent presented to providers by the stream probers. Many
		// IPTV backends reject requests without a browser-like agent.
		userAgent, userAgentExists := os.LookupEnv("USER_AGENT")
		if !userAgentExists {
			userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Safari/605.1.15"
		}
		return userAgent
	case "FETCH_USER_AGENT":
		// User-Agent for downloading the playlists themselves.
		userAgent, userAgentExists := os.LookupEnv("FETCH_USER_AGENT")
		if !userAgentExists {
			userAgent = "TV-Playlist-Cleaner/1.0"
		}
		return userAgent
	default:
		return ""
	}
}
