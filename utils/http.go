package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by playlist fetching and the HLS prober. Timeouts are
// applied per request through contexts, not on the client.
var HTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}
