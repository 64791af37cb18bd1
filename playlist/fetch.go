package playlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/utils"
	"m3u-playlist-cleaner/utils/safemap"
)

// MaxPlaylistSize caps a single playlist download at 50 MB. Some community
// aggregates are huge, anything past this is almost certainly not a playlist.
const MaxPlaylistSize = 50 * 1024 * 1024

// DefaultFetchTimeout bounds a single source download.
const DefaultFetchTimeout = 30 * time.Second

// acceptedContentTypes are what providers typically serve for M3U text.
// Mismatches are only warned about since providers mislabel constantly.
var acceptedContentTypes = []string{
	"audio/x-mpegurl",
	"text/plain",
	"application/vnd.apple.mpegurl",
}

// Fetch downloads a single playlist source.
func Fetch(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	if !utils.IsSafeStreamURL(rawURL) {
		return "", fmt.Errorf("invalid playlist URL: %s", rawURL)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", utils.GetEnv("FETCH_USER_AGENT"))

	resp, err := utils.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("playlist request returned status %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !acceptedContentType(ct) {
		logger.Default.Warnf("Unexpected content type %q for %s", ct, rawURL)
	}
	if resp.ContentLength > MaxPlaylistSize {
		return "", fmt.Errorf("playlist too large: %d bytes", resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPlaylistSize+1))
	if err != nil {
		return "", fmt.Errorf("reading playlist body: %w", err)
	}
	if len(data) > MaxPlaylistSize {
		return "", fmt.Errorf("playlist exceeds %d MB limit", MaxPlaylistSize/(1024*1024))
	}

	return string(data), nil
}

func acceptedContentType(ct string) bool {
	for _, accepted := range acceptedContentTypes {
		if strings.Contains(strings.ToLower(ct), accepted) {
			return true
		}
	}
	return false
}

// FetchAll downloads every source concurrently. A failed source is reported
// in its result instead of aborting the run; callers decide whether an empty
// overall harvest is fatal.
func FetchAll(ctx context.Context, sources []Source, timeout time.Duration) []*SourceResult {
	results := safemap.New[int, *SourceResult]()

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()

			res := &SourceResult{Source: src}
			text, err := Fetch(ctx, src.URL, timeout)
			if err != nil {
				res.Err = err
				logger.Default.Warnf("Source %s failed: %v", src.Label, err)
			} else {
				res.Text = text
				res.Checksum = utils.CalculateChecksum(text)
			}
			results.Set(i, res)
		}(i, src)
	}
	wg.Wait()

	ordered := make([]*SourceResult, 0, len(sources))
	for i := range sources {
		if res, ok := results.Get(i); ok {
			ordered = append(ordered, res)
		}
	}
	return ordered
}
