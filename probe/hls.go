package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/grafov/m3u8"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/utils"
)

// maxManifestSize bounds how much playlist text the HLS prober reads.
const maxManifestSize = 10 * 1024 * 1024

var variantResolutionRegex = regexp.MustCompile(`(\d+)x(\d+)`)

// HLSProber fetches the stream URL itself and parses it as an HLS playlist.
// Needs no external tool; master playlists even expose their variant
// resolutions, which is better quality data than a HEAD request gives.
type HLSProber struct {
	Client    *http.Client
	Timeout   time.Duration
	UserAgent string
	Log       logger.Logger
}

func NewHLSProber(timeout time.Duration) *HLSProber {
	return &HLSProber{
		Client:    utils.HTTPClient,
		Timeout:   timeout,
		UserAgent: utils.GetEnv("USER_AGENT"),
		Log:       logger.Default,
	}
}

func (p *HLSProber) Method() string { return MethodHLS }

func (p *HLSProber) Probe(ctx context.Context, entry *playlist.StreamEntry) *Verdict {
	if !utils.IsSafeStreamURL(entry.URL) {
		p.Log.Warnf("Invalid URL for %s: %s", entry.Name, entry.URL)
		return failedVerdict(entry, MethodValidation, "failed", "Invalid URL")
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, entry.URL, nil)
	if err != nil {
		return failedVerdict(entry, MethodHLS, "failed", err.Error())
	}
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			p.Log.Debugf("Stream timeout (hls): %s", entry.Name)
			return failedVerdict(entry, MethodHLS, "failed", "Timeout")
		}
		return failedVerdict(entry, MethodHLS, "failed", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failedVerdict(entry, MethodHLS, "failed", fmt.Sprintf("HTTP Error %d", resp.StatusCode))
	}

	reader := bufio.NewReader(io.LimitReader(resp.Body, maxManifestSize))
	manifest, listType, err := m3u8.DecodeFrom(reader, true)
	if err != nil {
		// The endpoint answered 200 with something that is not HLS. Like a
		// clean tool exit with unreadable output, count it as working.
		p.Log.Debugf("Stream OK (hls, not a manifest): %s", entry.Name)
		return workingVerdict(entry, MethodHLS, "unknown", 0, 0)
	}

	switch listType {
	case m3u8.MASTER:
		master := manifest.(*m3u8.MasterPlaylist)
		width, height := bestVariantResolution(master)
		quality := ClassifyQuality(width, height)
		p.Log.Debugf("Stream OK (hls master): %s - %s", entry.Name, quality)
		return workingVerdict(entry, MethodHLS, quality, width, height)
	case m3u8.MEDIA:
		quality, width, height := qualityFromURL(entry.URL)
		p.Log.Debugf("Stream OK (hls media): %s - %s", entry.Name, quality)
		return workingVerdict(entry, MethodHLS, quality, width, height)
	default:
		return workingVerdict(entry, MethodHLS, "unknown", 0, 0)
	}
}

// bestVariantResolution scans a master playlist for its largest advertised
// variant.
func bestVariantResolution(master *m3u8.MasterPlaylist) (width, height int) {
	for _, variant := range master.Variants {
		if variant == nil {
			continue
		}
		m := variantResolutionRegex.FindStringSubmatch(variant.Resolution)
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		if h > height || (h == height && w > width) {
			width, height = w, h
		}
	}
	return width, height
}
