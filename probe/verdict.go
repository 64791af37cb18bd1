package probe

import (
	"fmt"
	"strings"

	"m3u-playlist-cleaner/playlist"
)

// Method tags record which checker produced a verdict. Validation failures
// are tagged separately so reports can tell "never probed" from "probed and
// failed".
const (
	MethodValidation = "validation"
	MethodFFprobe    = "ffprobe"
	MethodCurl       = "curl"
	MethodHLS        = "hls"
)

// Resolution tier floors shared by every probe method.
const (
	width1080p = 1920
	width720p  = 1280
	width480p  = 854
)

// Verdict is the outcome of probing a single stream. The embedded entry
// rides along untouched so selection and output still see the original
// EXTINF line and discovery order.
type Verdict struct {
	*playlist.StreamEntry

	Working bool
	Quality string
	Width   int
	Height  int

	// Error holds the failure reason, empty for working streams.
	Error string

	// ContentType is only set by the curl method, from response headers.
	ContentType string

	Method string
}

func workingVerdict(entry *playlist.StreamEntry, method, quality string, width, height int) *Verdict {
	return &Verdict{
		StreamEntry: entry,
		Working:     true,
		Quality:     quality,
		Width:       width,
		Height:      height,
		Method:      method,
	}
}

func failedVerdict(entry *playlist.StreamEntry, method, quality, errMsg string) *Verdict {
	return &Verdict{
		StreamEntry: entry,
		Quality:     quality,
		Error:       errMsg,
		Method:      method,
	}
}

// ClassifyQuality maps stream dimensions onto broadcast tier labels. The
// top tier absorbs anything at or above full HD; below that a tier name
// requires the tier's exact height, so 1919x1079 video reports "1079p"
// instead of rounding into a neighbouring tier.
func ClassifyQuality(width, height int) string {
	switch {
	case width >= width1080p && height >= 1080:
		return "1080p"
	case width >= width720p && height == 720:
		return "720p"
	case width >= width480p && height == 480:
		return "480p"
	case width > 0 && height > 0:
		return fmt.Sprintf("%dp", height)
	default:
		return "unknown"
	}
}

// qualityFromURL guesses a tier from tokens providers embed in stream
// paths. Header-only methods have nothing better to go on.
func qualityFromURL(url string) (quality string, width, height int) {
	switch {
	case strings.Contains(url, "1080") || strings.Contains(url, "1920"):
		return "1080p", width1080p, 1080
	case strings.Contains(url, "720") || strings.Contains(url, "1280"):
		return "720p", width720p, 720
	case strings.Contains(url, "480"):
		return "480p", width480p, 480
	default:
		return "unknown", 0, 0
	}
}
