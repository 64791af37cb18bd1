package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/utils"
)

var contentTypeHeaderRegex = regexp.MustCompile(`(?i)content-type:\s*([^\r\n]+)`)

// CurlProber only checks that the stream endpoint answers a HEAD request.
// Faster and far less accurate than ffprobe: quality comes from URL tokens,
// not from the actual stream.
type CurlProber struct {
	ToolPath string
	Timeout  time.Duration
	Log      logger.Logger
}

func NewCurlProber(timeout time.Duration) *CurlProber {
	return &CurlProber{
		ToolPath: ResolveTool("curl"),
		Timeout:  timeout,
		Log:      logger.Default,
	}
}

func (p *CurlProber) Method() string { return MethodCurl }

func (p *CurlProber) Probe(ctx context.Context, entry *playlist.StreamEntry) *Verdict {
	if !utils.IsSafeStreamURL(entry.URL) {
		p.Log.Warnf("Invalid URL for %s: %s", entry.Name, entry.URL)
		return failedVerdict(entry, MethodValidation, "failed", "Invalid URL")
	}
	if p.ToolPath == "" {
		p.Log.Warnf("curl not found for %s", entry.Name)
		return failedVerdict(entry, MethodValidation, "failed", "curl not found")
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.Timeout+killGrace)
	defer cancel()

	seconds := strconv.FormatFloat(p.Timeout.Seconds(), 'f', -1, 64)
	args := []string{
		"-I",
		"--connect-timeout", seconds,
		"--max-time", seconds,
		"--silent",
		"--fail",
		entry.URL,
	}

	cmd := exec.CommandContext(probeCtx, p.ToolPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	switch {
	case errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		p.Log.Debugf("Stream timeout (curl): %s", entry.Name)
		return failedVerdict(entry, MethodCurl, "timeout", "Timeout")
	case probeCtx.Err() != nil:
		return failedVerdict(entry, MethodCurl, "failed", "Interrupted")
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return failedVerdict(entry, MethodCurl, fmt.Sprintf("error: %s", err.Error()), err.Error())
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = "Unknown error"
		}
		p.Log.Debugf("Stream failed (curl): %s - %s", entry.Name, errMsg)
		return failedVerdict(entry, MethodCurl, "failed", errMsg)
	}

	quality, width, height := qualityFromURL(entry.URL)
	verdict := workingVerdict(entry, MethodCurl, quality, width, height)
	if m := contentTypeHeaderRegex.FindStringSubmatch(stdout.String()); m != nil {
		verdict.ContentType = strings.TrimSpace(m[1])
	}
	p.Log.Debugf("Stream OK (curl): %s - %s", entry.Name, quality)
	return verdict
}
