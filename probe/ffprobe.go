package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/utils"
)

// killGrace is how long past the tool's own timeout a probe process may
// live before the supervising context kills it. A package variable so tests
// can shorten it.
var killGrace = 5 * time.Second

// FFprobeProber checks streams by letting ffprobe open them and report the
// codec layout. It is the most reliable method and the default.
type FFprobeProber struct {
	ToolPath  string
	Timeout   time.Duration
	UserAgent string
	Log       logger.Logger
}

func NewFFprobeProber(timeout time.Duration) *FFprobeProber {
	return &FFprobeProber{
		ToolPath:  ResolveTool("ffprobe"),
		Timeout:   timeout,
		UserAgent: utils.GetEnv("USER_AGENT"),
		Log:       logger.Default,
	}
}

func (p *FFprobeProber) Method() string { return MethodFFprobe }

func (p *FFprobeProber) Probe(ctx context.Context, entry *playlist.StreamEntry) *Verdict {
	if !utils.IsSafeStreamURL(entry.URL) {
		p.Log.Warnf("Invalid URL for %s: %s", entry.Name, entry.URL)
		return failedVerdict(entry, MethodValidation, "failed", "Invalid URL")
	}
	if p.ToolPath == "" {
		p.Log.Warnf("ffprobe not found for %s", entry.Name)
		return failedVerdict(entry, MethodValidation, "failed", "ffprobe not found")
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.Timeout+killGrace)
	defer cancel()

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		"-allowed_extensions", "ALL",
		"-user_agent", p.UserAgent,
		// ffprobe's own network timeout, in microseconds. The supervising
		// context above only fires when the tool itself hangs.
		"-timeout", strconv.FormatInt(p.Timeout.Microseconds(), 10),
		entry.URL,
	}

	cmd := exec.CommandContext(probeCtx, p.ToolPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	switch {
	case errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		p.Log.Debugf("Stream timeout (ffprobe): %s", entry.Name)
		return failedVerdict(entry, MethodFFprobe, "failed", "Timeout")
	case probeCtx.Err() != nil:
		return failedVerdict(entry, MethodFFprobe, "failed", "Interrupted")
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The tool never ran (bad path, permissions); report the launch
			// error itself.
			return failedVerdict(entry, MethodFFprobe, "failed", err.Error())
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = "ffprobe failed"
		}
		p.Log.Debugf("Stream failed (ffprobe): %s - %s", entry.Name, errMsg)
		return failedVerdict(entry, MethodFFprobe, "failed", errMsg)
	}

	return p.parseReport(entry, stdout.Bytes())
}

// ffprobeReport mirrors the few JSON fields the cleaner cares about.
type ffprobeReport struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func (p *FFprobeProber) parseReport(entry *playlist.StreamEntry, raw []byte) *Verdict {
	var report ffprobeReport
	if err := json.Unmarshal(raw, &report); err != nil {
		// Clean exit with unparseable output: the stream opened fine, we
		// just cannot tell its quality.
		p.Log.Debugf("Stream OK (ffprobe, no JSON): %s", entry.Name)
		return workingVerdict(entry, MethodFFprobe, "unknown", 0, 0)
	}

	width, height := 0, 0
	for _, s := range report.Streams {
		if s.CodecType == "video" {
			width, height = s.Width, s.Height
			break
		}
	}

	quality := ClassifyQuality(width, height)
	p.Log.Debugf("Stream OK (ffprobe): %s - %s", entry.Name, quality)
	return workingVerdict(entry, MethodFFprobe, quality, width, height)
}
