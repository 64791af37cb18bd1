package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
)

func curlUnderTest(toolPath string, timeout time.Duration) *CurlProber {
	return &CurlProber{
		ToolPath: toolPath,
		Timeout:  timeout,
		Log:      logger.Default,
	}
}

func TestCurlProbeWorkingStream(t *testing.T) {
	tool := writeFakeTool(t, "curl",
		`printf 'HTTP/1.1 200 OK\r\nContent-Type: application/vnd.apple.mpegurl\r\n\r\n'`)

	p := curlUnderTest(tool, 2*time.Second)
	v := p.Probe(context.Background(), &playlist.StreamEntry{
		Name: "hd channel",
		URL:  "http://streams.test/hls/720/index.m3u8",
	})

	require.True(t, v.Working)
	assert.Equal(t, MethodCurl, v.Method)
	assert.Equal(t, "application/vnd.apple.mpegurl", v.ContentType)
	// Header checks cannot see the picture, so quality comes from URL
	// tokens.
	assert.Equal(t, "720p", v.Quality)
	assert.Equal(t, 1280, v.Width)
	assert.Equal(t, 720, v.Height)
}

func TestCurlProbeNoQualityToken(t *testing.T) {
	tool := writeFakeTool(t, "curl", `printf 'HTTP/1.1 200 OK\r\n\r\n'`)

	p := curlUnderTest(tool, 2*time.Second)
	v := p.Probe(context.Background(), &playlist.StreamEntry{
		Name: "plain",
		URL:  "http://streams.test/live/master.m3u8",
	})

	require.True(t, v.Working)
	assert.Equal(t, "unknown", v.Quality)
	assert.Empty(t, v.ContentType)
}

func TestCurlProbePassesInvocationContract(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	tool := writeFakeTool(t, "curl", fmt.Sprintf(`echo "$@" > %q`, argsFile))

	p := curlUnderTest(tool, 10*time.Second)
	entry := makeEntries(1)[0]
	p.Probe(context.Background(), entry)

	raw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := string(raw)

	assert.Contains(t, args, "-I")
	assert.Contains(t, args, "--connect-timeout 10")
	assert.Contains(t, args, "--max-time 10")
	assert.Contains(t, args, "--silent")
	assert.Contains(t, args, "--fail")
	assert.Contains(t, args, entry.URL)
}

func TestCurlProbeFailureKeepsStderr(t *testing.T) {
	tool := writeFakeTool(t, "curl", `echo "curl: (22) The requested URL returned error: 403" >&2
exit 22`)

	p := curlUnderTest(tool, 2*time.Second)
	v := p.Probe(context.Background(), makeEntries(1)[0])

	require.False(t, v.Working)
	assert.Equal(t, "curl: (22) The requested URL returned error: 403", v.Error)
}

func TestCurlProbeFailureWithoutStderr(t *testing.T) {
	tool := writeFakeTool(t, "curl", "exit 7")

	p := curlUnderTest(tool, 2*time.Second)
	v := p.Probe(context.Background(), makeEntries(1)[0])

	require.False(t, v.Working)
	assert.Equal(t, "Unknown error", v.Error)
}

func TestCurlProbeTimeout(t *testing.T) {
	oldGrace := killGrace
	killGrace = 100 * time.Millisecond
	t.Cleanup(func() { killGrace = oldGrace })

	tool := writeFakeTool(t, "curl", "sleep 5")

	p := curlUnderTest(tool, 50*time.Millisecond)
	v := p.Probe(context.Background(), makeEntries(1)[0])

	require.False(t, v.Working)
	assert.Equal(t, "Timeout", v.Error)
}

func TestCurlProbeToolMissing(t *testing.T) {
	p := curlUnderTest("", 2*time.Second)
	v := p.Probe(context.Background(), makeEntries(1)[0])

	require.False(t, v.Working)
	assert.Equal(t, "curl not found", v.Error)
	assert.Equal(t, MethodValidation, v.Method)
}

func TestCurlProbeRejectsUnsafeURLWithoutRunningTool(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "invoked")
	tool := writeFakeTool(t, "curl", fmt.Sprintf("touch %q", marker))

	p := curlUnderTest(tool, 2*time.Second)
	v := p.Probe(context.Background(), &playlist.StreamEntry{
		Name: "bad",
		URL:  "file:///etc/passwd",
	})

	require.False(t, v.Working)
	assert.Equal(t, "Invalid URL", v.Error)
	assert.NoFileExists(t, marker)
}
