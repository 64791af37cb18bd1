package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
)

const masterManifest = `#EXTM3U
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=1500000,RESOLUTION=1280x720
720/index.m3u8
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=5000000,RESOLUTION=1920x1080
1080/index.m3u8
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=800000,RESOLUTION=854x480
480/index.m3u8
`

const mediaManifest = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:1
#EXTINF:10.000,
segment1.ts
#EXTINF:10.000,
segment2.ts
#EXT-X-ENDLIST
`

func hlsUnderTest(server *httptest.Server, timeout time.Duration) *HLSProber {
	return &HLSProber{
		Client:    server.Client(),
		Timeout:   timeout,
		UserAgent: "test-agent",
		Log:       logger.Default,
	}
}

func hlsEntry(url string) *playlist.StreamEntry {
	return &playlist.StreamEntry{Name: "channel", URL: url}
}

func TestHLSProbeMasterPlaylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		w.Write([]byte(masterManifest))
	}))
	defer server.Close()

	p := hlsUnderTest(server, 2*time.Second)
	v := p.Probe(context.Background(), hlsEntry(server.URL+"/live/master.m3u8"))

	require.True(t, v.Working)
	assert.Equal(t, MethodHLS, v.Method)
	// The largest advertised variant wins.
	assert.Equal(t, "1080p", v.Quality)
	assert.Equal(t, 1920, v.Width)
	assert.Equal(t, 1080, v.Height)
}

func TestHLSProbeMediaPlaylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(mediaManifest))
	}))
	defer server.Close()

	p := hlsUnderTest(server, 2*time.Second)
	v := p.Probe(context.Background(), hlsEntry(server.URL+"/hls/720/index.m3u8"))

	require.True(t, v.Working)
	// Media playlists carry no resolution, so quality falls back to URL
	// tokens.
	assert.Equal(t, "720p", v.Quality)
}

func TestHLSProbeNotAManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>totally a stream</html>"))
	}))
	defer server.Close()

	p := hlsUnderTest(server, 2*time.Second)
	v := p.Probe(context.Background(), hlsEntry(server.URL+"/live/master.m3u8"))

	require.True(t, v.Working)
	assert.Equal(t, "unknown", v.Quality)
}

func TestHLSProbeHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"not found", http.StatusNotFound, "HTTP Error 404"},
		{"forbidden", http.StatusForbidden, "HTTP Error 403"},
		{"server error", http.StatusInternalServerError, "HTTP Error 500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			p := hlsUnderTest(server, 2*time.Second)
			v := p.Probe(context.Background(), hlsEntry(server.URL+"/live/master.m3u8"))

			require.False(t, v.Working)
			assert.Equal(t, tc.want, v.Error)
			assert.Equal(t, MethodHLS, v.Method)
		})
	}
}

func TestHLSProbeTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	p := hlsUnderTest(server, 50*time.Millisecond)
	v := p.Probe(context.Background(), hlsEntry(server.URL+"/live/master.m3u8"))

	require.False(t, v.Working)
	assert.Equal(t, "Timeout", v.Error)
}

func TestHLSProbeRejectsUnsafeURL(t *testing.T) {
	p := &HLSProber{
		Client:    http.DefaultClient,
		Timeout:   time.Second,
		UserAgent: "test-agent",
		Log:       logger.Default,
	}
	v := p.Probe(context.Background(), hlsEntry("rtmp://streams.test/live"))

	require.False(t, v.Working)
	assert.Equal(t, "Invalid URL", v.Error)
	assert.Equal(t, MethodValidation, v.Method)
}

func TestBestVariantResolution(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Variants out of order, with one missing its resolution.
		w.Write([]byte(`#EXTM3U
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=5000000,RESOLUTION=1920x1080
big/index.m3u8
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=300000
audio/index.m3u8
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=1500000,RESOLUTION=1280x720
mid/index.m3u8
`))
	}))
	defer server.Close()

	p := hlsUnderTest(server, 2*time.Second)
	v := p.Probe(context.Background(), hlsEntry(server.URL+"/live/master.m3u8"))

	require.True(t, v.Working)
	assert.Equal(t, 1920, v.Width)
	assert.Equal(t, 1080, v.Height)
}
