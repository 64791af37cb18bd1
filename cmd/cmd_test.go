package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsUsesExplicitSources(t *testing.T) {
	flags := cleanFlags{
		sources:     []string{"https://example.com/a.m3u", "https://example.com/b.m3u"},
		category:    "french",
		output:      "out.m3u",
		workers:     10,
		timeout:     15,
		method:      "ffprobe",
		maxFallback: 5,
	}

	opts, err := flags.options()
	require.NoError(t, err)

	require.Len(t, opts.Sources, 2)
	assert.Equal(t, "https://example.com/a.m3u", opts.Sources[0].URL)
	assert.Equal(t, "out.m3u", opts.Output)
	assert.Equal(t, 15*time.Second, opts.Timeout)
}

func TestOptionsFallsBackToCategory(t *testing.T) {
	flags := cleanFlags{category: "french", workers: 10, timeout: 15}

	opts, err := flags.options()
	require.NoError(t, err)

	require.NotEmpty(t, opts.Sources)
	for _, src := range opts.Sources {
		assert.NotEmpty(t, src.Label)
		assert.NotEmpty(t, src.URL)
	}
}

func TestOptionsValidatesBounds(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		timeout int
		wantErr string
	}{
		{"too many workers", 51, 15, "workers must be between"},
		{"zero workers", 0, 15, "workers must be between"},
		{"timeout too long", 10, 61, "timeout must be between"},
		{"zero timeout", 10, 0, "timeout must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cleanFlags{workers: tt.workers, timeout: tt.timeout}
			_, err := flags.options()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"clean", "tnt", "compare", "sources", "watch"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}

func TestBindFlagsReadsEnvironment(t *testing.T) {
	t.Setenv("CLEANER_WORKERS", "20")
	t.Setenv("CLEANER_METHOD", "curl")

	cmd := &cobra.Command{Use: "probe-env"}
	var flags cleanFlags
	flags.register(cmd, "out.m3u", "all")
	require.NoError(t, cmd.Flags().Set("method", "hls"))

	bindFlags(cmd)

	assert.Equal(t, 20, flags.workers)
	assert.Equal(t, "hls", flags.method, "explicit flags beat the environment")
}

func TestCountLines(t *testing.T) {
	counts := map[string]int{"1080p": 4, "720p": 9, "480p": 4, "unknown": 1}

	lines := countLines(counts, 0)
	require.Equal(t, []string{"720p: 9", "1080p: 4", "480p: 4", "unknown: 1"}, lines)

	top := countLines(counts, 2)
	require.Equal(t, []string{"720p: 9", "1080p: 4"}, top)
}
