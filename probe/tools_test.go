package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToolFromPath(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "streamcheck")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	assert.Equal(t, tool, ResolveTool("streamcheck"))
	assert.True(t, CheckTool("streamcheck"))
}

func TestResolveToolFromFallbackDirs(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "streamcheck")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", t.TempDir())
	oldDirs := fallbackToolDirs
	fallbackToolDirs = []string{dir}
	t.Cleanup(func() { fallbackToolDirs = oldDirs })

	assert.Equal(t, tool, ResolveTool("streamcheck"))
}

func TestResolveToolSkipsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "streamcheck"), []byte("data"), 0o644))

	t.Setenv("PATH", t.TempDir())
	oldDirs := fallbackToolDirs
	fallbackToolDirs = []string{dir}
	t.Cleanup(func() { fallbackToolDirs = oldDirs })

	assert.Empty(t, ResolveTool("streamcheck"))
	assert.False(t, CheckTool("streamcheck"))
}

func TestResolveToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	oldDirs := fallbackToolDirs
	fallbackToolDirs = []string{t.TempDir()}
	t.Cleanup(func() { fallbackToolDirs = oldDirs })

	assert.Empty(t, ResolveTool("streamcheck"))
}
