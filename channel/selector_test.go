package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/probe"
)

func verdict(index int, name string, width, height int, working bool) *probe.Verdict {
	e := &playlist.StreamEntry{
		Name:           name,
		NormalizedName: Normalize(name),
		URL:            "http://stream/" + name,
		Index:          index,
	}
	v := &probe.Verdict{
		StreamEntry: e,
		Working:     working,
		Width:       width,
		Height:      height,
		Method:      probe.MethodFFprobe,
	}
	if working {
		v.Quality = probe.ClassifyQuality(width, height)
	} else {
		v.Quality = "failed"
		v.Error = "ffprobe failed"
	}
	return v
}

func TestSelectBestPicksHighestWorking(t *testing.T) {
	verdicts := []*probe.Verdict{
		verdict(0, "TF1", 854, 480, true),
		verdict(1, "TF1", 1280, 720, true),
		verdict(2, "TF1", 1920, 1080, true),
	}

	selections := SelectBest(verdicts, nil)
	require.Len(t, selections, 1)
	assert.Equal(t, 1080, selections[0].Verdict.Height)
	assert.Equal(t, "1080p", selections[0].Verdict.Quality)
	assert.False(t, selections[0].FallbackUsed)
}

func TestSelectBestFallsBackWhenTopFailed(t *testing.T) {
	verdicts := []*probe.Verdict{
		verdict(0, "TF1", 1920, 1080, false),
		verdict(1, "TF1", 1280, 720, true),
	}

	selections := SelectBest(verdicts, nil)
	require.Len(t, selections, 1)
	assert.Equal(t, 720, selections[0].Verdict.Height)
	assert.True(t, selections[0].Verdict.Working)
	assert.True(t, selections[0].FallbackUsed)
}

func TestSelectBestNeverPicksFailedVerdicts(t *testing.T) {
	verdicts := []*probe.Verdict{
		verdict(0, "TF1", 1920, 1080, false),
		verdict(1, "TF1", 1280, 720, false),
	}

	selections := SelectBest(verdicts, nil)
	assert.Empty(t, selections)
}

func TestSelectBestTieBreakByDiscoveryOrder(t *testing.T) {
	verdicts := []*probe.Verdict{
		verdict(3, "TF1", 1280, 720, true),
		verdict(1, "TF1", 1280, 720, true),
		verdict(2, "TF1", 1280, 720, true),
	}

	selections := SelectBest(verdicts, nil)
	require.Len(t, selections, 1)
	// Identical resolutions: the first-discovered entry wins regardless of
	// completion order.
	assert.Equal(t, 1, selections[0].Verdict.Index)
	assert.False(t, selections[0].FallbackUsed)
}

func TestSelectBestGenericOrderIsSortedByKey(t *testing.T) {
	verdicts := []*probe.Verdict{
		verdict(0, "W9", 1280, 720, true),
		verdict(1, "Arte", 1280, 720, true),
		verdict(2, "M6", 1280, 720, true),
	}

	selections := SelectBest(verdicts, nil)
	require.Len(t, selections, 3)
	assert.Equal(t, "Arte", selections[0].Verdict.Name)
	assert.Equal(t, "M6", selections[1].Verdict.Name)
	assert.Equal(t, "W9", selections[2].Verdict.Name)
}

func TestSelectBestDirectoryOrder(t *testing.T) {
	arte := verdict(0, "Arte", 1280, 720, true)
	arte.Canonical = "Arte"
	tf1 := verdict(1, "TF1", 1280, 720, true)
	tf1.Canonical = "TF1"
	m6 := verdict(2, "M6", 1280, 720, true)
	m6.Canonical = "M6"

	selections := SelectBest([]*probe.Verdict{arte, tf1, m6}, TNT())
	require.Len(t, selections, 3)
	// Directory rank order: TF1 (1), M6 (6), Arte (7).
	assert.Equal(t, "TF1", selections[0].Verdict.Canonical)
	assert.Equal(t, "M6", selections[1].Verdict.Canonical)
	assert.Equal(t, "Arte", selections[2].Verdict.Canonical)
}

func TestGroupSortsByResolutionThenDiscovery(t *testing.T) {
	verdicts := []*probe.Verdict{
		verdict(2, "TF1", 1280, 720, true),
		verdict(0, "TF1", 1920, 1080, false),
		verdict(1, "TF1", 1280, 720, true),
	}

	groups := Group(verdicts)
	require.Len(t, groups, 1)
	group := groups["tf1"]
	require.Len(t, group, 3)
	assert.Equal(t, 1080, group[0].Height)
	assert.Equal(t, 1, group[1].Index)
	assert.Equal(t, 2, group[2].Index)
}
