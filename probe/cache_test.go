package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/utils"
)

func cacheEntry(index int, url string) *playlist.StreamEntry {
	return &playlist.StreamEntry{
		Name:        "channel",
		URL:         url,
		Fingerprint: utils.StreamFingerprint(url),
		Index:       index,
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache(time.Minute)
	entry := cacheEntry(0, "http://streams.test/one.m3u8")
	cache.Put(workingVerdict(entry, MethodFFprobe, "1080p", 1920, 1080))

	got, ok := cache.Get(entry.Fingerprint)
	require.True(t, ok)
	assert.True(t, got.Working)
	assert.Equal(t, "1080p", got.Quality)
	assert.Equal(t, 1, cache.Len())

	_, ok = cache.Get(utils.StreamFingerprint("http://streams.test/other.m3u8"))
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(30 * time.Millisecond)
	entry := cacheEntry(0, "http://streams.test/one.m3u8")
	cache.Put(workingVerdict(entry, MethodFFprobe, "720p", 1280, 720))

	_, ok := cache.Get(entry.Fingerprint)
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = cache.Get(entry.Fingerprint)
	assert.False(t, ok)
}

func TestCachePutIgnoresIncompleteVerdicts(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Put(nil)
	cache.Put(&Verdict{Working: true})

	assert.Zero(t, cache.Len())
}

func TestVerdictForEntryRebinds(t *testing.T) {
	url := "http://streams.test/one.m3u8"
	first := cacheEntry(3, url)
	first.InfoLine = `#EXTINF:-1,Channel (old run)`
	second := cacheEntry(7, url)
	second.InfoLine = `#EXTINF:-1,Channel (new run)`

	cached := workingVerdict(first, MethodFFprobe, "1080p", 1920, 1080)
	rebound := cached.ForEntry(second)

	// The probe outcome carries over; entry fields are the new run's.
	assert.True(t, rebound.Working)
	assert.Equal(t, "1080p", rebound.Quality)
	assert.Equal(t, 7, rebound.Index)
	assert.Equal(t, second.InfoLine, rebound.InfoLine)

	// The cached verdict itself keeps its original entry.
	assert.Equal(t, 3, cached.Index)
}

func TestCachedProberSkipsRepeatProbes(t *testing.T) {
	inner := newStubProber()
	cached := NewCachedProber(inner, NewCache(time.Minute))

	url := "http://streams.test/one.m3u8"
	first := cacheEntry(0, url)
	second := cacheEntry(5, url)

	v1 := cached.Probe(context.Background(), first)
	v2 := cached.Probe(context.Background(), second)

	assert.Equal(t, 1, inner.probeCount(url))
	assert.True(t, v1.Working)
	assert.True(t, v2.Working)
	assert.Equal(t, 5, v2.Index)
}

func TestCachedProberProbesDistinctURLs(t *testing.T) {
	inner := newStubProber()
	cached := NewCachedProber(inner, NewCache(time.Minute))

	cached.Probe(context.Background(), cacheEntry(0, "http://streams.test/one.m3u8"))
	cached.Probe(context.Background(), cacheEntry(1, "http://streams.test/two.m3u8"))

	assert.Equal(t, 2, inner.totalProbes())
}

func TestCachedProberMethodDelegates(t *testing.T) {
	cached := NewCachedProber(newStubProber(), NewCache(time.Minute))
	assert.Equal(t, "stub", cached.Method())
}
