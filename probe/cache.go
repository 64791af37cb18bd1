package probe

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
)

// DefaultCacheTTL is how long watch mode trusts a verdict before re-probing
// the same URL.
const DefaultCacheTTL = 2 * time.Hour

// Cache remembers verdicts by stream fingerprint so closely spaced runs do
// not probe the same URL twice. One-shot commands never use it; only the
// watch loop does.
type Cache struct {
	store *gocache.Cache
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{store: gocache.New(ttl, 10*time.Minute)}
}

// Get returns the cached verdict for a fingerprint, if it has not expired.
func (c *Cache) Get(fingerprint string) (*Verdict, bool) {
	cached, ok := c.store.Get(fingerprint)
	if !ok {
		return nil, false
	}
	return cached.(*Verdict), true
}

// Put stores a verdict under its entry's fingerprint.
func (c *Cache) Put(v *Verdict) {
	if v == nil || v.StreamEntry == nil {
		return
	}
	c.store.Set(v.Fingerprint, v, gocache.DefaultExpiration)
}

func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// ForEntry rebinds a cached verdict to the entry of the current run. The
// probe outcome carries over; the entry fields (info line, discovery index,
// source) must be this run's, or selection and output would see stale ones.
func (v *Verdict) ForEntry(entry *playlist.StreamEntry) *Verdict {
	rebound := *v
	rebound.StreamEntry = entry
	return &rebound
}

// CachedProber wraps a Prober with a verdict cache. Hits skip the probe
// entirely; misses are probed and stored.
type CachedProber struct {
	Inner Prober
	Cache *Cache
	Log   logger.Logger
}

func NewCachedProber(inner Prober, cache *Cache) *CachedProber {
	return &CachedProber{
		Inner: inner,
		Cache: cache,
		Log:   logger.Default,
	}
}

func (p *CachedProber) Method() string { return p.Inner.Method() }

func (p *CachedProber) Probe(ctx context.Context, entry *playlist.StreamEntry) *Verdict {
	if cached, ok := p.Cache.Get(entry.Fingerprint); ok {
		p.Log.Debugf("Verdict cache hit for %s", entry.Name)
		return cached.ForEntry(entry)
	}
	v := p.Inner.Probe(ctx, entry)
	p.Cache.Put(v)
	return v
}
