package updater

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"m3u-playlist-cleaner/cleaner"
	"m3u-playlist-cleaner/config"
	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/probe"
)

// Options configure the watch loop around a cleaner configuration.
type Options struct {
	Clean cleaner.Options

	// Schedule is a cron expression or an @every duration.
	Schedule string

	// Force re-runs the pipeline even when no source changed.
	Force bool

	// CacheTTL is how long a verdict is trusted before the URL is probed
	// again. Zero means the default.
	CacheTTL time.Duration

	// RunOnBoot triggers a run immediately instead of waiting for the
	// first tick.
	RunOnBoot bool
}

// Updater re-runs the cleaner on a schedule. Between ticks it keeps each
// source's last text as a compressed snapshot and every verdict in a TTL
// cache, so ticks where nothing changed cost almost nothing.
type Updater struct {
	sync.Mutex
	ctx   context.Context
	opts  cleaner.Options
	force bool
	log   logger.Logger

	Cron      *cron.Cron
	cache     *probe.Cache
	snapshots *snapshotStore
}

// Initialize builds the updater and starts its cron schedule. The caller
// owns ctx; cancelling it makes subsequent ticks no-ops, and Cron.Stop
// shuts the schedule down.
func Initialize(ctx context.Context, opts Options) (*Updater, error) {
	cleanOpts := opts.Clean
	cache := probe.NewCache(opts.CacheTTL)
	cleanOpts.Cache = cache
	if cleanOpts.FetchTimeout <= 0 {
		cleanOpts.FetchTimeout = playlist.DefaultFetchTimeout
	}

	u := &Updater{
		ctx:       ctx,
		opts:      cleanOpts,
		force:     opts.Force,
		log:       logger.Default,
		cache:     cache,
		snapshots: newSnapshotStore(config.GetSnapshotsDirPath()),
	}

	c := cron.New()
	if _, err := c.AddFunc(opts.Schedule, func() {
		go u.RunOnce()
	}); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", opts.Schedule, err)
	}
	c.Start()
	u.Cron = c
	u.log.Logf("Watching %d sources on schedule %q", len(cleanOpts.Sources), opts.Schedule)

	if opts.RunOnBoot {
		go u.RunOnce()
	}

	return u, nil
}

// RunOnce fetches the sources and re-runs the cleaner, unless every source
// is unchanged since the previous tick. Only one run executes at a time; a
// tick firing mid-run waits its turn.
func (u *Updater) RunOnce() {
	u.Lock()
	defer u.Unlock()

	select {
	case <-u.ctx.Done():
		return
	default:
	}

	results := playlist.FetchAll(u.ctx, u.opts.Sources, u.opts.FetchTimeout)

	changed := 0
	for _, res := range results {
		if res.Err != nil {
			// Failed downloads neither count as changed nor overwrite the
			// snapshot from the last good fetch.
			continue
		}
		if previous, ok := u.snapshots.Checksum(res.Source.Label); ok && previous == res.Checksum {
			u.log.Logf("Source %s unchanged since last check", res.Source.Label)
			continue
		}
		changed++
		if err := u.snapshots.Save(res.Source.Label, res.Text); err != nil {
			u.log.Warnf("Snapshot for %s failed: %v", res.Source.Label, err)
		}
	}

	if changed == 0 && !u.force {
		u.log.Logf("All sources unchanged, skipping probe run")
		return
	}

	res, err := cleaner.New(u.opts).RunFetched(u.ctx, results)
	if err != nil {
		u.log.Errorf("Watch run failed: %v", err)
		return
	}
	u.log.Logf("Watch run %s done: %d channels written to %s", res.RunID, res.Written, res.Output)
	u.log.Debugf("Verdict cache holds %d entries", u.cache.Len())
}
