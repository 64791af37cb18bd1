package cleaner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"m3u-playlist-cleaner/channel"
	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/probe"
)

// DefaultTimeout is the per-probe timeout when nothing configures one.
const DefaultTimeout = 15 * time.Second

// Options configure one cleaning run.
type Options struct {
	// Sources are the playlists to harvest. At least one is required.
	Sources []playlist.Source

	// Output is the path of the generated playlist.
	Output string

	Workers int

	// Timeout bounds each individual probe.
	Timeout time.Duration

	// FetchTimeout bounds each source download.
	FetchTimeout time.Duration

	// Method picks the prober: ffprobe (the default), curl or hls.
	Method string

	// Rate caps probe launches per second. Zero means unpaced.
	Rate int

	// Directory scopes the run to a closed channel set and orders the
	// output by broadcast rank. Nil keeps every channel.
	Directory *channel.Directory

	// KeepDuplicates disables dropping exact URL duplicates.
	KeepDuplicates bool

	// MaxFallback caps the candidate streams probed per channel.
	MaxFallback int

	// Cache reuses recent verdicts across runs. Watch mode sets it;
	// one-shot runs leave it nil so every run probes fresh.
	Cache *probe.Cache

	// Prober overrides method resolution entirely. Tests use it.
	Prober probe.Prober

	// OnProgress observes each completed probe.
	OnProgress func(probe.Snapshot)
}

// Result is everything a run produced.
type Result struct {
	RunID         string
	SourceResults []*playlist.SourceResult
	Entries       []*playlist.StreamEntry
	Verdicts      []*probe.Verdict
	Working       int
	Failed        int
	Selections    []channel.Selection
	Written       int
	Output        string
}

// Cleaner drives the pipeline: fetch, parse, deduplicate, probe, select,
// write.
type Cleaner struct {
	opts Options
	log  logger.Logger
}

func New(opts Options) *Cleaner {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = playlist.DefaultFetchTimeout
	}
	if opts.MaxFallback <= 0 {
		opts.MaxFallback = channel.DefaultMaxFallback
	}
	return &Cleaner{opts: opts, log: logger.Default}
}

// Run executes the pipeline once, downloading the sources first. It returns
// an error only when no playlist can be produced at all; individual stream
// failures are part of the Result.
func (c *Cleaner) Run(ctx context.Context) (*Result, error) {
	if len(c.opts.Sources) == 0 {
		return nil, errors.New("no playlist sources configured")
	}
	prober, err := c.prober()
	if err != nil {
		return nil, err
	}
	results := playlist.FetchAll(ctx, c.opts.Sources, c.opts.FetchTimeout)
	return c.run(ctx, prober, results)
}

// RunFetched runs the pipeline on sources already downloaded. Watch mode
// uses it to reuse the downloads it compared checksums on.
func (c *Cleaner) RunFetched(ctx context.Context, results []*playlist.SourceResult) (*Result, error) {
	prober, err := c.prober()
	if err != nil {
		return nil, err
	}
	return c.run(ctx, prober, results)
}

func (c *Cleaner) run(ctx context.Context, prober probe.Prober, results []*playlist.SourceResult) (*Result, error) {
	res := &Result{
		RunID:         uuid.New().String(),
		Output:        c.opts.Output,
		SourceResults: results,
	}
	c.log.Logf("Run %s: %d sources fetched", res.RunID, len(results))

	entries := playlist.ParseAll(results)
	if len(entries) == 0 {
		return nil, errors.New("no stream entries found in any source")
	}

	entries = channel.Annotate(entries, c.opts.Directory)
	if len(entries) == 0 {
		return nil, errors.New("no entries match the channel directory")
	}
	entries = channel.Deduplicate(entries, channel.DedupOptions{
		KeepDuplicates: c.opts.KeepDuplicates,
		MaxFallback:    c.opts.MaxFallback,
		Directory:      c.opts.Directory,
	})
	res.Entries = entries

	scheduler := probe.NewScheduler(c.opts.Workers)
	scheduler.Rate = c.opts.Rate
	scheduler.OnProgress = c.opts.OnProgress
	c.log.Logf("Run %s: probing %d streams via %s", res.RunID, len(entries), prober.Method())
	res.Verdicts = scheduler.ScheduleAll(ctx, prober, entries)

	for _, v := range res.Verdicts {
		if v.Working {
			res.Working++
		} else {
			res.Failed++
		}
	}

	res.Selections = channel.SelectBest(res.Verdicts, c.opts.Directory)
	c.report(res)

	outputs := make([]playlist.OutputEntry, 0, len(res.Selections))
	for _, sel := range res.Selections {
		outputs = append(outputs, playlist.OutputEntry{
			InfoLine: sel.Verdict.InfoLine,
			URL:      sel.Verdict.URL,
			Quality:  sel.Verdict.Quality,
		})
	}
	if err := playlist.Write(c.opts.Output, outputs, playlist.WriteOptions{TNT: c.opts.Directory != nil}); err != nil {
		return nil, err
	}
	res.Written = len(outputs)

	c.log.Logf("Run %s: kept %d of %d channels, playlist at %s",
		res.RunID, res.Written, len(res.Entries), c.opts.Output)
	return res, nil
}

// prober resolves the configured method, wrapping it with the verdict cache
// when one is set. External tools are checked up front so a missing ffprobe
// stops the run before any download happens.
func (c *Cleaner) prober() (probe.Prober, error) {
	base := c.opts.Prober
	if base == nil {
		switch c.opts.Method {
		case "", probe.MethodFFprobe:
			if !probe.CheckTool("ffprobe") {
				return nil, errors.New("ffprobe is required but not installed")
			}
			base = probe.NewFFprobeProber(c.opts.Timeout)
		case probe.MethodCurl:
			if !probe.CheckTool("curl") {
				return nil, errors.New("curl is required but not installed")
			}
			base = probe.NewCurlProber(c.opts.Timeout)
		case probe.MethodHLS:
			base = probe.NewHLSProber(c.opts.Timeout)
		default:
			return nil, fmt.Errorf("unknown probe method %q", c.opts.Method)
		}
	}
	if c.opts.Cache != nil {
		base = probe.NewCachedProber(base, c.opts.Cache)
	}
	return base, nil
}
