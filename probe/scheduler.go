package probe

import (
	"context"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/ratelimit"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
	"m3u-playlist-cleaner/utils"
)

// DefaultWorkers is the pool size when nothing configures one. Probing is
// subprocess-bound, not CPU-bound, so this intentionally ignores NumCPU.
const DefaultWorkers = 10

// Prober checks one stream entry and always comes back with a verdict,
// never an error. The scheduler relies on that to keep advancing through
// partial failures.
type Prober interface {
	Probe(ctx context.Context, entry *playlist.StreamEntry) *Verdict
	Method() string
}

// Snapshot is one consistent observation of scheduler progress.
type Snapshot struct {
	Total   int
	Working int
	Failed  int
}

func (s Snapshot) Completed() int {
	return s.Working + s.Failed
}

// progress packs both live counters into one atomic word, working in the
// high half, so any reader sees a pair that sums to the completed count.
type progress struct {
	total int
	state atomic.Uint64
}

func (p *progress) observe(working bool) {
	if working {
		p.state.Add(1 << 32)
	} else {
		p.state.Add(1)
	}
}

func (p *progress) snapshot() Snapshot {
	s := p.state.Load()
	return Snapshot{
		Total:   p.total,
		Working: int(s >> 32),
		Failed:  int(s & 0xffffffff),
	}
}

// Scheduler fans entries out to a bounded worker pool and collects verdicts
// in completion order. There is no scheduler-level deadline and no early
// exit: one verdict comes back per entry, bounded only by each probe's own
// timeout.
type Scheduler struct {
	// Workers is the pool size; values below 1 fall back to DefaultWorkers.
	// The CLI boundary validates its own range before it gets here.
	Workers int

	// Rate caps probe launches per second. Zero means unpaced.
	Rate int

	Log logger.Logger

	// OnProgress, when set, observes each completed verdict from the
	// collecting goroutine.
	OnProgress func(Snapshot)

	current atomic.Pointer[progress]
}

func NewScheduler(workers int) *Scheduler {
	return &Scheduler{
		Workers: workers,
		Log:     logger.Default,
	}
}

// Progress reports the live counts of the run in flight. Before any run it
// is all zeros.
func (s *Scheduler) Progress() Snapshot {
	if p := s.current.Load(); p != nil {
		return p.snapshot()
	}
	return Snapshot{}
}

// ScheduleAll probes every entry and returns exactly one verdict per entry,
// in completion order. Entries rejected by the URL safety filter become
// failed verdicts directly and never reach a worker, let alone a
// subprocess. Cancelling ctx does not drop verdicts: in-flight probes
// resolve as interrupted and are still collected.
func (s *Scheduler) ScheduleAll(ctx context.Context, prober Prober, entries []*playlist.StreamEntry) []*Verdict {
	prog := &progress{total: len(entries)}
	s.current.Store(prog)

	workers := s.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	if workers > len(entries) && len(entries) > 0 {
		workers = len(entries)
	}

	// Buffered to the exact send count, so workers never block reporting
	// and a refused submission can resolve inline.
	results := make(chan *Verdict, len(entries))

	pool, err := ants.NewPool(workers)
	if err != nil {
		s.Log.Errorf("Worker pool unavailable, probing inline: %v", err)
	} else {
		defer pool.Release()
	}

	limiter := ratelimit.NewUnlimited()
	if s.Rate > 0 {
		limiter = ratelimit.New(s.Rate)
	}

	for _, entry := range entries {
		if !utils.IsSafeStreamURL(entry.URL) {
			s.Log.Warnf("Invalid URL for %s: %s", entry.Name, entry.URL)
			results <- failedVerdict(entry, MethodValidation, "failed", "Invalid URL")
			continue
		}

		entry := entry
		task := func() {
			limiter.Take()
			results <- prober.Probe(ctx, entry)
		}
		if pool != nil {
			if err := pool.Submit(task); err == nil {
				continue
			}
			s.Log.Errorf("Pool refused probe for %s, running inline", entry.Name)
		}
		task()
	}

	verdicts := make([]*Verdict, 0, len(entries))
	for range entries {
		v := <-results
		prog.observe(v.Working)
		verdicts = append(verdicts, v)

		snap := prog.snapshot()
		if s.OnProgress != nil {
			s.OnProgress(snap)
		}
		s.logProgress(snap)
	}
	return verdicts
}

// logProgress reports at coarser intervals as counts grow, the way a
// progress bar would, plus once at the very end.
func (s *Scheduler) logProgress(snap Snapshot) {
	done := snap.Completed()
	if done == snap.Total {
		s.Log.Logf("Probed %d/%d streams: %d working, %d failed",
			done, snap.Total, snap.Working, snap.Failed)
		return
	}
	batch := 10
	for batch*10 <= done {
		batch *= 10
	}
	if done%batch == 0 {
		s.Log.Logf("Probed %d/%d streams: %d working, %d failed",
			done, snap.Total, snap.Working, snap.Failed)
	}
}
