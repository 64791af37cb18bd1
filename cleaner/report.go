package cleaner

import (
	"fmt"
	"sort"
	"strings"

	"m3u-playlist-cleaner/channel"
	"m3u-playlist-cleaner/probe"
)

// report logs the post-run summary: totals, failure analysis, quality
// distribution, fallback usage and whatever the directory says is missing.
func (c *Cleaner) report(res *Result) {
	c.log.Logf("Probe results: %d working, %d failed of %d streams",
		res.Working, res.Failed, len(res.Verdicts))

	if res.Failed > 0 {
		c.reportFailures(res)
	}
	if res.Working > 0 {
		qualities := make(map[string]int)
		for _, v := range res.Verdicts {
			if v.Working {
				qualities[v.Quality]++
			}
		}
		c.log.Logf("Quality distribution:")
		for _, line := range sortedCounts(qualities) {
			c.log.Logf("  %s", line)
		}
	}

	fallbacks := 0
	for _, sel := range res.Selections {
		marker := ""
		if sel.FallbackUsed {
			marker = " (fallback)"
			fallbacks++
		}
		c.log.Logf("Selected %s: %s%s",
			channel.GroupKey(sel.Verdict.StreamEntry), sel.Verdict.Quality, marker)
	}
	if fallbacks > 0 {
		c.log.Logf("%d of %d channels use a fallback stream", fallbacks, len(res.Selections))
	}

	if c.opts.Directory != nil {
		found := make(map[string]bool, len(res.Selections))
		for _, sel := range res.Selections {
			found[sel.Verdict.Canonical] = true
		}
		if missing := c.opts.Directory.Missing(found); len(missing) > 0 {
			c.log.Warnf("Missing channels (%d): %s", len(missing), strings.Join(missing, ", "))
		}
	}
}

func (c *Cleaner) reportFailures(res *Result) {
	errorCounts, methodCounts := probe.Classify(res.Verdicts)

	c.log.Logf("Failure analysis:")
	for _, line := range sortedCounts(errorCounts) {
		c.log.Logf("  %s", line)
	}
	c.log.Logf("Failures by method:")
	for _, line := range sortedCounts(methodCounts) {
		c.log.Logf("  %s", line)
	}

	bySource := make(map[string]int)
	for _, v := range res.Verdicts {
		if !v.Working {
			bySource[v.Source]++
		}
	}
	c.log.Logf("Failures by source:")
	for _, line := range sortedCounts(bySource) {
		c.log.Logf("  %s", line)
	}
}

// sortedCounts renders a count map as "name: n" lines, biggest first, names
// breaking ties so the log order is stable.
func sortedCounts(counts map[string]int) []string {
	type kv struct {
		name  string
		count int
	}
	ordered := make([]kv, 0, len(counts))
	for name, count := range counts {
		ordered = append(ordered, kv{name, count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].name < ordered[j].name
	})

	lines := make([]string, 0, len(ordered))
	for _, item := range ordered {
		lines = append(lines, fmt.Sprintf("%s: %d", item.name, item.count))
	}
	return lines
}
