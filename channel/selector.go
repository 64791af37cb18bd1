package channel

import (
	"sort"

	"m3u-playlist-cleaner/probe"
)

// Selection is the stream chosen to represent one channel. FallbackUsed
// marks that a better-resolution candidate existed but failed probing.
type Selection struct {
	Verdict      *probe.Verdict
	FallbackUsed bool
}

// Group buckets verdicts by channel identity. Probe completion order is
// nondeterministic, so each bucket is re-sorted by descending resolution
// with discovery order breaking ties.
func Group(verdicts []*probe.Verdict) map[string][]*probe.Verdict {
	groups := make(map[string][]*probe.Verdict)
	for _, v := range verdicts {
		key := GroupKey(v.StreamEntry)
		groups[key] = append(groups[key], v)
	}
	for _, group := range groups {
		sortByResolution(group)
	}
	return groups
}

func sortByResolution(group []*probe.Verdict) {
	sort.Slice(group, func(i, j int) bool {
		if group[i].Height != group[j].Height {
			return group[i].Height > group[j].Height
		}
		if group[i].Width != group[j].Width {
			return group[i].Width > group[j].Width
		}
		return group[i].Index < group[j].Index
	})
}

// SelectBest keeps, per channel, the first working verdict in resolution
// order. Channels where nothing works are simply absent from the result.
// Output order is the directory order when dir is set, ascending group key
// otherwise, so the written playlist is deterministic.
func SelectBest(verdicts []*probe.Verdict, dir *Directory) []Selection {
	groups := Group(verdicts)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	if dir != nil {
		sort.Slice(keys, func(i, j int) bool {
			return dir.Rank(keys[i]) < dir.Rank(keys[j])
		})
	} else {
		sort.Strings(keys)
	}

	selections := make([]Selection, 0, len(keys))
	for _, key := range keys {
		if sel, ok := selectFromGroup(groups[key]); ok {
			selections = append(selections, sel)
		}
	}
	return selections
}

// selectFromGroup scans a resolution-sorted group for the first working
// verdict. A working stream that was not the top candidate means every
// better one failed, which is exactly what the fallback flag reports.
func selectFromGroup(group []*probe.Verdict) (Selection, bool) {
	for i, v := range group {
		if v.Working {
			return Selection{Verdict: v, FallbackUsed: i > 0}, true
		}
	}
	return Selection{}, false
}
