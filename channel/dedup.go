package channel

import (
	"sort"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
)

// DefaultMaxFallback is how many candidate streams a channel keeps for
// fallback when nothing caps it explicitly.
const DefaultMaxFallback = 5

// DedupOptions pick the reduction axes. Both axes are idempotent, so
// running an already-reduced list through again changes nothing.
type DedupOptions struct {
	// KeepDuplicates disables dropping entries whose URL fingerprint was
	// already seen.
	KeepDuplicates bool

	// MaxFallback caps how many entries survive per channel group, keeping
	// the best resolution hints. Zero means no cap.
	MaxFallback int

	// Directory, when set, groups by canonical channel identity and drops
	// entries the directory does not recognize.
	Directory *Directory
}

// Annotate fills the grouping fields on every entry. With a directory, only
// entries matching a directory channel survive; without one every entry
// gets its normalized name as grouping key.
func Annotate(entries []*playlist.StreamEntry, dir *Directory) []*playlist.StreamEntry {
	if dir == nil {
		for _, e := range entries {
			e.NormalizedName = Normalize(e.Name)
		}
		return entries
	}

	kept := make([]*playlist.StreamEntry, 0, len(entries))
	for _, e := range entries {
		canonical, ok := dir.Match(e.Name)
		if !ok {
			continue
		}
		e.Canonical = canonical
		e.NormalizedName = Normalize(e.Name)
		kept = append(kept, e)
	}
	logger.Default.Debugf("Directory filter kept %d of %d entries", len(kept), len(entries))
	return kept
}

// GroupKey is the channel identity an entry is grouped under: the canonical
// directory name when one was matched, the normalized name otherwise.
func GroupKey(e *playlist.StreamEntry) string {
	if e.Canonical != "" {
		return e.Canonical
	}
	return e.NormalizedName
}

// Deduplicate reduces annotated entries along the configured axes: exact
// URL duplicates first, then the per-channel fallback cap. First-discovered
// entries win on both axes.
func Deduplicate(entries []*playlist.StreamEntry, opts DedupOptions) []*playlist.StreamEntry {
	reduced := entries
	if !opts.KeepDuplicates {
		reduced = dropExactDuplicates(reduced)
	}
	if opts.MaxFallback > 0 {
		reduced = capFallbacks(reduced, opts.MaxFallback)
	}
	if len(reduced) != len(entries) {
		logger.Default.Logf("Deduplication: %d -> %d streams", len(entries), len(reduced))
	}
	return reduced
}

// dropExactDuplicates keeps the first occurrence of each URL fingerprint.
// The same stream often appears in several source playlists under different
// display names; probing it once is enough.
func dropExactDuplicates(entries []*playlist.StreamEntry) []*playlist.StreamEntry {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]*playlist.StreamEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Fingerprint]; ok {
			continue
		}
		seen[e.Fingerprint] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

// capFallbacks bounds each channel group to the maxFallback entries with the
// best resolution hints, probing cost being the thing bounded. Output keeps
// discovery order across groups so downstream indexes stay meaningful.
func capFallbacks(entries []*playlist.StreamEntry, maxFallback int) []*playlist.StreamEntry {
	groups := make(map[string][]*playlist.StreamEntry)
	for _, e := range entries {
		key := GroupKey(e)
		groups[key] = append(groups[key], e)
	}

	kept := make(map[*playlist.StreamEntry]struct{}, len(entries))
	for key, group := range groups {
		if len(group) <= maxFallback {
			for _, e := range group {
				kept[e] = struct{}{}
			}
			continue
		}

		// Stable sort: groups arrive in discovery order, so equal hints
		// keep first-discovered first.
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].HintHeight != group[j].HintHeight {
				return group[i].HintHeight > group[j].HintHeight
			}
			return group[i].HintWidth > group[j].HintWidth
		})
		for _, e := range group[:maxFallback] {
			kept[e] = struct{}{}
		}
		logger.Default.Debugf("Channel %s: %d candidates -> %d kept", key, len(group), maxFallback)
	}

	reduced := make([]*playlist.StreamEntry, 0, len(kept))
	for _, e := range entries {
		if _, ok := kept[e]; ok {
			reduced = append(reduced, e)
		}
	}
	return reduced
}
