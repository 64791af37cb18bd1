package playlist

// StreamEntry is one channel entry discovered in a source playlist. Entries
// keep their original #EXTINF line so the output playlist preserves whatever
// attributes the provider set.
type StreamEntry struct {
	Name           string // display name from tvg-name or the EXTINF comma tail
	NormalizedName string // grouping key, filled in by the channel package
	Canonical      string // official channel name when matched against a directory
	InfoLine       string // original #EXTINF line
	URL            string
	Fingerprint    string // stable hash of the URL
	Source         string // label of the playlist the entry came from
	Index          int    // discovery order across all sources

	// Resolution hinted by the display name, e.g. "(720p)" or "1920x1080".
	// Zero when the name carries no hint.
	HintWidth  int
	HintHeight int
}

// Source is a single playlist to download.
type Source struct {
	Label string
	URL   string
}

// SourceResult is the outcome of downloading one source.
type SourceResult struct {
	Source   Source
	Text     string
	Checksum string
	Err      error
}
