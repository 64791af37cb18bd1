package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"

	"m3u-playlist-cleaner/logger"
)

// OutputEntry is one selected stream ready to be written. Quality is
// appended to the EXTINF line so players show it, except when unknown.
type OutputEntry struct {
	InfoLine string
	URL      string
	Quality  string
}

// WriteOptions control the generated header.
type WriteOptions struct {
	// TNT switches to the French broadcast-channel header variant.
	TNT bool
}

// Write renders the playlist into a pooled buffer and writes it in one shot.
func Write(path string, entries []OutputEntry, opts WriteOptions) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	now := time.Now().Format("02/01/2006 à 15:04:05")

	buf.WriteString("#EXTM3U\n")
	if opts.TNT {
		buf.WriteString("# Playlist TNT française - Chaînes principales\n")
		fmt.Fprintf(buf, "# Généré automatiquement le %s\n", now)
		fmt.Fprintf(buf, "# Total: %d chaînes TNT valides\n", len(entries))
		fmt.Fprintf(buf, "# Qualités détectées: %s\n", strings.Join(qualitySet(entries, true), ", "))
	} else {
		fmt.Fprintf(buf, "# Playlist générée le %s\n", now)
		fmt.Fprintf(buf, "# Total: %d flux valides\n", len(entries))
		if qualities := qualitySet(entries, false); len(qualities) > 0 {
			fmt.Fprintf(buf, "# Qualités détectées: %s\n", strings.Join(qualities, ", "))
		}
	}
	buf.WriteString("\n")

	for _, e := range entries {
		buf.WriteString(e.InfoLine)
		if e.Quality != "" && e.Quality != "unknown" {
			fmt.Fprintf(buf, " (%s)", e.Quality)
		}
		buf.WriteString("\n")
		buf.WriteString(e.URL)
		buf.WriteString("\n\n")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing playlist: %w", err)
	}

	logger.Default.Logf("Wrote %d entries to %s", len(entries), path)
	return nil
}

// qualitySet collects the distinct qualities for the header. The TNT header
// lists every quality including unknown, the generic one drops unknown.
func qualitySet(entries []OutputEntry, includeUnknown bool) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		q := e.Quality
		if q == "" {
			q = "unknown"
		}
		if q == "unknown" && !includeUnknown {
			continue
		}
		seen[q] = struct{}{}
	}

	qualities := make([]string, 0, len(seen))
	for q := range seen {
		qualities = append(qualities, q)
	}
	sort.Strings(qualities)
	return qualities
}

