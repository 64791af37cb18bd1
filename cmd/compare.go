package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/playlist"
)

var compareJSON string

var compareCmd = &cobra.Command{
	Use:   "compare <playlist>...",
	Short: "Analyze and compare generated playlists",
	Long: `Parse one or more M3U files and report channel counts, quality and
group distributions and duplicates. With two or more files the report also
lists the channels common to all of them and the ones unique to each.

Examples:
  # Compare the generic and the TNT output
  m3u-playlist-cleaner compare filtered.m3u tnt_channels.m3u

  # Save the comparison for scripting
  m3u-playlist-cleaner compare filtered.m3u tnt_channels.m3u --json report.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareJSON, "json", "", "also write the comparison to this JSON file")
}

func runCompare(cmd *cobra.Command, args []string) error {
	log := logger.Default

	files := make([]string, 0, len(args))
	for _, file := range args {
		if _, err := os.Stat(file); err != nil {
			log.Errorf("Playlist not found: %s", file)
			continue
		}
		files = append(files, file)
	}

	comparison, err := playlist.Compare(files)
	if err != nil {
		return err
	}

	for _, stats := range comparison.Playlists {
		reportStats(stats)
	}
	if len(comparison.Playlists) > 1 {
		reportComparison(comparison)
	}

	if compareJSON != "" {
		if err := comparison.WriteJSON(compareJSON); err != nil {
			return err
		}
		log.Logf("Comparison saved to %s", compareJSON)
	}
	return nil
}

func reportStats(stats *playlist.PlaylistStats) {
	log := logger.Default

	log.Logf("Analysis of %s:", stats.File)
	log.Logf("  Channels: %d", stats.Total)
	log.Logf("  Qualities:")
	for _, line := range countLines(stats.Qualities, 0) {
		log.Logf("    %s", line)
	}
	log.Logf("  Groups (top 10):")
	for _, line := range countLines(stats.Groups, 10) {
		log.Logf("    %s", line)
	}
	log.Logf("  Unique names: %d", stats.UniqueNames)
	if stats.Duplicates > 0 {
		log.Warnf("  Duplicate names: %d", stats.Duplicates)
	}
}

func reportComparison(comparison *playlist.Comparison) {
	log := logger.Default

	log.Logf("Comparison:")
	for _, stats := range comparison.Playlists {
		log.Logf("  %s: %d channels", stats.File, stats.Total)
	}

	log.Logf("Common to all playlists: %d channels", len(comparison.Common))
	for i, name := range comparison.Common {
		if i == 10 {
			log.Logf("  ... and %d more", len(comparison.Common)-10)
			break
		}
		log.Logf("  %d. %s", i+1, name)
	}

	log.Logf("Unique per playlist:")
	for _, stats := range comparison.Playlists {
		unique := comparison.Unique[stats.File]
		log.Logf("  %s: %d channels", stats.File, len(unique))
		for i, name := range unique {
			if i == 5 {
				break
			}
			log.Logf("    - %s", name)
		}
	}
}

// countLines renders a count map as "name: n" lines, biggest first. A topN
// of 0 keeps everything.
func countLines(counts map[string]int, topN int) []string {
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
	if topN > 0 && len(ordered) > topN {
		ordered = ordered[:topN]
	}

	lines := make([]string, 0, len(ordered))
	for _, item := range ordered {
		lines = append(lines, fmt.Sprintf("%s: %d", item.name, item.count))
	}
	return lines
}
