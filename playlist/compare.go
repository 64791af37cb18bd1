package playlist

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

var (
	compareNameRegex    = regexp.MustCompile(`,(.+)$`)
	compareQualityRegex = regexp.MustCompile(`\((\d+p)\)`)
	groupTitleRegex     = regexp.MustCompile(`group-title="([^"]+)"`)
)

// ComparedChannel is one playlist row as seen by the compare command. It is
// looser than StreamEntry on purpose: comparison works on any playlist,
// including ones this tool did not generate.
type ComparedChannel struct {
	Name    string `json:"name"`
	Quality string `json:"quality"`
	Group   string `json:"group"`
	URL     string `json:"url"`
}

// PlaylistStats summarize one playlist file.
type PlaylistStats struct {
	File        string         `json:"file"`
	Total       int            `json:"total"`
	Qualities   map[string]int `json:"qualities"`
	Groups      map[string]int `json:"groups"`
	UniqueNames int            `json:"unique_names"`
	Duplicates  int            `json:"duplicates"`
}

// Comparison is the full result across playlists. Common and Unique are only
// filled when at least two playlists parsed successfully.
type Comparison struct {
	Playlists []*PlaylistStats    `json:"playlists"`
	Common    []string            `json:"common_channels,omitempty"`
	Unique    map[string][]string `json:"unique_channels,omitempty"`
}

// ParseFile reads a playlist for comparison. EXTINF lines are paired with
// URL lines positionally, which tolerates playlists that interleave other
// comment lines between the two.
func ParseFile(path string) ([]ComparedChannel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading playlist %s: %w", path, err)
	}

	var infoLines, urlLines []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "#EXTINF"):
			infoLines = append(infoLines, line)
		case !strings.HasPrefix(line, "#") && strings.TrimSpace(line) != "":
			urlLines = append(urlLines, line)
		}
	}

	channels := make([]ComparedChannel, 0, len(infoLines))
	for i, info := range infoLines {
		if i >= len(urlLines) {
			break
		}

		name := fmt.Sprintf("Channel_%d", i+1)
		if m := compareNameRegex.FindStringSubmatch(info); m != nil {
			name = strings.TrimSpace(m[1])
		}
		quality := "unknown"
		if m := compareQualityRegex.FindStringSubmatch(info); m != nil {
			quality = m[1]
		}
		group := "General"
		if m := groupTitleRegex.FindStringSubmatch(info); m != nil {
			group = m[1]
		}

		channels = append(channels, ComparedChannel{
			Name:    name,
			Quality: quality,
			Group:   group,
			URL:     strings.TrimSpace(urlLines[i]),
		})
	}
	return channels, nil
}

// AnalyzeChannels computes per-file statistics.
func AnalyzeChannels(file string, channels []ComparedChannel) *PlaylistStats {
	stats := &PlaylistStats{
		File:      file,
		Total:     len(channels),
		Qualities: make(map[string]int),
		Groups:    make(map[string]int),
	}

	names := make(map[string]struct{})
	for _, ch := range channels {
		stats.Qualities[ch.Quality]++
		stats.Groups[ch.Group]++
		names[ch.Name] = struct{}{}
	}
	stats.UniqueNames = len(names)
	stats.Duplicates = stats.Total - stats.UniqueNames
	return stats
}

// Compare parses and analyzes a set of playlist files. Files that cannot be
// parsed are skipped; the error is only returned when nothing parsed at all.
func Compare(files []string) (*Comparison, error) {
	comparison := &Comparison{}
	channelSets := make(map[string]map[string]struct{})
	order := make([]string, 0, len(files))

	for _, file := range files {
		channels, err := ParseFile(file)
		if err != nil {
			continue
		}
		comparison.Playlists = append(comparison.Playlists, AnalyzeChannels(file, channels))

		set := make(map[string]struct{}, len(channels))
		for _, ch := range channels {
			set[ch.Name] = struct{}{}
		}
		channelSets[file] = set
		order = append(order, file)
	}

	if len(comparison.Playlists) == 0 {
		return nil, fmt.Errorf("no readable playlists among %d files", len(files))
	}
	if len(order) < 2 {
		return comparison, nil
	}

	comparison.Common = commonNames(order, channelSets)
	comparison.Unique = uniqueNames(order, channelSets)
	return comparison, nil
}

// commonNames returns the names present in every playlist, sorted.
func commonNames(order []string, sets map[string]map[string]struct{}) []string {
	var common []string
	for name := range sets[order[0]] {
		inAll := true
		for _, file := range order[1:] {
			if _, ok := sets[file][name]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, name)
		}
	}
	sort.Strings(common)
	return common
}

// uniqueNames returns, per playlist, the names found nowhere else.
func uniqueNames(order []string, sets map[string]map[string]struct{}) map[string][]string {
	unique := make(map[string][]string, len(order))
	for _, file := range order {
		var only []string
		for name := range sets[file] {
			elsewhere := false
			for _, other := range order {
				if other == file {
					continue
				}
				if _, ok := sets[other][name]; ok {
					elsewhere = true
					break
				}
			}
			if !elsewhere {
				only = append(only, name)
			}
		}
		sort.Strings(only)
		unique[file] = only
	}
	return unique
}

// WriteJSON saves the comparison as an indented JSON report.
func (c *Comparison) WriteJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding comparison: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
