package playlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"m3u-playlist-cleaner/logger"
	"m3u-playlist-cleaner/utils"
)

var (
	// attributeRegex matches M3U attributes in the format key="value"
	attributeRegex = regexp.MustCompile(`([a-zA-Z0-9_-]+)="([^"]*)"`)

	qualityTagRegex = regexp.MustCompile(`(\d{3,4})p\b`)
	dimensionsRegex = regexp.MustCompile(`(\d{3,4})\s*[xX]\s*(\d{3,4})`)
)

// Parse extracts stream entries from raw M3U text. An entry is an #EXTINF
// line followed by the next non-comment line, which is taken as the URL.
// startIndex is the discovery index of the first entry, so entries keep a
// global order when several sources are parsed in sequence.
func Parse(content, source string, startIndex int) []*StreamEntry {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var entries []*StreamEntry
	var infoLine string
	index := startIndex

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "#EXTINF"):
			infoLine = line
		case line == "" || strings.HasPrefix(line, "#"):
			// keep any pending EXTINF, providers interleave comment lines
		case infoLine != "":
			entries = append(entries, newEntry(infoLine, line, source, index))
			index++
			infoLine = ""
		}
	}

	logger.Default.Debugf("Parsed %d entries from source %s", len(entries), source)
	return entries
}

func newEntry(infoLine, url, source string, index int) *StreamEntry {
	entry := &StreamEntry{
		Name:        entryName(infoLine),
		InfoLine:    infoLine,
		URL:         url,
		Fingerprint: utils.StreamFingerprint(url),
		Source:      source,
		Index:       index,
	}
	entry.HintWidth, entry.HintHeight = resolutionHint(entry.Name)
	return entry
}

// entryName prefers the tvg-name attribute and falls back to the text after
// the comma once all key="value" pairs are stripped.
func entryName(infoLine string) string {
	matches := attributeRegex.FindAllStringSubmatch(infoLine, -1)
	lineWithoutPairs := infoLine

	name := ""
	for _, match := range matches {
		if strings.EqualFold(strings.TrimSpace(match[1]), "tvg-name") {
			name = strings.TrimSpace(match[2])
		}
		lineWithoutPairs = strings.Replace(lineWithoutPairs, match[0], "", 1)
	}
	if name != "" {
		return name
	}

	if commaSplit := strings.SplitN(lineWithoutPairs, ",", 2); len(commaSplit) > 1 {
		if tail := strings.TrimSpace(commaSplit[1]); tail != "" {
			return tail
		}
	}
	return "Unknown"
}

// resolutionHint guesses dimensions from a display name such as
// "TF1 (720p)" or "Arte 1920x1080". Probing later replaces the guess with
// the stream's real dimensions.
func resolutionHint(name string) (width, height int) {
	if m := dimensionsRegex.FindStringSubmatch(name); m != nil {
		width, _ = strconv.Atoi(m[1])
		height, _ = strconv.Atoi(m[2])
		return width, height
	}
	if m := qualityTagRegex.FindStringSubmatch(name); m != nil {
		height, _ = strconv.Atoi(m[1])
		return height * 16 / 9, height
	}
	return 0, 0
}

// ParseAll parses every fetched source in order, assigning global discovery
// indexes. Sources that failed to download contribute nothing.
func ParseAll(results []*SourceResult) []*StreamEntry {
	var entries []*StreamEntry
	for _, res := range results {
		if res.Err != nil || res.Text == "" {
			continue
		}
		parsed := Parse(res.Text, res.Source.Label, len(entries))
		entries = append(entries, parsed...)
		logger.Default.Logf("Source %s: %d streams", res.Source.Label, len(parsed))
	}
	return entries
}

// SourceLabel derives a human label from a playlist URL, falling back to a
// positional name when the URL has no usable path segment.
func SourceLabel(rawURL string, position int) string {
	parts := strings.Split(rawURL, "/")
	if len(parts) >= 2 {
		if seg := parts[len(parts)-2]; seg != "" {
			return seg
		}
	}
	return fmt.Sprintf("Source_%d", position)
}
