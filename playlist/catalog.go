package playlist

import (
	"fmt"
	"strings"
)

// Built-in source catalog. Community playlists come and go, so the catalog
// favors the iptv-org mirrors, which are regenerated daily.
var (
	allSources = []string{
		"https://iptv-org.github.io/iptv/countries/fr.m3u",
		"https://iptv-org.github.io/iptv/countries/us.m3u",
		"https://iptv-org.github.io/iptv/countries/gb.m3u",
		"https://iptv-org.github.io/iptv/countries/de.m3u",
		"https://iptv-org.github.io/iptv/countries/es.m3u",
		"https://iptv-org.github.io/iptv/countries/it.m3u",
		"https://raw.githubusercontent.com/ipstreet312/freeiptv/refs/heads/master/all.m3u",
	}

	frenchSources = []string{
		"https://iptv-org.github.io/iptv/countries/fr.m3u",
		"https://raw.githubusercontent.com/ipstreet312/freeiptv/refs/heads/master/all.m3u",
		"https://raw.githubusercontent.com/Paradise-91/ParaTV/refs/heads/main/playlists/paratv/main/paratv-highest.m3us",
	}

	englishSources = []string{
		"https://iptv-org.github.io/iptv/countries/us.m3u",
		"https://iptv-org.github.io/iptv/countries/gb.m3u",
		"https://iptv-org.github.io/iptv/countries/ca.m3u",
		"https://iptv-org.github.io/iptv/countries/au.m3u",
	}

	europeanSources = []string{
		"https://iptv-org.github.io/iptv/countries/fr.m3u",
		"https://iptv-org.github.io/iptv/countries/de.m3u",
		"https://iptv-org.github.io/iptv/countries/es.m3u",
		"https://iptv-org.github.io/iptv/countries/it.m3u",
		"https://iptv-org.github.io/iptv/countries/nl.m3u",
		"https://iptv-org.github.io/iptv/countries/be.m3u",
		"https://iptv-org.github.io/iptv/countries/ch.m3u",
	}

	newsSources   = []string{"https://iptv-org.github.io/iptv/categories/news.m3u"}
	sportsSources = []string{"https://iptv-org.github.io/iptv/categories/sports.m3u"}
	moviesSources = []string{"https://iptv-org.github.io/iptv/categories/movies.m3u"}
	kidsSources   = []string{"https://iptv-org.github.io/iptv/categories/kids.m3u"}
)

var catalog = map[string][]string{
	"all":      allSources,
	"french":   frenchSources,
	"english":  englishSources,
	"european": europeanSources,
	"news":     newsSources,
	"sports":   sportsSources,
	"movies":   moviesSources,
	"kids":     kidsSources,
}

// Categories lists the catalog categories in display order.
func Categories() []string {
	return []string{"all", "french", "english", "european", "news", "sports", "movies", "kids"}
}

// SourcesByCategory returns the catalog URLs for a category, defaulting to
// the full catalog when the category is unknown.
func SourcesByCategory(category string) []Source {
	urls, ok := catalog[strings.ToLower(category)]
	if !ok {
		urls = allSources
	}
	return MakeSources(urls)
}

// MakeSources labels a list of playlist URLs.
func MakeSources(urls []string) []Source {
	sources := make([]Source, 0, len(urls))
	for i, u := range urls {
		sources = append(sources, Source{Label: SourceLabel(u, i+1), URL: u})
	}
	return sources
}

// CategoryUsage renders the catalog for the sources command.
func CategoryUsage() string {
	out := ""
	for _, cat := range Categories() {
		out += fmt.Sprintf("%s:\n", cat)
		for i, u := range catalog[cat] {
			out += fmt.Sprintf("  %d. %s\n", i+1, u)
		}
	}
	return out
}
