// Package channel groups stream entries into logical channels, bounds how
// many candidates each channel keeps, and picks the best working stream per
// channel once probing is done.
package channel

import (
	"regexp"
	"strings"
)

var (
	qualityTagRegex     = regexp.MustCompile(`\s*\(\d+p\)`)
	bracketTagRegex     = regexp.MustCompile(`\s*\[.*?\]`)
	braceTagRegex       = regexp.MustCompile(`\s*\{.*?\}`)
	leadingBracketRegex = regexp.MustCompile(`^\[.*?\]\s*`)
	leadingPipeRegex    = regexp.MustCompile(`^\|.*?\|\s*`)
	whitespaceRegex     = regexp.MustCompile(`\s+`)
)

// Normalize reduces a display name to its grouping key: quality tags and
// bracketed qualifiers go, whitespace collapses, case folds. "TF1 HD [FR]"
// and "tf1 hd" group together.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	name = qualityTagRegex.ReplaceAllString(name, "")
	name = bracketTagRegex.ReplaceAllString(name, "")
	name = braceTagRegex.ReplaceAllString(name, "")
	name = leadingBracketRegex.ReplaceAllString(name, "")
	name = leadingPipeRegex.ReplaceAllString(name, "")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return strings.ToLower(strings.TrimSpace(name))
}

// directoryKey prepares a name for alias-table matching. Unlike Normalize it
// keeps case and bracketed suffixes: the alias tables enumerate variants
// like "TF1 [FR]" verbatim, matching is case-insensitive anyway.
func directoryKey(name string) string {
	name = strings.TrimSpace(name)
	name = qualityTagRegex.ReplaceAllString(name, "")
	name = braceTagRegex.ReplaceAllString(name, "")
	name = leadingBracketRegex.ReplaceAllString(name, "")
	name = leadingPipeRegex.ReplaceAllString(name, "")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
