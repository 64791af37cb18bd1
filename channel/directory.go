package channel

import "strings"

// DirectoryChannel is one canonical channel and the real-world labels it
// shows up under in public playlists.
type DirectoryChannel struct {
	Name     string
	Variants []string
}

// Directory is a closed set of target channels. Matching is an exact,
// case-insensitive lookup against the enumerated variants; names outside
// the set are not channels the directory knows, no fuzzy matching is done.
type Directory struct {
	names   []string
	rank    map[string]int
	aliases map[string]string
}

// NewDirectory builds the lookup tables once. Channel order is preserved
// and becomes the output order of the final playlist.
func NewDirectory(channels []DirectoryChannel) *Directory {
	d := &Directory{
		names:   make([]string, 0, len(channels)),
		rank:    make(map[string]int, len(channels)),
		aliases: make(map[string]string),
	}
	for i, ch := range channels {
		d.names = append(d.names, ch.Name)
		d.rank[ch.Name] = i
		for _, variant := range ch.Variants {
			// Variants go through the same key reduction as lookups, so a
			// variant enumerated with a quality tag still matches.
			d.aliases[strings.ToLower(directoryKey(variant))] = ch.Name
		}
	}
	return d
}

// Match resolves a raw display name to its canonical channel name. The
// second return is false when the name is not a known variant.
func (d *Directory) Match(rawName string) (string, bool) {
	canonical, ok := d.aliases[strings.ToLower(directoryKey(rawName))]
	return canonical, ok
}

// Rank returns the canonical channel's position in directory order, or the
// directory length for unknown names so they sort last.
func (d *Directory) Rank(canonical string) int {
	if r, ok := d.rank[canonical]; ok {
		return r
	}
	return len(d.names)
}

// Names lists the canonical channels in directory order.
func (d *Directory) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d *Directory) Len() int {
	return len(d.names)
}

// Missing returns the directory channels absent from found, in directory
// order. Run reports use it to show which target channels have no working
// stream.
func (d *Directory) Missing(found map[string]bool) []string {
	var missing []string
	for _, name := range d.names {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
