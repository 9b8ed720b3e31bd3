// Package filename extracts identity hints from media file names.
package filename

import "regexp"

// Scheme identifies the external database a tag refers to.
type Scheme string

const (
	SchemeNone Scheme = ""
	SchemeTMDB Scheme = "tmdb"
	SchemeTVDB Scheme = "tvdb"
	SchemeIMDB Scheme = "imdb"
)

// Tag is an external database identifier embedded in a file name.
type Tag struct {
	Scheme Scheme
	Value  string // digits for tmdb/tvdb, full token for imdb (e.g. "tt0133093")
}

// Found reports whether a tag was extracted.
func (t Tag) Found() bool {
	return t.Scheme != SchemeNone && t.Value != ""
}

// Term renders the tag as a lookup term, e.g. "tmdb:157336".
func (t Tag) Term() string {
	if !t.Found() {
		return ""
	}
	return string(t.Scheme) + ":" + t.Value
}

var (
	tmdbTag = regexp.MustCompile(`\{tmdb-(\d+)\}`)
	// Sonarr writes "{{tvdb-123}" with a stray brace; the pattern still matches it.
	tvdbTag = regexp.MustCompile(`\{tvdb-(\d+)\}`)
	imdbTag = regexp.MustCompile(`(?i)\b(?:tt|nm|co|ev|ch|ni)\d{7,10}\b`)
)

// ExtractTag finds an external database tag in the base name of path.
// Bracketed {tmdb-N} wins over {tvdb-N}; an IMDB-style token is only
// considered when neither is present.
func ExtractTag(path string) Tag {
	name := Base(path)

	if m := tmdbTag.FindStringSubmatch(name); m != nil {
		return Tag{Scheme: SchemeTMDB, Value: m[1]}
	}
	if m := tvdbTag.FindStringSubmatch(name); m != nil {
		return Tag{Scheme: SchemeTVDB, Value: m[1]}
	}
	if m := imdbTag.FindString(name); m != "" {
		return Tag{Scheme: SchemeIMDB, Value: m}
	}
	return Tag{}
}
