// Package arr talks to the Radarr and Sonarr v3 APIs.
package arr

// Identity is what a file resolves to in the organizer's catalog.
// The zero value is Unresolved.
type Identity struct {
	EntityID   int64  `json:"entity_id"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
	HasEpisode bool   `json:"has_episode,omitempty"` // Season and Episode are meaningful (series only)
	Title      string `json:"title,omitempty"`       // entity title when the organizer reported one
}

// Unresolved is the "not found" identity.
var Unresolved = Identity{}

// Resolved reports whether the identity names an entity in the organizer's
// library. Lookup results for titles the organizer does not manage carry id 0.
func (i Identity) Resolved() bool {
	return i.EntityID > 0
}

// LookupItem is one entry of /api/v3/{movie,series}/lookup.
type LookupItem struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	TMDBID int64  `json:"tmdbId,omitempty"`
	TVDBID int64  `json:"tvdbId,omitempty"`
	IMDBID string `json:"imdbId,omitempty"`
}

// ParsedEntity is the movie or series block of a parse response.
type ParsedEntity struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ParsedEpisodeInfo is Sonarr's structured episode info.
type ParsedEpisodeInfo struct {
	SeasonNumber   *int  `json:"seasonNumber"`
	EpisodeNumbers []int `json:"episodeNumbers"`
}

// ParseResult is the response of /api/v3/parse.
type ParseResult struct {
	Title             string             `json:"title"`
	Movie             *ParsedEntity      `json:"movie,omitempty"`
	Series            *ParsedEntity      `json:"series,omitempty"`
	ParsedEpisodeInfo *ParsedEpisodeInfo `json:"parsedEpisodeInfo,omitempty"`
}

// RenameCandidate is one file the organizer proposes to rename.
type RenameCandidate struct {
	ExistingPath   string `json:"existingPath,omitempty"`
	NewPath        string `json:"newPath"`
	EpisodeNumbers []int  `json:"episodeNumbers,omitempty"`
	SeasonNumber   int    `json:"seasonNumber,omitempty"`
}

// EpisodeNumber returns the first listed episode number.
func (c RenameCandidate) EpisodeNumber() (int, bool) {
	if len(c.EpisodeNumbers) == 0 {
		return 0, false
	}
	return c.EpisodeNumbers[0], true
}

// Command is a body for POST /api/v3/command.
type Command struct {
	Name     string  `json:"name"`
	MovieIDs []int64 `json:"movieIds,omitempty"`
	SeriesID int64   `json:"seriesId,omitempty"`
}

// CommandStatus is the organizer's acknowledgement of a queued command.
type CommandStatus struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
