package arr

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmunix/arrhook/pkg/filename"
)

// Kind selects movie (Radarr) or series (Sonarr) semantics.
type Kind int

const (
	Movie Kind = iota + 1
	Series
)

// ParseKind maps an arr name ("radarr", "sonarr") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radarr":
		return Movie, nil
	case "sonarr":
		return Series, nil
	default:
		return 0, fmt.Errorf("%w: %q (want radarr or sonarr)", ErrUnknownKind, s)
	}
}

// String returns the arr name for the kind.
func (k Kind) String() string {
	switch k {
	case Movie:
		return "radarr"
	case Series:
		return "sonarr"
	default:
		return "unknown"
	}
}

// Backend is the per-run organizer profile: where to reach it and how its
// movie or series responses map onto an Identity. Build one with NewBackend;
// it is not modified afterwards.
type Backend struct {
	Kind    Kind
	BaseURL string // no trailing slash
	APIKey  string
	Noun    string // "Movie" or "Series", for log lines

	resource       string
	fromLookup     func(items []LookupItem, fileName string) Identity
	fromParse      func(r *ParseResult) Identity
	renameQuery    func(id Identity) url.Values
	pickCandidate  func(candidates []RenameCandidate, id Identity) *RenameCandidate
	refreshCommand func(entityID int64) Command
}

// NewBackend builds the profile for kind. host is trimmed of whitespace and
// trailing slashes.
func NewBackend(kind Kind, host, apiKey string) (*Backend, error) {
	b := &Backend{
		Kind:    kind,
		BaseURL: strings.TrimRight(strings.TrimSpace(host), "/"),
		APIKey:  apiKey,
	}

	switch kind {
	case Movie:
		b.Noun = "Movie"
		b.resource = "movie"
		b.fromLookup = movieFromLookup
		b.fromParse = movieFromParse
		b.renameQuery = movieRenameQuery
		b.pickCandidate = firstCandidate
		b.refreshCommand = refreshMovie
	case Series:
		b.Noun = "Series"
		b.resource = "series"
		b.fromLookup = seriesFromLookup
		b.fromParse = seriesFromParse
		b.renameQuery = seriesRenameQuery
		b.pickCandidate = episodeCandidate
		b.refreshCommand = refreshSeries
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownKind, int(kind))
	}

	return b, nil
}

// LookupPath is the lookup endpoint for this backend.
func (b *Backend) LookupPath() string {
	return "/api/v3/" + b.resource + "/lookup"
}

// IdentityFromLookup maps a lookup response to an Identity. For series the
// season and episode come from fileName, not from the response.
func (b *Backend) IdentityFromLookup(items []LookupItem, fileName string) Identity {
	return b.fromLookup(items, fileName)
}

// IdentityFromParse maps a parse response to an Identity.
func (b *Backend) IdentityFromParse(r *ParseResult) Identity {
	if r == nil {
		return Unresolved
	}
	return b.fromParse(r)
}

// RenameQuery returns the query for the preview rename endpoint.
func (b *Backend) RenameQuery(id Identity) url.Values {
	return b.renameQuery(id)
}

// SelectCandidate picks the rename candidate for id, or nil.
func (b *Backend) SelectCandidate(candidates []RenameCandidate, id Identity) *RenameCandidate {
	return b.pickCandidate(candidates, id)
}

// RefreshCommand returns the refresh command for an entity.
func (b *Backend) RefreshCommand(entityID int64) Command {
	return b.refreshCommand(entityID)
}

// Movie (Radarr) capabilities

func movieFromLookup(items []LookupItem, _ string) Identity {
	if len(items) == 0 || items[0].ID <= 0 {
		return Unresolved
	}
	return Identity{EntityID: items[0].ID, Title: items[0].Title}
}

func movieFromParse(r *ParseResult) Identity {
	if r.Movie == nil || r.Movie.ID <= 0 {
		return Unresolved
	}
	return Identity{EntityID: r.Movie.ID, Title: r.Movie.Title}
}

func movieRenameQuery(id Identity) url.Values {
	return url.Values{"movieId": {strconv.FormatInt(id.EntityID, 10)}}
}

func firstCandidate(candidates []RenameCandidate, _ Identity) *RenameCandidate {
	if len(candidates) == 0 {
		return nil
	}
	c := candidates[0]
	return &c
}

func refreshMovie(entityID int64) Command {
	return Command{Name: "RefreshMovie", MovieIDs: []int64{entityID}}
}

// Series (Sonarr) capabilities

func seriesFromLookup(items []LookupItem, fileName string) Identity {
	if len(items) == 0 || items[0].ID <= 0 {
		return Unresolved
	}
	id := Identity{EntityID: items[0].ID, Title: items[0].Title}
	if season, episode, ok := filename.SeasonEpisode(fileName); ok {
		id.Season = season
		id.Episode = episode
		id.HasEpisode = true
	}
	return id
}

func seriesFromParse(r *ParseResult) Identity {
	if r.Series == nil || r.Series.ID <= 0 {
		return Unresolved
	}
	id := Identity{
		EntityID:   r.Series.ID,
		Title:      r.Series.Title,
		Season:     1,
		Episode:    1,
		HasEpisode: true,
	}
	if info := r.ParsedEpisodeInfo; info != nil {
		if info.SeasonNumber != nil {
			id.Season = *info.SeasonNumber
		}
		if len(info.EpisodeNumbers) > 0 {
			id.Episode = info.EpisodeNumbers[0]
		}
	}
	return id
}

func seriesRenameQuery(id Identity) url.Values {
	return url.Values{
		"seriesId":     {strconv.FormatInt(id.EntityID, 10)},
		"seasonNumber": {strconv.Itoa(id.Season)},
	}
}

func episodeCandidate(candidates []RenameCandidate, id Identity) *RenameCandidate {
	for _, c := range candidates {
		if n, ok := c.EpisodeNumber(); ok && n == id.Episode {
			return &c
		}
	}
	return nil
}

func refreshSeries(entityID int64) Command {
	return Command{Name: "RefreshSeries", SeriesID: entityID}
}
