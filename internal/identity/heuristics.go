package identity

import (
	"context"

	"github.com/vmunix/arrhook/internal/arr"
	"github.com/vmunix/arrhook/pkg/filename"
)

// tagLookup resolves a {tmdb-N}, {tvdb-N} or IMDB tag via the lookup endpoint.
func (r *Resolver) tagLookup(ctx context.Context, fileName string) (arr.Identity, bool, error) {
	tag := filename.ExtractTag(fileName)
	if !tag.Found() {
		r.log.Debug("no database tag", "file", filename.Base(fileName))
		return arr.Unresolved, false, nil
	}

	r.log.Info("database tag found",
		"file", filename.Base(fileName),
		"scheme", string(tag.Scheme),
		"value", tag.Value)

	items, err := r.org.Lookup(ctx, tag.Term())
	if err != nil {
		return arr.Unresolved, true, err
	}

	id := r.backend.IdentityFromLookup(items, fileName)
	r.log.Info("lookup result",
		"entity", r.backend.Noun,
		"term", tag.Term(),
		"found", id.Resolved(),
		"entity_id", id.EntityID,
		"season", id.Season,
		"episode", id.Episode,
		"has_episode", id.HasEpisode)
	return id, true, nil
}

// titleParse normalizes the file's stem and resolves it via the parse endpoint.
func (r *Resolver) titleParse(ctx context.Context, fileName string) (arr.Identity, bool, error) {
	stem := filename.Stem(fileName)
	title := filename.NormalizeTitle(stem)
	if title != stem {
		r.log.Info("title normalized", "stem", stem, "title", title)
	}

	result, err := r.org.Parse(ctx, title)
	if err != nil {
		return arr.Unresolved, true, err
	}

	id := r.backend.IdentityFromParse(result)
	attrs := []any{
		"entity", r.backend.Noun,
		"title", title,
		"found", id.Resolved(),
		"entity_id", id.EntityID,
	}
	if id.HasEpisode {
		attrs = append(attrs, "season", id.Season, "episode", id.Episode)
	}
	if id.Resolved() && id.Title != "" {
		attrs = append(attrs, "match_score", filename.Similarity(title, id.Title))
	}
	r.log.Info("parse result", attrs...)
	return id, true, nil
}
