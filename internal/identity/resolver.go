// Package identity resolves a media file to its entity in Radarr or Sonarr.
//
// Resolution tries an ordered list of heuristics against a single file name:
// an embedded database tag looked up by external id, then the organizer's
// free-text parser fed with a normalized title. The first heuristic that
// yields a complete identity wins. An unresolved identity is a normal
// outcome, not an error.
package identity

import (
	"context"
	"log/slog"

	"github.com/vmunix/arrhook/internal/arr"
)

//go:generate mockgen -destination=mocks/organizer.go -package=mocks . Organizer

// Organizer is the subset of the organizer API used for resolution.
type Organizer interface {
	Lookup(ctx context.Context, term string) ([]arr.LookupItem, error)
	Parse(ctx context.Context, title string) (*arr.ParseResult, error)
}

// heuristic tries to resolve a file name. attempted is false when the
// heuristic does not apply to the name (e.g. no tag present).
type heuristic struct {
	name    string
	resolve func(ctx context.Context, fileName string) (id arr.Identity, attempted bool, err error)
}

// Resolver resolves file names against one backend.
type Resolver struct {
	backend        *arr.Backend
	org            Organizer
	requireEpisode bool
	log            *slog.Logger
	heuristics     []heuristic
}

// Option configures a Resolver.
type Option func(*Resolver)

// RequireEpisode makes season and episode part of a complete series
// identity. Without it an entity id alone is enough.
func RequireEpisode() Option {
	return func(r *Resolver) {
		r.requireEpisode = true
	}
}

// WithLogger sets the logger for decision tracing.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a resolver for backend using org for requests.
func New(backend *arr.Backend, org Organizer, opts ...Option) *Resolver {
	r := &Resolver{
		backend: backend,
		org:     org,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("component", "identity")
	r.heuristics = []heuristic{
		{name: "tag lookup", resolve: r.tagLookup},
		{name: "title parse", resolve: r.titleParse},
	}
	return r
}

// Resolve runs the heuristics against fileName in order and returns the
// first complete identity. When none is complete, the result of the last
// heuristic that ran is returned, which may be arr.Unresolved.
func (r *Resolver) Resolve(ctx context.Context, fileName string) (arr.Identity, error) {
	result := arr.Unresolved
	for _, h := range r.heuristics {
		id, attempted, err := h.resolve(ctx, fileName)
		if err != nil {
			return arr.Unresolved, err
		}
		if !attempted {
			continue
		}
		result = id
		if r.complete(id) {
			return id, nil
		}
		r.log.Debug("heuristic incomplete, continuing",
			"heuristic", h.name,
			"resolved", id.Resolved(),
			"has_episode", id.HasEpisode)
	}
	return result, nil
}

// ResolveFile resolves the job's original file and, only when that fails
// and the file has since been renamed, its current file.
func (r *Resolver) ResolveFile(ctx context.Context, original, current string) (arr.Identity, error) {
	id, err := r.Resolve(ctx, original)
	if err != nil {
		return arr.Unresolved, err
	}
	if id.Resolved() || current == "" || current == original {
		return id, nil
	}

	r.log.Info("original file not resolved, trying current file",
		"original", original,
		"current", current)
	return r.Resolve(ctx, current)
}

func (r *Resolver) complete(id arr.Identity) bool {
	if !id.Resolved() {
		return false
	}
	if r.requireEpisode && r.backend.Kind == arr.Series {
		return id.HasEpisode
	}
	return true
}
