package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/vmunix/arrhook/internal/arr"
	"github.com/vmunix/arrhook/pkg/filename"
)

// NamingPolicy applies the organizer's naming policy to a file by moving it
// to the name the organizer's preview rename proposes.
type NamingPolicy struct {
	backend  *arr.Backend
	resolver Resolver
	renamer  Renamer
	mover    Mover
	dryRun   bool
	log      *slog.Logger
}

// NewNamingPolicy creates the naming-policy plugin.
func NewNamingPolicy(b *arr.Backend, resolver Resolver, renamer Renamer, mover Mover, opts ...Option) *NamingPolicy {
	o := buildOptions(opts)
	return &NamingPolicy{
		backend:  b,
		resolver: resolver,
		renamer:  renamer,
		mover:    mover,
		dryRun:   o.dryRun,
		log:      o.log.With("plugin", NameRename),
	}
}

// Name returns the plugin name.
func (p *NamingPolicy) Name() string {
	return NameRename
}

// PlanRename returns the candidate the organizer proposes for id, or nil
// when there is nothing to rename.
func (p *NamingPolicy) PlanRename(ctx context.Context, id arr.Identity) (*arr.RenameCandidate, error) {
	candidates, err := p.renamer.PreviewRename(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate := p.backend.SelectCandidate(candidates, id)
	p.log.Debug("preview rename",
		"entity_id", id.EntityID,
		"candidates", len(candidates),
		"selected", candidate != nil)
	return candidate, nil
}

// Destination places the candidate's file name next to the current file.
// The candidate's extension is used, or the current file's when the
// candidate has none.
func Destination(current string, c *arr.RenameCandidate) string {
	ext := filename.Container(c.NewPath)
	if ext == "" {
		ext = filename.Container(current)
	}
	name := filename.Stem(c.NewPath)
	if ext != "" {
		name += "." + ext
	}
	return filepath.Join(filepath.Dir(current), name)
}

// Run resolves the job and renames its current file if the organizer's
// naming differs.
func (p *NamingPolicy) Run(ctx context.Context, job Job) (Result, error) {
	current := job.Current()
	result := Result{Plugin: NameRename, Output: OutputNotFound, File: current}

	p.log.Info("applying naming policy", "arr", p.backend.Kind.String(), "file", current)

	id, err := p.resolver.ResolveFile(ctx, job.OriginalFile, current)
	if err != nil {
		return result, fmt.Errorf("resolve identity: %w", err)
	}
	result.Identity = id
	if !id.Resolved() {
		p.log.Info("file not known to organizer", "arr", p.backend.Kind.String(), "file", current)
		return result, nil
	}

	candidate, err := p.PlanRename(ctx, id)
	if err != nil {
		return result, fmt.Errorf("plan rename: %w", err)
	}
	result.Output = OutputActed
	if candidate == nil {
		p.log.Info("no rename necessary", "entity_id", id.EntityID)
		return result, nil
	}

	dest := Destination(current, candidate)
	if dest == current {
		p.log.Info("no rename necessary", "entity_id", id.EntityID, "file", current)
		return result, nil
	}

	if p.dryRun {
		p.log.Info("dry run: would move file", "source", current, "destination", dest)
		return result, nil
	}

	if err := p.mover.Move(current, dest); err != nil {
		return result, fmt.Errorf("move %s: %w", current, err)
	}

	p.log.Info("renamed file", "source", current, "destination", dest)
	result.File = dest
	result.Renamed = true
	return result, nil
}
