package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/arrhook/internal/arr"
)

// Notifier asks the organizer to refresh the entity a file belongs to, so it
// picks up changes made outside its control.
type Notifier struct {
	backend   *arr.Backend
	resolver  Resolver
	refresher Refresher
	log       *slog.Logger
}

// NewNotifier creates the notify plugin.
func NewNotifier(b *arr.Backend, resolver Resolver, refresher Refresher, opts ...Option) *Notifier {
	o := buildOptions(opts)
	return &Notifier{
		backend:   b,
		resolver:  resolver,
		refresher: refresher,
		log:       o.log.With("plugin", NameNotify),
	}
}

// Name returns the plugin name.
func (n *Notifier) Name() string {
	return NameNotify
}

// TriggerRefresh queues a refresh for id. It reports whether a command was
// sent; the organizer processes it asynchronously and is not waited on.
func (n *Notifier) TriggerRefresh(ctx context.Context, id arr.Identity) (bool, error) {
	if !id.Resolved() {
		return false, nil
	}
	cmd := n.backend.RefreshCommand(id.EntityID)
	status, err := n.refresher.Command(ctx, cmd)
	if err != nil {
		return false, err
	}
	attrs := []any{"command", cmd.Name, "entity_id", id.EntityID}
	if status != nil && status.ID != 0 {
		attrs = append(attrs, "command_id", status.ID, "status", status.Status)
	}
	n.log.Info("refresh queued", attrs...)
	return true, nil
}

// Run resolves the job and triggers a refresh when the file is known.
func (n *Notifier) Run(ctx context.Context, job Job) (Result, error) {
	current := job.Current()
	result := Result{Plugin: NameNotify, Output: OutputNotFound, File: current}

	n.log.Info("notifying organizer", "arr", n.backend.Kind.String(), "file", current)

	id, err := n.resolver.ResolveFile(ctx, job.OriginalFile, current)
	if err != nil {
		return result, fmt.Errorf("resolve identity: %w", err)
	}
	result.Identity = id

	sent, err := n.TriggerRefresh(ctx, id)
	if err != nil {
		return result, fmt.Errorf("trigger refresh: %w", err)
	}
	if !sent {
		n.log.Info("file not known to organizer", "arr", n.backend.Kind.String(), "file", current)
		return result, nil
	}

	n.log.Info("organizer refreshed", "entity", n.backend.Noun, "entity_id", id.EntityID)
	result.Output = OutputActed
	return result, nil
}
