// Package plugin implements the naming-policy and notify plugins that a host
// runs once per job.
package plugin

import (
	"context"
	"log/slog"

	"github.com/vmunix/arrhook/internal/arr"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Mover,Renamer,Refresher

// Plugin names.
const (
	NameRename = "rename"
	NameNotify = "notify"
)

// Output is the host output channel a run ends on.
type Output int

const (
	// OutputActed means the file was renamed (or needed no rename) or the
	// refresh was sent.
	OutputActed Output = 1
	// OutputNotFound means the organizer does not know the file.
	OutputNotFound Output = 2
)

func (o Output) String() string {
	switch o {
	case OutputActed:
		return "acted"
	case OutputNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Job is the host's view of the file being processed. OriginalFile is the
// path the job started with; CurrentFile is where the file is now, which
// differs when an earlier step renamed it.
type Job struct {
	OriginalFile string `json:"original_file"`
	CurrentFile  string `json:"current_file"`
}

// Current returns the active file, falling back to the original.
func (j Job) Current() string {
	if j.CurrentFile != "" {
		return j.CurrentFile
	}
	return j.OriginalFile
}

// Result is what a run hands back to the host.
type Result struct {
	Plugin   string       `json:"plugin"`
	Output   Output       `json:"output"`
	File     string       `json:"file"` // active file after the run
	Renamed  bool         `json:"renamed,omitempty"`
	Identity arr.Identity `json:"identity"`
}

// Plugin is one host-invokable routine.
type Plugin interface {
	Name() string
	Run(ctx context.Context, job Job) (Result, error)
}

// Resolver resolves a job's files to an identity.
type Resolver interface {
	ResolveFile(ctx context.Context, original, current string) (arr.Identity, error)
}

// Mover performs the physical file move.
type Mover interface {
	Move(src, dst string) error
}

// Renamer fetches the organizer's preview rename.
type Renamer interface {
	PreviewRename(ctx context.Context, id arr.Identity) ([]arr.RenameCandidate, error)
}

// Refresher queues organizer commands.
type Refresher interface {
	Command(ctx context.Context, cmd arr.Command) (*arr.CommandStatus, error)
}

type options struct {
	log    *slog.Logger
	dryRun bool
}

// Option configures a plugin.
type Option func(*options)

// WithLogger sets the job logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDryRun logs planned moves without performing them.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
