package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vmunix/arrhook/internal/arr"
	"github.com/vmunix/arrhook/internal/config"
	"github.com/vmunix/arrhook/internal/fileops"
	"github.com/vmunix/arrhook/internal/history"
	"github.com/vmunix/arrhook/internal/identity"
	"github.com/vmunix/arrhook/internal/plugin"
)

// app holds what every organizer-facing command needs.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	backend *arr.Backend
	client  *arr.Client
	history *history.Store // nil when the journal is disabled
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger. Logs go to w, never to the result
// stream.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig reads the config file, if any, and merges flag overrides. It
// does not validate: local commands need no organizer settings.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case errors.Is(err, config.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			path = found
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadWithoutValidation(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.Apply(config.Overrides{
		Kind:     arrKind,
		Host:     arrHost,
		APIKey:   arrAPIKey,
		LogLevel: logLevel,
	})
	return cfg, nil
}

// newApp validates the merged config and wires the organizer client.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: configPath, Errors: errs}
	}

	log := newLogger(logOut, cfg.Log.Level, cfg.Log.Format)

	kind, err := arr.ParseKind(cfg.Arr.Kind)
	if err != nil {
		return nil, err
	}
	backend, err := arr.NewBackend(kind, cfg.Arr.Host, cfg.Arr.APIKey)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		backend: backend,
	}
	clientOpts := []arr.Option{
		arr.WithTimeout(cfg.Arr.Timeout),
		arr.WithLogger(log),
		arr.WithLookupCache(cfg.Arr.CacheTTL),
		arr.WithRateLimit(cfg.Arr.RequestsPerSecond, 1),
	}
	if cfg.Arr.BreakerFailures > 0 {
		clientOpts = append(clientOpts, arr.WithCircuitBreaker(uint32(cfg.Arr.BreakerFailures), cfg.Arr.BreakerCooldown))
	}
	a.client = arr.NewClient(backend, clientOpts...)

	if cfg.History.Path != "" {
		store, err := history.Open(ctx, cfg.History.Path)
		if err != nil {
			return nil, err
		}
		a.history = store
	}
	return a, nil
}

func (a *app) Close() error {
	if a.history != nil {
		return a.history.Close()
	}
	return nil
}

// resolver builds an identity resolver logging to log.
func (a *app) resolver(log *slog.Logger, requireEpisode bool) *identity.Resolver {
	opts := []identity.Option{identity.WithLogger(log)}
	if requireEpisode {
		opts = append(opts, identity.RequireEpisode())
	}
	return identity.New(a.backend, a.client, opts...)
}

// pluginFactory builds a plugin bound to a job logger.
type pluginFactory func(log *slog.Logger) plugin.Plugin

func (a *app) renamePlugin(dryRun bool) pluginFactory {
	return func(log *slog.Logger) plugin.Plugin {
		return plugin.NewNamingPolicy(a.backend,
			a.resolver(log, a.backend.Kind == arr.Series),
			a.client,
			fileops.NewMover(log),
			plugin.WithLogger(log),
			plugin.WithDryRun(dryRun))
	}
}

func (a *app) notifyPlugin() pluginFactory {
	return func(log *slog.Logger) plugin.Plugin {
		return plugin.NewNotifier(a.backend, a.resolver(log, false), a.client, plugin.WithLogger(log))
	}
}

// record journals one job. Journal failures are logged, not returned.
func (a *app) record(ctx context.Context, log *slog.Logger, runID, pluginName string, job plugin.Job, res plugin.Result, runErr error) {
	if a.history == nil {
		return
	}
	r := &history.Record{
		RunID:        runID,
		Plugin:       pluginName,
		Backend:      a.backend.Kind.String(),
		OriginalFile: job.OriginalFile,
		CurrentFile:  job.CurrentFile,
		EntityID:     res.Identity.EntityID,
		Season:       res.Identity.Season,
		Episode:      res.Identity.Episode,
	}
	if res.Renamed {
		r.NewPath = res.File
	}
	if runErr != nil {
		r.Error = runErr.Error()
	} else {
		r.Output = int(res.Output)
	}
	if err := a.history.Add(ctx, r); err != nil {
		log.Warn("failed to record history", "error", err)
	}
}

func requireArgs(args []string, file string, usage string) error {
	if file == "" && len(args) == 0 {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}
