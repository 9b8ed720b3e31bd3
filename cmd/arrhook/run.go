package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrhook/internal/plugin"
)

// jobOutcome is one job's result or error.
type jobOutcome struct {
	Job    plugin.Job
	Result plugin.Result
	Err    error
}

// runJobs runs newPlugin over jobs, at most concurrency at a time. Every
// job runs even when another fails; jobs share no state.
func runJobs(ctx context.Context, a *app, newPlugin pluginFactory, jobs []plugin.Job, concurrency int) []jobOutcome {
	if concurrency < 1 {
		concurrency = 1
	}
	outcomes := make([]jobOutcome, len(jobs))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			runID := uuid.NewString()
			p := newPlugin(a.log.With("run_id", runID))
			log := a.log.With("run_id", runID, "plugin", p.Name())

			res, err := p.Run(ctx, job)
			if err != nil {
				log.Error("job failed", "file", job.Current(), "error", err)
			}
			a.record(ctx, log, runID, p.Name(), job, res, err)
			outcomes[i] = jobOutcome{Job: job, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// outcomeError folds job outcomes into the command error: any failure
// wins, then any not-found job.
func outcomeError(outcomes []jobOutcome) error {
	var errs []error
	notFound := false
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", o.Job.Current(), o.Err))
		case o.Result.Output == plugin.OutputNotFound:
			notFound = true
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if notFound {
		return errNotFound
	}
	return nil
}

// collectJobs builds the job list from a batch file or positional args.
func collectJobs(file string, args []string) ([]plugin.Job, error) {
	if file != "" {
		jobs, err := readJobFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		return jobs, nil
	}
	job := plugin.Job{OriginalFile: args[0]}
	if len(args) > 1 {
		job.CurrentFile = args[1]
	}
	return []plugin.Job{job}, nil
}

// readJobFile reads jobs from a file, one per line: "original" or
// "original<TAB>current". Blank lines and # comments are skipped.
func readJobFile(path string) ([]plugin.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var jobs []plugin.Job
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		original, current, _ := strings.Cut(line, "\t")
		jobs = append(jobs, plugin.Job{
			OriginalFile: strings.TrimSpace(original),
			CurrentFile:  strings.TrimSpace(current),
		})
	}
	return jobs, scanner.Err()
}

// printOutcomes writes results as JSON (object for one, array for many) or
// one line per job.
func printOutcomes(w io.Writer, outcomes []jobOutcome) error {
	if jsonOutput {
		results := make([]plugin.Result, 0, len(outcomes))
		for _, o := range outcomes {
			if o.Err == nil {
				results = append(results, o.Result)
			}
		}
		if len(results) == 1 {
			return writeJSON(w, results[0])
		}
		return writeJSON(w, results)
	}

	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "%-9s %s: %v\n", "error", o.Job.Current(), o.Err)
		case o.Result.Renamed:
			fmt.Fprintf(w, "%-9s %s -> %s\n", o.Result.Output, o.Job.Current(), o.Result.File)
		default:
			fmt.Fprintf(w, "%-9s %s\n", o.Result.Output, o.Result.File)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
