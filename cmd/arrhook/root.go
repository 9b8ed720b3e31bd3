package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	arrKind    string
	arrHost    string
	arrAPIKey  string
	logLevel   string
	jsonOutput bool
)

// errNotFound marks a run where at least one job ended on the not-found
// output. It maps to exit status 2 and is not printed.
var errNotFound = errors.New("file not known to organizer")

var rootCmd = &cobra.Command{
	Use:   "arrhook",
	Short: "Radarr/Sonarr post-processing hooks",
	Long: `arrhook - post-processing hooks for Radarr and Sonarr

Resolves a media file to the movie or episode the organizer knows it as,
then either renames it to the organizer's naming policy (rename) or asks
the organizer to rescan it (notify).

Exit status: 0 when every job acted, 2 when a file was not known to the
organizer, 1 on error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status, printing it
// when it is a real failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotFound):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&arrKind, "arr", "", "Organizer kind: radarr or sonarr")
	rootCmd.PersistentFlags().StringVar(&arrHost, "arr-host", "", "Organizer base URL")
	rootCmd.PersistentFlags().StringVar(&arrAPIKey, "arr-api-key", "", "Organizer API key")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrhook {{.Version}}\n")
}
