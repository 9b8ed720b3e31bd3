package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhook/internal/arr"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <original-file> [current-file]",
	Short: "Show which movie or episode the organizer knows a file as",
	Long: `Run identification only: no rename, no refresh.

Examples:
  arrhook resolve "/movies/Interstellar (2014) {tmdb-157336}.mkv"
  arrhook --arr sonarr resolve --require-episode "/tv/Show {tvdb-121361} S03E12.mkv"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolveCmd,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Bool("require-episode", false, "Series only: keep trying until season and episode are known")
}

// resolveOutput is the JSON form of a resolve.
type resolveOutput struct {
	File     string       `json:"file"`
	Arr      string       `json:"arr"`
	Resolved bool         `json:"resolved"`
	Identity arr.Identity `json:"identity"`
}

func runResolveCmd(cmd *cobra.Command, args []string) error {
	requireEpisode, _ := cmd.Flags().GetBool("require-episode")
	original, current := args[0], ""
	if len(args) > 1 {
		current = args[1]
	}

	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	id, err := a.resolver(a.log, requireEpisode).ResolveFile(cmd.Context(), original, current)
	if err != nil {
		return err
	}

	out := resolveOutput{
		File:     original,
		Arr:      a.backend.Kind.String(),
		Resolved: id.Resolved(),
		Identity: id,
	}
	w := cmd.OutOrStdout()
	if jsonOutput {
		if err := writeJSON(w, out); err != nil {
			return err
		}
	} else {
		printIdentity(w, a.backend, out)
	}

	if !id.Resolved() {
		return errNotFound
	}
	return nil
}

func printIdentity(w io.Writer, b *arr.Backend, out resolveOutput) {
	if !out.Resolved {
		fmt.Fprintf(w, "%s: not known to %s\n", out.File, out.Arr)
		return
	}
	fmt.Fprintf(w, "%s: %s %d", out.File, b.Noun, out.Identity.EntityID)
	if out.Identity.Title != "" {
		fmt.Fprintf(w, " (%s)", out.Identity.Title)
	}
	if out.Identity.HasEpisode {
		fmt.Fprintf(w, " S%02dE%02d", out.Identity.Season, out.Identity.Episode)
	}
	fmt.Fprintln(w)
}
