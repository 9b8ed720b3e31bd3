package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhook/pkg/filename"
)

var tagCmd = &cobra.Command{
	Use:   "tag <file>...",
	Short: "Show the database tag and episode marker in a file name (local)",
	Long: `Print what identification would extract from each file name: the
highest-priority database tag (tmdb, tvdb, imdb) and any SxxEyy marker.

Examples:
  arrhook tag "Interstellar (2014) {tmdb-157336}.mkv"
  arrhook tag --json "/tv/Show {tvdb-121361} S03E12.mkv"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTagCmd,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

type tagOutput struct {
	File    string `json:"file"`
	Scheme  string `json:"scheme,omitempty"`
	Value   string `json:"value,omitempty"`
	Term    string `json:"term,omitempty"`
	Season  int    `json:"season,omitempty"`
	Episode int    `json:"episode,omitempty"`
}

func runTagCmd(cmd *cobra.Command, args []string) error {
	results := make([]tagOutput, 0, len(args))
	for _, arg := range args {
		out := tagOutput{File: arg}
		if tag := filename.ExtractTag(arg); tag.Found() {
			out.Scheme = string(tag.Scheme)
			out.Value = tag.Value
			out.Term = tag.Term()
		}
		if season, episode, ok := filename.SeasonEpisode(arg); ok {
			out.Season, out.Episode = season, episode
		}
		results = append(results, out)
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		if len(results) == 1 {
			return writeJSON(w, results[0])
		}
		return writeJSON(w, results)
	}
	for _, r := range results {
		term := r.Term
		if term == "" {
			term = "-"
		}
		fmt.Fprintf(w, "%-24s", term)
		if r.Season > 0 || r.Episode > 0 {
			fmt.Fprintf(w, " S%02dE%02d", r.Season, r.Episode)
		}
		fmt.Fprintf(w, "  %s\n", r.File)
	}
	return nil
}
