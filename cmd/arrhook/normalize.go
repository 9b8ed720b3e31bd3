package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhook/pkg/filename"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <stem>...",
	Short: "Rewrite trailing-article titles (local, no server needed)",
	Long: `Show the title the parse fallback would send to the organizer.

Examples:
  arrhook normalize "Matrix, The (1999)"
  arrhook normalize --json "Office, The S02E01"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalizeCmd,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

type normalizeOutput struct {
	Input string `json:"input"`
	Title string `json:"title"`
}

func runNormalizeCmd(cmd *cobra.Command, args []string) error {
	results := make([]normalizeOutput, 0, len(args))
	for _, arg := range args {
		results = append(results, normalizeOutput{
			Input: arg,
			Title: filename.NormalizeTitle(filename.Stem(arg)),
		})
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		if len(results) == 1 {
			return writeJSON(w, results[0])
		}
		return writeJSON(w, results)
	}
	for _, r := range results {
		fmt.Fprintln(w, r.Title)
	}
	return nil
}
