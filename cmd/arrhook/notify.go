package main

import (
	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify [flags] <original-file> [current-file]",
	Short: "Ask the organizer to refresh the file's movie or series",
	Long: `Resolve a file to its movie or series and queue a refresh so the
organizer picks up changes made outside its control. The refresh is not
waited on.

Examples:
  arrhook notify "/movies/Interstellar (2014) {tmdb-157336}.mkv"
  arrhook --arr sonarr notify --file jobs.txt`,
	Args: cobra.MaximumNArgs(2),
	RunE: runNotifyCmd,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().StringP("file", "f", "", "Read jobs from file (original[<TAB>current] per line)")
	notifyCmd.Flags().Int("concurrency", 1, "Jobs to run in parallel")
}

func runNotifyCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	if err := requireArgs(args, inputFile, "arrhook notify <original-file> [current-file] or arrhook notify --file <filename>"); err != nil {
		return err
	}
	jobs, err := collectJobs(inputFile, args)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	outcomes := runJobs(cmd.Context(), a, a.notifyPlugin(), jobs, concurrency)
	if err := printOutcomes(cmd.OutOrStdout(), outcomes); err != nil {
		return err
	}
	return outcomeError(outcomes)
}
