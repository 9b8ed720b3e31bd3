package main

import (
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename [flags] <original-file> [current-file]",
	Short: "Rename a file to the organizer's naming policy",
	Long: `Resolve a file to its movie or episode and move it to the name the
organizer's rename preview proposes, in the same directory.

current-file is where the file is now when an earlier step already moved
it; identification tries original-file first.

Examples:
  arrhook rename "/movies/Interstellar (2014) {tmdb-157336}.mkv"
  arrhook --arr sonarr rename --dry-run "/tv/Show/show.s01e02.mkv"
  arrhook rename --file jobs.txt --concurrency 4 --json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRenameCmd,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().Bool("dry-run", false, "Log the planned move without moving")
	renameCmd.Flags().StringP("file", "f", "", "Read jobs from file (original[<TAB>current] per line)")
	renameCmd.Flags().Int("concurrency", 1, "Jobs to run in parallel")
}

func runRenameCmd(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	inputFile, _ := cmd.Flags().GetString("file")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	if err := requireArgs(args, inputFile, "arrhook rename <original-file> [current-file] or arrhook rename --file <filename>"); err != nil {
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

	outcomes := runJobs(cmd.Context(), a, a.renamePlugin(dryRun), jobs, concurrency)
	if err := printOutcomes(cmd.OutOrStdout(), outcomes); err != nil {
		return err
	}
	return outcomeError(outcomes)
}
