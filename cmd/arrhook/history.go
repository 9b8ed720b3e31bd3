package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhook/internal/history"
	"github.com/vmunix/arrhook/internal/plugin"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled runs",
	Long: `List runs recorded in the history journal, most recent first.
The journal is enabled by setting [history] path in the config.

Examples:
  arrhook history --limit 20
  arrhook history --plugin rename --json`,
	Args: cobra.NoArgs,
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 50, "Maximum records to show (0 for all)")
	historyCmd.Flags().String("plugin", "", "Only show runs of this plugin (rename or notify)")
	historyCmd.Flags().String("run", "", "Only show the run with this ID")
}

var errHistoryDisabled = errors.New("history journal disabled: set [history] path in config")

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	pluginName, _ := cmd.Flags().GetString("plugin")
	runID, _ := cmd.Flags().GetString("run")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return errHistoryDisabled
	}

	store, err := history.Open(cmd.Context(), cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(cmd.Context(), history.Filter{Plugin: pluginName, RunID: runID, Limit: limit})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		if records == nil {
			records = []*history.Record{}
		}
		return writeJSON(w, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No history")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		output := plugin.Output(r.Output).String()
		if r.Error != "" {
			output = "error"
		}
		file := r.OriginalFile
		if r.NewPath != "" {
			file += " -> " + r.NewPath
		}
		entity := ""
		if r.EntityID > 0 {
			entity = fmt.Sprintf("%d", r.EntityID)
			if r.Season > 0 || r.Episode > 0 {
				entity += fmt.Sprintf(" S%02dE%02d", r.Season, r.Episode)
			}
		}
		rows = append(rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Plugin, r.Backend, output, entity, file,
		})
	}
	fmt.Fprintln(w, renderTable(w,
		[]string{"TIME", "PLUGIN", "ARR", "OUTPUT", "ENTITY", "FILE"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}))
	return nil
}
