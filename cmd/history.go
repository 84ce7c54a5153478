package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/activity"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent changes from the activity log",
	Long: `Lists the most recent mutations recorded in the activity log, oldest first.
The log lives next to the config file and can be disabled with
"mdtodo config set activity_log false".`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", defaultHistoryLimit, "number of entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := activity.Read(cfg.Dir())
	if err != nil {
		return err
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	w := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		if entries == nil {
			entries = []activity.Entry{}
		}
		return output.JSON(w, entries)
	case output.FormatCompact:
		output.HistoryCompact(w, entries)
	default:
		output.HistoryTable(w, entries)
	}
	return nil
}
