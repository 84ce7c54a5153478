package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/board"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"stats"},
	Short:   "Show task counts per section",
	Long:    `Displays the number of total, completed and open tasks in each section.`,
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	_, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	summary := board.Summary(doc, path)

	w := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(w, summary)
	case output.FormatCompact:
		output.OverviewCompact(w, summary)
	default:
		output.OverviewTable(w, summary)
	}
	return nil
}
