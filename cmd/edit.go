package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var editCmd = &cobra.Command{
	Use:   "edit SECTION:N TEXT...",
	Short: "Replace the text of a task",
	Long: `Replaces the text of a single task. Its completion state and date are kept.
Remaining arguments are joined with spaces to form the new text.`,
	Args: cobra.MinimumNArgs(2), //nolint:mnd // reference and text
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}

	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	l, before, err := doc.Edit(ref, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}

	at := locRef(ref.Section, l.Number)
	logActivity(cfg, "edit", at, before+" -> "+l.Task.Text)

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, map[string]any{
			"action":  "edit",
			"section": ref.Section,
			"number":  l.Number,
			"before":  before,
			"task":    l.Task,
		})
	}
	output.Messagef(w, "Edited (%s):", at)
	output.Messagef(w, "  Before: %s", before)
	output.Messagef(w, "  After:  %s", l.Task.Text)
	return nil
}
