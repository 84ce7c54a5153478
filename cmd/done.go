package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/config"
	"github.com/twiced-technology-gmbh/mdtodo/internal/date"
	"github.com/twiced-technology-gmbh/mdtodo/internal/document"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done SECTION:N[,N...]",
	Short: "Mark tasks as done",
	Long: `Marks the referenced tasks as completed and stamps them with today's date
in the configured timezone, or with --date. Tasks stay in place until archived.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var undoCmd = &cobra.Command{
	Use:   "undo SECTION:N[,N...]",
	Short: "Mark tasks as not done",
	Long:  `Reopens the referenced tasks and removes their completion dates.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUndo,
}

func init() {
	doneCmd.Flags().String("date", "", "completion date (YYYY-MM-DD) instead of today")
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}

	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	dateStr, _ := cmd.Flags().GetString("date")
	day, err := completionDate(cfg, dateStr)
	if err != nil {
		return err
	}

	done, err := doc.MarkDone(ref, day)
	if err != nil {
		return err
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}

	return reportLocated(cmd, cfg, "done", ref, done, "Marked as done")
}

func runUndo(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}

	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	undone, err := doc.MarkUndone(ref)
	if err != nil {
		return err
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}

	return reportLocated(cmd, cfg, "undo", ref, undone, "Marked as undone")
}

// completionDate validates an explicit --date or falls back to today in
// the configured timezone.
func completionDate(cfg *config.Config, explicit string) (string, error) {
	if explicit != "" {
		d, err := date.Parse(explicit)
		if err != nil {
			return "", task.ValidateDate("--date", explicit, err)
		}
		return d.String(), nil
	}

	clock, err := cfg.Clock()
	if err != nil {
		return "", err
	}
	return clock.Today().String(), nil
}

// reportLocated logs and prints one "<verb>: text (Section:N)" line per
// task, or a single JSON result.
func reportLocated(cmd *cobra.Command, cfg *config.Config, action string, ref document.Ref, tasks []document.Located, verb string) error {
	for _, l := range tasks {
		logActivity(cfg, action, locRef(ref.Section, l.Number), l.Task.Text)
	}

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, output.Result{Action: action, Section: ref.Section, Tasks: tasks})
	}
	for _, l := range tasks {
		output.Messagef(w, "%s: %s (%s)", verb, l.Task.Text, locRef(ref.Section, l.Number))
	}
	return nil
}

func locRef(section string, n int) string {
	return fmt.Sprintf("%s:%d", section, n)
}
