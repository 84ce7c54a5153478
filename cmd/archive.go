package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/donelog"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

var archiveCmd = &cobra.Command{
	Use:   "archive SECTION:N[,N...] | SECTION:all",
	Short: "Move completed tasks to the done log",
	Long: `Removes completed tasks from the TODO document and records them in the
done log under their completion date and section. "Section:all" archives every
completed task of the section; explicit numbers must all be completed.`,
	Args: cobra.ExactArgs(1),
	RunE: runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}

	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}
	donePath, err := cfg.DoneFile()
	if err != nil {
		return err
	}

	archived, err := doc.Archive(ref)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(archived) == 0 {
		if outputFormat() == output.FormatJSON {
			return output.JSON(w, output.Result{Action: "archive", Section: ref.Section, Tasks: archived})
		}
		output.Messagef(w, "No completed tasks to archive in section '%s'", ref.Section)
		return nil
	}

	// Done log first: a failed log write must leave the tasks in the document.
	stored := doc.Section(ref.Section).Name
	tasks := make([]*task.Task, len(archived))
	for i, l := range archived {
		tasks[i] = l.Task
	}
	logger.Debug("appending to done log", "path", donePath, "section", stored, "tasks", len(tasks))
	if err := donelog.Append(donePath, stored, tasks); err != nil {
		return fmt.Errorf("writing done log: %w", err)
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}

	for _, l := range archived {
		logActivity(cfg, "archive", locRef(ref.Section, l.Number), l.Task.Text)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(w, output.Result{Action: "archive", Section: ref.Section, Tasks: archived, Target: donePath})
	}
	logName := filepath.Base(donePath)
	for _, l := range archived {
		output.Messagef(w, "Archived: %s (%s -> %s § %s / %s)",
			l.Task.Text, locRef(ref.Section, l.Number), logName, l.Task.ArchiveDate(), stored)
	}
	return nil
}
