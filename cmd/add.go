package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/document"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add SECTION TEXT...",
	Short: "Add a task to a section",
	Long: `Appends an open task to the end of SECTION. The section is matched
case-insensitively and created at the end of the document when missing.
Remaining arguments are joined with spaces to form the task text.`,
	Args: cobra.MinimumNArgs(2), //nolint:mnd // section and text
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	section := strings.TrimSpace(args[0])
	l, err := doc.Add(section, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}
	logActivity(cfg, "add", section+":"+strconv.Itoa(l.Number), l.Task.Text)

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, output.Result{Action: "add", Section: section, Tasks: []document.Located{l}})
	}
	output.Messagef(w, "Added to %s: %s", section, l.Task.Text)
	return nil
}
