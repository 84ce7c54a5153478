package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var moveCmd = &cobra.Command{
	Use:     "move SECTION:N[,N...] DEST",
	Aliases: []string{"mv"},
	Short:   "Move tasks to another section",
	Long: `Removes the referenced tasks from their section and appends them, in
ascending order, to DEST. DEST is created when it does not exist.`,
	Args: cobra.ExactArgs(2), //nolint:mnd // reference and destination
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}
	dest := strings.TrimSpace(args[1])

	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	moved, err := doc.Move(ref, dest)
	if err != nil {
		return err
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}

	for _, l := range moved {
		logActivity(cfg, "move", locRef(ref.Section, l.Number), l.Task.Text+" -> "+dest)
	}

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, output.Result{Action: "move", Section: ref.Section, Tasks: moved, Target: dest})
	}
	for _, l := range moved {
		output.Messagef(w, "Moved: %s (%s -> %s)", l.Task.Text, locRef(ref.Section, l.Number), dest)
	}
	return nil
}
