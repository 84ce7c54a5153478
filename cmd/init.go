package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
	"github.com/twiced-technology-gmbh/mdtodo/internal/document"
	"github.com/twiced-technology-gmbh/mdtodo/internal/fsutil"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a TODO document with the default sections",
	Long: `Writes a new TODO document with the sections Today, Next, Backlogs, Someday,
Waiting and Inbox. Fails if the document already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.TodoFile()
	if err != nil {
		return err
	}
	name := filepath.Base(path)

	if fsutil.Exists(path) {
		return clierr.Newf(clierr.AlreadyExists, "%s already exists at %s", name, path).
			WithDetails(map[string]any{"path": path})
	}

	if err := fsutil.WriteFile(path, document.Template); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	logActivity(cfg, "init", "", path)

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, map[string]any{
			"status":   "initialized",
			"path":     path,
			"sections": document.DefaultSections,
		})
	}
	output.Messagef(w, "Initialized %s at %s", name, path)
	return nil
}
