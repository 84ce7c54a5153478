package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/mdtodo/internal/config"
	"github.com/twiced-technology-gmbh/mdtodo/internal/fsutil"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

const defaultRenderWidth = 80

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the TODO document as formatted markdown",
	Long: `Renders the TODO document (or the done log with --done) as styled markdown
in the terminal. Use --raw to print the file unchanged.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().Bool("done", false, "show the done log instead of the TODO document")
	showCmd.Flags().Bool("raw", false, "print the markdown source without rendering")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	showDone, _ := cmd.Flags().GetBool("done")
	path, err := showPath(cfg, showDone)
	if err != nil {
		return err
	}

	content, exists, err := fsutil.ReadFile(path)
	if err != nil {
		return err
	}
	if !exists {
		logger.Warn("file does not exist", "path", path)
	}

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, map[string]any{"path": path, "exists": exists, "content": content})
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprint(w, content)
		return nil
	}

	rendered, err := renderMarkdown(content)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	fmt.Fprint(w, rendered)
	return nil
}

func showPath(cfg *config.Config, done bool) (string, error) {
	if done {
		return cfg.DoneFile()
	}
	return cfg.TodoFile()
}

// renderMarkdown renders content for the terminal, falling back to the
// plain "notty" style when colour is off or stdout is not a terminal.
func renderMarkdown(content string) (string, error) {
	width := defaultRenderWidth
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = min(w, 120) //nolint:mnd // cap line length for readability
		}
	}

	style := glamour.WithAutoStyle()
	if !interactive || flagNoColor || os.Getenv("NO_COLOR") != "" {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(content)
}
