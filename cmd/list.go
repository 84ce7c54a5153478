package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/board"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
	"github.com/twiced-technology-gmbh/mdtodo/internal/watcher"
)

var listCmd = &cobra.Command{
	Use:     "list [SECTION...]",
	Aliases: []string{"ls"},
	Short:   "List tasks by section",
	Long: `Lists every section with its tasks numbered from 1, the numbers used in
Section:number references. Pass section names to list only those sections.

Filters (--done, --open, --search) hide tasks but keep their numbers.
Use --watch to re-render whenever the TODO file changes. Press Ctrl+C to stop.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolP("watch", "w", false, "live-update the listing on file changes")
	listCmd.Flags().Bool("done", false, "show only completed tasks")
	listCmd.Flags().Bool("open", false, "show only open tasks")
	listCmd.Flags().StringP("search", "s", "", "show only tasks whose text contains this (case-insensitive)")
	listCmd.MarkFlagsMutuallyExclusive("done", "open")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	opts := board.FilterOptions{Sections: args}
	opts.Search, _ = cmd.Flags().GetString("search")
	if done, _ := cmd.Flags().GetBool("done"); done {
		opts.Done = &done
	}
	if open, _ := cmd.Flags().GetBool("open"); open {
		v := false
		opts.Done = &v
	}

	w := cmd.OutOrStdout()
	if err := renderList(w, opts); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); !watch {
		return nil
	}
	return watchList(w, opts)
}

func renderList(w io.Writer, opts board.FilterOptions) error {
	_, _, doc, err := loadDocument()
	if err != nil {
		return err
	}

	views, err := board.List(doc, opts)
	if err != nil {
		return err
	}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(w, views)
	case output.FormatCompact:
		output.SectionsCompact(w, views)
	default:
		output.SectionsTable(w, views)
	}
	return nil
}

func watchList(w io.Writer, opts board.FilterOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.TodoFile()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.New([]string{path}, func() {
		logger.Debug("document changed", "path", path)
		clearScreen(w)
		if renderErr := renderList(w, opts); renderErr != nil {
			logger.Warn("rendering list", "err", renderErr)
		}
	})
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer fw.Close()

	fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl+C to stop)")

	fw.Run(ctx, func(watchErr error) {
		logger.Warn("file watcher", "err", watchErr)
	})
	return nil
}

// clearScreen sends ANSI escape codes to clear the terminal and move the
// cursor to the top-left corner.
func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}
