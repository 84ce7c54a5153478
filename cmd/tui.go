package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/tui"
	"github.com/twiced-technology-gmbh/mdtodo/internal/watcher"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"board"},
	Short:   "Open the interactive board",
	Long: `Opens a terminal board with one column per section. Navigate with h/j/k/l,
toggle completion with space, add with a, edit with e, move between sections
with m/M, delete with d and archive completed tasks of a section with A.
The board reloads when the file changes on disk.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := tui.NewBoard(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startTUIWatcher(ctx, model, p)

	_, err = p.Run()
	return err
}

func startTUIWatcher(ctx context.Context, model *tui.Board, p *tea.Program) {
	w, err := watcher.New(model.WatchPaths(), func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		logger.Debug("live reload disabled", "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(watchErr error) {
		p.Send(tui.WatchError(watchErr))
	})
}
