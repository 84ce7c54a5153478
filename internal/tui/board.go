// Package tui implements a terminal board for a TODO document: one column
// per section, one card per task.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/mdtodo/internal/activity"
	"github.com/twiced-technology-gmbh/mdtodo/internal/config"
	"github.com/twiced-technology-gmbh/mdtodo/internal/document"
	"github.com/twiced-technology-gmbh/mdtodo/internal/donelog"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

// view represents the current screen state.
type view int

const (
	viewBoard view = iota
	viewConfirmDelete
	viewInput
)

// inputMode selects what the text prompt does on enter.
type inputMode int

const (
	inputAdd inputMode = iota
	inputEdit
)

// Key and layout constants.
const (
	keyEsc   = "esc"
	keyEnter = "enter"

	boardChrome  = 2 // blank line + status bar below the column area
	errorChrome  = 1 // extra line when error toast is displayed
	maxTextLines = 3
	inputLimit   = 500
)

// Board is the top-level bubbletea model.
type Board struct {
	cfg       *config.Config
	todoPath  string
	donePath  string
	columns   []column
	activeCol int
	activeRow int
	view      view
	width     int
	height    int
	err       error
	notice    string

	input textinput.Model
	mode  inputMode

	// Task targeted by the delete confirmation or the edit prompt.
	target     document.Ref
	targetText string
}

// column holds the tasks of one section.
type column struct {
	name      string
	tasks     []*task.Task
	scrollOff int // first visible row index
}

// NewBoard creates a Board for the document configured in cfg.
func NewBoard(cfg *config.Config) (*Board, error) {
	todoPath, err := cfg.TodoFile()
	if err != nil {
		return nil, err
	}
	donePath, err := cfg.DoneFile()
	if err != nil {
		return nil, err
	}

	in := textinput.New()
	in.CharLimit = inputLimit

	b := &Board{cfg: cfg, todoPath: todoPath, donePath: donePath, input: in}
	b.load()
	return b, nil
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.input.Width = max(msg.Width-8, 10) //nolint:mnd // dialog chrome
		return b, nil
	case ReloadMsg:
		b.load()
		return b, nil
	case errMsg:
		b.err = msg.err
		return b, nil
	}

	if b.view == viewInput {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

// View implements tea.Model.
func (b *Board) View() string {
	if b.width == 0 {
		return "Loading..."
	}

	switch b.view {
	case viewConfirmDelete:
		return b.viewDeleteConfirm()
	case viewInput:
		return b.viewInput()
	default:
		return b.viewBoard()
	}
}

func (b *Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return b, tea.Quit
	}

	switch b.view {
	case viewBoard:
		return b.handleBoardKey(msg)
	case viewConfirmDelete:
		return b.handleDeleteKey(msg)
	case viewInput:
		return b.handleInputKey(msg)
	}

	return b, nil
}

func (b *Board) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b.notice = ""

	switch msg.String() {
	case "q", keyEsc:
		return b, tea.Quit
	case "h", "left":
		if b.activeCol > 0 {
			b.activeCol--
			b.clampRow()
		}
	case "l", "right":
		if b.activeCol < len(b.columns)-1 {
			b.activeCol++
			b.clampRow()
		}
	case "j", "down":
		col := b.currentColumn()
		if col != nil && b.activeRow < len(col.tasks)-1 {
			b.activeRow++
			b.ensureVisible()
		}
	case "k", "up":
		if b.activeRow > 0 {
			b.activeRow--
			b.ensureVisible()
		}
	case " ", "x":
		b.toggleSelected()
	case "m":
		b.moveSelected(1)
	case "M":
		b.moveSelected(-1)
	case "a":
		b.startInput(inputAdd, "")
	case "e":
		if t := b.selectedTask(); t != nil {
			b.target = b.selectedRef()
			b.startInput(inputEdit, t.Text)
		}
	case "d", "D":
		if t := b.selectedTask(); t != nil {
			b.target = b.selectedRef()
			b.targetText = t.Text
			b.view = viewConfirmDelete
		}
	case "A":
		b.archiveDone()
	case "r":
		b.load()
	}
	return b, nil
}

func (b *Board) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		b.view = viewBoard
		b.mutate("delete", &b.target, func(doc *document.Document) (string, error) {
			if _, err := doc.Delete(b.target); err != nil {
				return "", err
			}
			return b.targetText, nil
		})
	case "n", "N", keyEsc, "q":
		b.view = viewBoard
	}
	return b, nil
}

func (b *Board) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		b.input.Blur()
		b.view = viewBoard
		return b, nil
	case keyEnter:
		text := b.input.Value()
		b.input.Blur()
		b.view = viewBoard
		b.submitInput(text)
		return b, nil
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *Board) startInput(mode inputMode, value string) {
	col := b.currentColumn()
	if col == nil {
		return
	}
	b.mode = mode
	b.input.SetValue(value)
	b.input.CursorEnd()
	b.input.Focus()
	b.view = viewInput
}

func (b *Board) submitInput(text string) {
	col := b.currentColumn()
	if col == nil {
		return
	}

	switch b.mode {
	case inputAdd:
		ref := document.Ref{Section: col.name}
		b.mutate("add", &ref, func(doc *document.Document) (string, error) {
			l, err := doc.Add(col.name, text)
			if err != nil {
				return "", err
			}
			ref.Numbers = []int{l.Number}
			b.activeRow = l.Number - 1
			return l.Task.Text, nil
		})
	case inputEdit:
		b.mutate("edit", &b.target, func(doc *document.Document) (string, error) {
			l, _, err := doc.Edit(b.target, text)
			if err != nil {
				return "", err
			}
			return l.Task.Text, nil
		})
	}
}

func (b *Board) toggleSelected() {
	t := b.selectedTask()
	if t == nil {
		return
	}
	ref := b.selectedRef()

	if t.Done {
		b.mutate("undo", &ref, func(doc *document.Document) (string, error) {
			if _, err := doc.MarkUndone(ref); err != nil {
				return "", err
			}
			return t.Text, nil
		})
		return
	}

	clock, err := b.cfg.Clock()
	if err != nil {
		b.err = err
		return
	}
	today := clock.Today().String()
	b.mutate("done", &ref, func(doc *document.Document) (string, error) {
		if _, err := doc.MarkDone(ref, today); err != nil {
			return "", err
		}
		return t.Text, nil
	})
}

// moveSelected sends the selected task to the end of the neighboring
// section in direction dir.
func (b *Board) moveSelected(dir int) {
	t := b.selectedTask()
	dest := b.activeCol + dir
	if t == nil || dest < 0 || dest >= len(b.columns) {
		return
	}
	ref := b.selectedRef()
	name := b.columns[dest].name

	b.mutate("move", &ref, func(doc *document.Document) (string, error) {
		if _, err := doc.Move(ref, name); err != nil {
			return "", err
		}
		return t.Text + " -> " + name, nil
	})
}

// archiveDone moves every completed task of the current section to the
// done log.
func (b *Board) archiveDone() {
	col := b.currentColumn()
	if col == nil {
		return
	}
	ref := document.Ref{Section: col.name, All: true}
	count := 0

	b.mutate("archive", &ref, func(doc *document.Document) (string, error) {
		archived, err := doc.Archive(ref)
		if err != nil || len(archived) == 0 {
			return "", err
		}
		tasks := make([]*task.Task, len(archived))
		for i, l := range archived {
			tasks[i] = l.Task
		}
		if err := donelog.Append(b.donePath, doc.Section(col.name).Name, tasks); err != nil {
			return "", err
		}
		count = len(tasks)
		return fmt.Sprintf("%d task(s)", count), nil
	})

	if b.err == nil {
		if count == 0 {
			b.notice = fmt.Sprintf("No completed tasks to archive in section '%s'", col.name)
		} else {
			b.notice = fmt.Sprintf("Archived %d task(s) from %s", count, col.name)
		}
	}
}

// mutate reloads the document, applies fn and saves the result. Nothing
// is written when fn fails or returns an empty detail, which means it
// changed nothing. ref is read after fn so it may fill in numbers.
func (b *Board) mutate(action string, ref *document.Ref, fn func(*document.Document) (string, error)) {
	doc, err := document.Load(b.todoPath)
	if err != nil {
		b.err = err
		return
	}

	detail, err := fn(doc)
	if err != nil {
		b.load()
		b.err = err
		return
	}
	if detail == "" {
		b.load()
		return
	}
	if err := doc.Save(b.todoPath); err != nil {
		b.err = err
		return
	}
	if b.cfg.ActivityLog {
		activity.Record(b.cfg.Dir(), action, ref.String(), detail)
	}

	b.load()
}

// load reads the document and organizes it into columns.
func (b *Board) load() {
	doc, err := document.Load(b.todoPath)
	if err != nil {
		b.err = err
		return
	}
	b.err = nil

	scroll := make(map[string]int, len(b.columns))
	for _, c := range b.columns {
		scroll[c.name] = c.scrollOff
	}

	b.columns = make([]column, len(doc.Sections))
	for i, s := range doc.Sections {
		b.columns[i] = column{name: s.Name, tasks: s.Tasks(), scrollOff: scroll[s.Name]}
	}

	if b.activeCol >= len(b.columns) {
		b.activeCol = max(len(b.columns)-1, 0)
	}
	b.clampRow()
}

func (b *Board) currentColumn() *column {
	if b.activeCol >= 0 && b.activeCol < len(b.columns) {
		return &b.columns[b.activeCol]
	}
	return nil
}

func (b *Board) selectedTask() *task.Task {
	col := b.currentColumn()
	if col == nil || len(col.tasks) == 0 {
		return nil
	}
	if b.activeRow >= 0 && b.activeRow < len(col.tasks) {
		return col.tasks[b.activeRow]
	}
	return nil
}

func (b *Board) selectedRef() document.Ref {
	return document.Ref{Section: b.columns[b.activeCol].name, Numbers: []int{b.activeRow + 1}}
}

func (b *Board) clampRow() {
	col := b.currentColumn()
	if col == nil || len(col.tasks) == 0 {
		b.activeRow = 0
		return
	}
	if b.activeRow >= len(col.tasks) {
		b.activeRow = len(col.tasks) - 1
	}
	b.ensureVisible()
}

// chromeHeight returns the number of lines consumed by non-card elements below
// the column area: blank line + status bar (+ error line when an error is shown).
func (b *Board) chromeHeight() int {
	h := boardChrome
	if b.err != nil || b.notice != "" {
		h += errorChrome
	}
	return h
}

// visibleCardsForColumn returns the number of cards that fit in the column,
// accounting for the "↑ N more" / "↓ N more" indicator lines.
func (b *Board) visibleCardsForColumn(col *column, width int) int {
	budget := b.height - b.chromeHeight()
	if budget < 1 {
		return 1
	}

	// Column header.
	avail := budget - 1
	if col.scrollOff > 0 {
		avail--
	}

	n := fitCardsInHeight(col, avail, width)
	if col.scrollOff+n < len(col.tasks) {
		n = max(fitCardsInHeight(col, avail-1, width), 1)
	}
	return n
}

// ensureVisible adjusts the active column's scroll offset so the
// selected row is within the visible window.
func (b *Board) ensureVisible() {
	col := b.currentColumn()
	if col == nil {
		return
	}
	w := b.columnWidth()

	for range len(col.tasks) + 1 {
		maxVis := b.visibleCardsForColumn(col, w)

		switch {
		case b.activeRow >= col.scrollOff+maxVis:
			col.scrollOff = b.activeRow - maxVis + 1
		case b.activeRow < col.scrollOff:
			col.scrollOff = b.activeRow
		default:
			return
		}
	}
}

func fitCardsInHeight(col *column, avail, width int) int {
	if len(col.tasks) == 0 || avail < 1 {
		return 1
	}

	used := 0
	count := 0
	for i := col.scrollOff; i < len(col.tasks); i++ {
		cardLines := cardHeight(col.tasks[i], width)
		if count > 0 && used+cardLines > avail {
			break
		}
		count++
		used += cardLines
		if used >= avail {
			break
		}
	}
	return max(count, 1)
}

// WatchPaths returns the files that should be watched for changes.
func (b *Board) WatchPaths() []string {
	return []string{b.todoPath}
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a board refresh.
type ReloadMsg struct{}

type errMsg struct{ err error }

// WatchError wraps a file watcher error for display in the status bar.
func WatchError(err error) tea.Msg {
	return errMsg{err: err}
}

// --- Styles ---

var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	activeColumnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Strikethrough(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

// --- View rendering ---

func (b *Board) viewBoard() string {
	if len(b.columns) == 0 {
		return "No sections in " + b.todoPath + ". Run `mdtodo init` to create one.\n\n" +
			b.renderStatusBar()
	}

	colWidth := b.columnWidth()

	renderedCols := make([]string, len(b.columns))
	for i, col := range b.columns {
		renderedCols[i] = b.renderColumn(i, col, colWidth)
	}

	boardView := lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...)

	// Clamp from the bottom so headers stay visible on small terminals.
	targetHeight := b.height - b.chromeHeight()
	if targetHeight > 0 {
		actual := strings.Count(boardView, "\n") + 1
		if actual > targetHeight {
			viewLines := strings.SplitN(boardView, "\n", targetHeight+1)
			boardView = strings.Join(viewLines[:targetHeight], "\n")
		} else if actual < targetHeight {
			boardView += strings.Repeat("\n", targetHeight-actual)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, boardView, "", b.renderStatusBar())
}

func (b *Board) columnWidth() int {
	if b.width == 0 || len(b.columns) == 0 {
		return 30 //nolint:mnd // default column width
	}
	const maxColWidth = 60
	return min(b.width/len(b.columns), maxColWidth)
}

func (b *Board) renderColumn(colIdx int, col column, width int) string {
	done := 0
	for _, t := range col.tasks {
		if t.Done {
			done++
		}
	}
	const headerPad = 2
	headerText := truncate(fmt.Sprintf("%s (%d/%d)", col.name, done, len(col.tasks)), width-headerPad)

	var header string
	if colIdx == b.activeCol {
		header = activeColumnHeaderStyle.Width(width).Render(headerText)
	} else {
		header = columnHeaderStyle.Width(width).Render(headerText)
	}

	maxVis := b.visibleCardsForColumn(&col, width)
	start := min(col.scrollOff, len(col.tasks))
	end := min(start+maxVis, len(col.tasks))

	parts := []string{header}

	if start > 0 {
		parts = append(parts, dimStyle.Width(width).Render(truncate(fmt.Sprintf("  ↑ %d more", start), width)))
	}

	if len(col.tasks) == 0 {
		parts = append(parts, dimStyle.Width(width).Render("  (empty)"))
	} else {
		for rowIdx := start; rowIdx < end; rowIdx++ {
			active := colIdx == b.activeCol && rowIdx == b.activeRow
			parts = append(parts, renderCard(col.tasks[rowIdx], rowIdx+1, active, width))
		}
	}

	if end < len(col.tasks) {
		indicator := fmt.Sprintf("  ↓ %d more", len(col.tasks)-end)
		parts = append(parts, dimStyle.Width(width).Render(truncate(indicator, width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCard(t *task.Task, number int, active bool, width int) string {
	lines := cardContentLines(t, number, width)

	style := cardStyle
	if active {
		style = activeCardStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n")) //nolint:mnd // border width
}

func cardHeight(t *task.Task, width int) int {
	return len(cardContentLines(t, 0, width)) + 2 //nolint:mnd // top and bottom borders
}

func cardContentLines(t *task.Task, number, width int) []string {
	const cardChrome = 4 // border (2) + padding (2)
	cardWidth := max(width-cardChrome, 1)

	prefix := fmt.Sprintf("%d. %s ", number, t.Checkbox())
	textStyle := lipgloss.NewStyle()
	if t.Done {
		textStyle = doneStyle
	}

	wrapped := wrapText(prefix+t.Text, cardWidth, maxTextLines)
	lines := make([]string, 0, len(wrapped)+1)
	for _, l := range wrapped {
		lines = append(lines, textStyle.Render(l))
	}
	if t.DoneDate != "" {
		lines = append(lines, dimStyle.Render(task.Checkmark+" "+t.DoneDate))
	}
	return lines
}

// wrapText splits s across maxLines lines, word-wrapping at word
// boundaries. Each line is at most maxWidth cells wide.
func wrapText(s string, maxWidth, maxLines int) []string {
	if maxLines < 1 {
		maxLines = 1
	}
	if lipgloss.Width(s) <= maxWidth || maxLines == 1 {
		return []string{truncate(s, maxWidth)}
	}

	words := strings.Fields(s)
	lines := make([]string, 0, maxLines)
	var current strings.Builder

	for i, word := range words {
		if current.Len() == 0 {
			current.WriteString(word)
			continue
		}
		if lipgloss.Width(current.String())+1+lipgloss.Width(word) <= maxWidth {
			current.WriteByte(' ')
			current.WriteString(word)
			continue
		}
		lines = append(lines, truncate(current.String(), maxWidth))
		current.Reset()
		current.WriteString(word)
		if len(lines) == maxLines-1 {
			for _, w := range words[i+1:] {
				current.WriteByte(' ')
				current.WriteString(w)
			}
			break
		}
	}
	if current.Len() > 0 {
		lines = append(lines, truncate(current.String(), maxWidth))
	}
	return lines
}

func (b *Board) renderStatusBar() string {
	total, done := 0, 0
	for _, c := range b.columns {
		for _, t := range c.tasks {
			total++
			if t.Done {
				done++
			}
		}
	}
	status := fmt.Sprintf(" %s | %d/%d done | space:toggle a:add e:edit m/M:move d:del A:archive q:quit",
		b.todoPath, done, total)
	status = truncate(status, b.width)

	switch {
	case b.err != nil:
		errStr := errorStyle.Render(truncate("Error: "+b.err.Error(), b.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	case b.notice != "":
		return noticeStyle.Render(truncate(b.notice, b.width)) + "\n" + statusBarStyle.Render(status)
	}
	return statusBarStyle.Render(status)
}

func (b *Board) viewDeleteConfirm() string {
	content := errorStyle.Render("Delete task?") + "\n\n" +
		fmt.Sprintf("  %s: %s", b.target.String(), b.targetText) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (b *Board) viewInput() string {
	title := "Add task to " + b.columns[b.activeCol].name
	if b.mode == inputEdit {
		title = "Edit " + b.target.String()
	}
	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n" +
		b.input.View() + "\n\n" +
		dimStyle.Render("enter:save  esc:cancel")

	return dialogStyle.Render(content)
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	target := min(maxLen-3, len(runes)) //nolint:mnd // room for "..."
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
