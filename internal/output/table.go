package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/mdtodo/internal/activity"
	"github.com/twiced-technology-gmbh/mdtodo/internal/board"
	"github.com/twiced-technology-gmbh/mdtodo/internal/donelog"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	numberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	actionStyles = map[string]lipgloss.Style{
		"add":     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"done":    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"undo":    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"move":    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		"archive": lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		"delete":  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"edit":    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// DisableColor strips all styling from table output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	headerStyle = lipgloss.NewStyle()
	sectionStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	numberStyle = lipgloss.NewStyle()
	actionStyles = map[string]lipgloss.Style{}
}

// SectionsTable renders the numbered listing: a "## Name" heading per
// section, one "  N: [ ] text" line per task and a blank line after each
// section.
func SectionsTable(w io.Writer, views []board.SectionView) {
	for _, v := range views {
		fmt.Fprintln(w, sectionStyle.Render("## "+v.Name))
		for _, t := range v.Tasks {
			fmt.Fprintf(w, "  %s %s\n", numberStyle.Render(strconv.Itoa(t.Number)+":"), taskLabel(t))
		}
		fmt.Fprintln(w)
	}
}

func taskLabel(t board.TaskView) string {
	tk := task.Task{Text: t.Text, Done: t.Done, DoneDate: t.DoneDate}
	if t.Done {
		return doneStyle.Render(tk.Label())
	}
	return tk.Label()
}

// OverviewTable renders per-section counts.
func OverviewTable(w io.Writer, o board.Overview) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(o.File))
	fmt.Fprintf(w, "Total: %d tasks (%d done, %d open)\n\n", o.TotalTasks, o.Done, o.Open)

	const sectionColW = 20
	nameW := sectionColW
	for _, s := range o.Sections {
		nameW = max(nameW, lipgloss.Width(s.Section)+2) //nolint:mnd // column padding
	}

	header := fmt.Sprintf("%-*s %6s %6s %6s", nameW, "SECTION", "TOTAL", "DONE", "OPEN")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, s := range o.Sections {
		fmt.Fprintf(w, "%s %6d %6d %6d\n",
			padRight(sectionStyle.Render(s.Section), nameW), s.Total, s.Done, s.Open)
	}
}

// DoneLogTable renders archived tasks grouped by date and section.
func DoneLogTable(w io.Writer, days []*donelog.Day) {
	if len(days) == 0 {
		fmt.Fprintln(os.Stderr, "No archived tasks found.")
		return
	}

	for _, d := range days {
		fmt.Fprintln(w, sectionStyle.Render(d.Date))
		for _, g := range d.Groups {
			fmt.Fprintln(w, "  "+headerStyle.Render(g.Section))
			for _, t := range g.Tasks() {
				fmt.Fprintln(w, "    "+doneStyle.Render(t.Label()))
			}
		}
		fmt.Fprintln(w)
	}
}

// HistoryTable renders activity log entries, one per line.
func HistoryTable(w io.Writer, entries []activity.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No activity recorded.")
		return
	}

	const actionColW = 9
	refW := 4
	for _, e := range entries {
		refW = max(refW, lipgloss.Width(e.Ref)+2) //nolint:mnd // column padding
	}

	header := fmt.Sprintf("%-16s %-*s %-*s %s", "TIME", actionColW, "ACTION", refW, "REF", "DETAIL")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, e := range entries {
		row := fmt.Sprintf("%s %s %s %s",
			dimStyle.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
			padRight(styledValue(e.Action, actionStyles), actionColW),
			padRight(e.Ref, refW),
			e.Detail)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// styledValue renders s using a matching style from the map, or returns s unchanged.
func styledValue(s string, styles map[string]lipgloss.Style) string {
	if st, ok := styles[s]; ok {
		return st.Render(s)
	}
	return s
}
