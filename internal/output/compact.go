package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/twiced-technology-gmbh/mdtodo/internal/activity"
	"github.com/twiced-technology-gmbh/mdtodo/internal/board"
	"github.com/twiced-technology-gmbh/mdtodo/internal/donelog"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

// SectionsCompact renders tasks as "Section:N [ ] text", one per line.
func SectionsCompact(w io.Writer, views []board.SectionView) {
	n := 0
	for _, v := range views {
		for _, t := range v.Tasks {
			tk := task.Task{Text: t.Text, Done: t.Done, DoneDate: t.DoneDate}
			fmt.Fprintln(w, v.Name+":"+strconv.Itoa(t.Number)+" "+tk.Label())
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
	}
}

// OverviewCompact renders a document summary in compact format.
func OverviewCompact(w io.Writer, o board.Overview) {
	fmt.Fprintf(w, "%s (%d tasks, %d done)\n", o.File, o.TotalTasks, o.Done)
	for _, s := range o.Sections {
		fmt.Fprintf(w, "  %s: %d/%d\n", s.Section, s.Done, s.Total)
	}
}

// DoneLogCompact renders archived tasks as "date Section [x] text".
func DoneLogCompact(w io.Writer, days []*donelog.Day) {
	if len(days) == 0 {
		fmt.Fprintln(os.Stderr, "No archived tasks found.")
		return
	}
	for _, d := range days {
		for _, g := range d.Groups {
			for _, t := range g.Tasks() {
				fmt.Fprintln(w, d.Date+" "+g.Section+" "+t.Label())
			}
		}
	}
}

// HistoryCompact renders activity entries one per line.
func HistoryCompact(w io.Writer, entries []activity.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No activity recorded.")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(w, e.Timestamp.Local().Format("2006-01-02T15:04")+" "+e.Action+" "+e.Ref+" "+e.Detail)
	}
}
