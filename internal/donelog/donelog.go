// Package donelog maintains the archive of completed tasks, a markdown file
// grouped by completion date and then by the section the tasks came from:
//
//	# Done Log
//
//	## 2026-02-13
//
//	### Today
//	- [x] Ship it ✅ 2026-02-13
package donelog

import (
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/mdtodo/internal/fsutil"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

// Title is the first line of every done log.
const Title = "# Done Log"

// Group holds the archived lines of one section on one date.
type Group struct {
	Section string   `json:"section"`
	Lines   []string `json:"lines"`
}

// Tasks decodes the group's task lines, skipping anything else.
func (g *Group) Tasks() []*task.Task {
	var out []*task.Task
	for _, l := range g.Lines {
		if t, ok := task.Decode(l); ok {
			out = append(out, t)
		}
	}
	return out
}

// Day is one date heading.
type Day struct {
	Date   string   `json:"date"`
	Groups []*Group `json:"groups"`
}

func (d *Day) group(section string) *Group {
	for _, g := range d.Groups {
		if strings.EqualFold(g.Section, section) {
			return g
		}
	}
	g := &Group{Section: section}
	d.Groups = append(d.Groups, g)
	return g
}

// Log is a parsed done log.
type Log struct {
	Header []string `json:"-"`
	Days   []*Day   `json:"days"`
}

// Parse reads a done log. Repeated date or section headings are merged in
// encounter order. Lines outside a date and section are not kept.
func Parse(content string) *Log {
	l := &Log{}
	var day *Day
	var grp *Group

	for _, line := range splitLines(content) {
		switch {
		case strings.HasPrefix(line, "### "):
			if day != nil {
				grp = day.group(strings.TrimSpace(line[4:]))
			}
		case strings.HasPrefix(line, "## "):
			day = l.day(strings.TrimSpace(line[3:]))
			grp = nil
		case day == nil:
			l.Header = append(l.Header, line)
		case grp != nil && strings.TrimSpace(line) != "":
			grp.Lines = append(grp.Lines, line)
		}
	}

	for len(l.Header) > 0 && strings.TrimSpace(l.Header[len(l.Header)-1]) == "" {
		l.Header = l.Header[:len(l.Header)-1]
	}
	for len(l.Header) > 0 && strings.TrimSpace(l.Header[0]) == "" {
		l.Header = l.Header[1:]
	}
	if len(l.Header) == 0 || strings.TrimSpace(l.Header[0]) != Title {
		l.Header = append([]string{Title}, l.Header...)
	}
	return l
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func (l *Log) day(date string) *Day {
	for _, d := range l.Days {
		if d.Date == date {
			return d
		}
	}
	d := &Day{Date: date}
	l.Days = append(l.Days, d)
	return d
}

// Day returns the entry for date, or nil.
func (l *Log) Day(date string) *Day {
	for _, d := range l.Days {
		if d.Date == date {
			return d
		}
	}
	return nil
}

// Add files tasks under their completion dates in the given section,
// after anything already recorded there.
func (l *Log) Add(section string, tasks []*task.Task) {
	for _, t := range tasks {
		g := l.day(t.ArchiveDate()).group(section)
		g.Lines = append(g.Lines, task.Encode(t))
	}
}

// Dates returns the days newest first. Dates compare as strings, which is
// chronological for YYYY-MM-DD.
func (l *Log) Dates() []*Day {
	days := slices.Clone(l.Days)
	slices.SortStableFunc(days, func(a, b *Day) int {
		return strings.Compare(b.Date, a.Date)
	})
	return days
}

// String renders the whole log in Dates order.
func (l *Log) String() string {
	days := l.Dates()

	var b strings.Builder
	for _, h := range l.Header {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for _, d := range days {
		b.WriteString("## " + d.Date + "\n\n")
		for _, g := range d.Groups {
			b.WriteString("### " + g.Section + "\n")
			for _, line := range g.Lines {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Load reads the done log at path; a missing file yields an empty log.
func Load(path string) (*Log, error) {
	content, _, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content), nil
}

// Save rewrites the done log at path.
func (l *Log) Save(path string) error {
	return fsutil.WriteFile(path, l.String())
}

// Append loads the log at path, files tasks under section and writes the
// log back in full.
func Append(path, section string, tasks []*task.Task) error {
	l, err := Load(path)
	if err != nil {
		return err
	}
	l.Add(section, tasks)
	return l.Save(path)
}
