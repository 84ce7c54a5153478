// Package document parses and writes the section-structured TODO markdown
// file. A document is a run of header lines followed by "## Name" sections,
// each holding tasks interleaved with any other lines the author wrote.
package document

import (
	"regexp"
	"strings"

	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

var headingRe = regexp.MustCompile(`^##\s+(\S.*)$`)

// Entry is one line of section content: either a task or an opaque line
// kept verbatim.
type Entry struct {
	Task *task.Task
	Line string
}

// IsTask reports whether the entry holds a task.
func (e Entry) IsTask() bool { return e.Task != nil }

// String renders the entry as it appears in the file.
func (e Entry) String() string {
	if e.Task != nil {
		return task.Encode(e.Task)
	}
	return e.Line
}

// Section is a level-two heading and the content below it.
type Section struct {
	Name    string
	Entries []Entry
}

// Tasks returns the section's tasks in order. Task number n in references
// and listings is Tasks()[n-1].
func (s *Section) Tasks() []*task.Task {
	var tasks []*task.Task
	for _, e := range s.Entries {
		if e.Task != nil {
			tasks = append(tasks, e.Task)
		}
	}
	return tasks
}

// TaskCount returns the number of tasks in the section.
func (s *Section) TaskCount() int {
	n := 0
	for _, e := range s.Entries {
		if e.Task != nil {
			n++
		}
	}
	return n
}

// Task returns task number n (1-based).
func (s *Section) Task(n int) (*task.Task, bool) {
	i := s.entryIndex(n)
	if i < 0 {
		return nil, false
	}
	return s.Entries[i].Task, true
}

// AppendTask adds t as the last entry of the section.
func (s *Section) AppendTask(t *task.Task) {
	s.Entries = append(s.Entries, Entry{Task: t})
}

// entryIndex maps task number n to its index in Entries, or -1.
func (s *Section) entryIndex(n int) int {
	if n < 1 {
		return -1
	}
	seen := 0
	for i, e := range s.Entries {
		if e.Task == nil {
			continue
		}
		seen++
		if seen == n {
			return i
		}
	}
	return -1
}

// removeTasks removes the given task numbers, which must be ascending,
// unique and in range. Removal runs from the highest entry down so earlier
// indexes stay valid; the removed tasks are returned in ascending order.
func (s *Section) removeTasks(numbers []int) []*task.Task {
	idx := make([]int, len(numbers))
	for i, n := range numbers {
		idx[i] = s.entryIndex(n)
	}

	removed := make([]*task.Task, len(numbers))
	for i := len(idx) - 1; i >= 0; i-- {
		removed[i] = s.Entries[idx[i]].Task
		s.Entries = append(s.Entries[:idx[i]], s.Entries[idx[i]+1:]...)
	}
	return removed
}

// Document is a parsed TODO file.
type Document struct {
	Header   []string
	Sections []*Section
}

// Parse reads text into a Document. It never fails: lines that are neither
// headings nor tasks are kept as opaque entries, and blank lines inside
// sections are dropped.
func Parse(text string) *Document {
	doc := &Document{}
	var cur *Section

	for _, line := range splitLines(text) {
		if name, ok := headingName(line); ok {
			cur = &Section{Name: name}
			doc.Sections = append(doc.Sections, cur)
			continue
		}

		if cur == nil {
			doc.Header = append(doc.Header, line)
			continue
		}

		if t, ok := task.Decode(line); ok {
			cur.Entries = append(cur.Entries, Entry{Task: t})
		} else if strings.TrimSpace(line) != "" {
			cur.Entries = append(cur.Entries, Entry{Line: line})
		}
	}

	return doc
}

// headingName returns the trimmed section name of a "## Name" line. A
// heading whose name trims to nothing is not a heading.
func headingName(line string) (string, bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	return name, name != ""
}

// splitLines splits on "\n", dropping a trailing "\r" from each line. A
// final line without a terminator counts like any other.
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

// String serializes the document. Each section is followed by exactly one
// blank line.
func (d *Document) String() string {
	var b strings.Builder
	for _, l := range d.Header {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	for _, s := range d.Sections {
		b.WriteString("## ")
		b.WriteString(s.Name)
		b.WriteByte('\n')
		for _, e := range s.Entries {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FindSection returns the index of the first section whose name matches
// name case-insensitively.
func (d *Document) FindSection(name string) (int, bool) {
	for i, s := range d.Sections {
		if strings.EqualFold(s.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// Section returns the section matching name, or nil.
func (d *Document) Section(name string) *Section {
	if i, ok := d.FindSection(name); ok {
		return d.Sections[i]
	}
	return nil
}

// GetOrCreateSection returns the index of the section matching name,
// appending a new empty section named exactly name when there is none.
func (d *Document) GetOrCreateSection(name string) int {
	if i, ok := d.FindSection(name); ok {
		return i
	}
	d.Sections = append(d.Sections, &Section{Name: name})
	return len(d.Sections) - 1
}

// SectionNames returns the section names in document order.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}
