// Package task implements the checkbox line format used for tasks in the
// TODO document.
package task

import (
	"regexp"
	"strings"
)

// Checkmark separates a completed task's text from its completion date.
const Checkmark = "✅"

var (
	lineRe = regexp.MustCompile(`^- \[([ x])\] (.+)$`)
	dateRe = regexp.MustCompile(`^(.*?) ` + Checkmark + ` (\d{4}-\d{2}-\d{2})$`)
)

// Task is a single checkbox item.
type Task struct {
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	DoneDate string `json:"done_date,omitempty"` // YYYY-MM-DD, empty when unset
}

// New returns an open task with the given text.
func New(text string) *Task {
	return &Task{Text: text}
}

// Decode parses a task line such as "- [x] Buy milk ✅ 2026-02-13".
// Surrounding whitespace is ignored. The second return value is false when
// the line is not a task.
func Decode(line string) (*Task, bool) {
	m := lineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, false
	}

	t := &Task{Text: m[2], Done: m[1] == "x"}
	if dm := dateRe.FindStringSubmatch(t.Text); dm != nil {
		t.Text = dm[1]
		t.DoneDate = dm[2]
	}
	return t, true
}

// Encode renders t as a task line. The date suffix is written whenever
// DoneDate is set, independent of Done.
func Encode(t *Task) string {
	var b strings.Builder
	if t.Done {
		b.WriteString("- [x] ")
	} else {
		b.WriteString("- [ ] ")
	}
	b.WriteString(t.Text)
	if t.DoneDate != "" {
		b.WriteString(" " + Checkmark + " " + t.DoneDate)
	}
	return b.String()
}

// String implements fmt.Stringer using the task line format.
func (t *Task) String() string {
	return Encode(t)
}

// Checkbox returns "[x]" or "[ ]".
func (t *Task) Checkbox() string {
	if t.Done {
		return "[x]"
	}
	return "[ ]"
}

// Label is the task as shown in listings: checkbox, text and date suffix.
func (t *Task) Label() string {
	s := t.Checkbox() + " " + t.Text
	if t.DoneDate != "" {
		s += " " + Checkmark + " " + t.DoneDate
	}
	return s
}
