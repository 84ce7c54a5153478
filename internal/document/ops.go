package document

import (
	"strings"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

// Located is a task together with the number it had when it was resolved.
type Located struct {
	Number int        `json:"number"`
	Task   *task.Task `json:"task"`
}

// locate resolves ref against the document. Every number is checked before
// anything is returned, so callers can mutate without partial failure.
func (d *Document) locate(ref Ref, allowAll bool) (*Section, []int, error) {
	sec := d.Section(ref.Section)
	if sec == nil {
		return nil, nil, SectionNotFound(ref.Section)
	}

	if ref.All {
		if !allowAll {
			return nil, nil, clierr.Newf(clierr.InvalidReference,
				"'%s' is only supported by archive", AllToken)
		}
		var nums []int
		for i, t := range sec.Tasks() {
			if t.Done {
				nums = append(nums, i+1)
			}
		}
		return sec, nums, nil
	}

	if len(ref.Numbers) == 0 {
		return nil, nil, invalidRef(ref.String())
	}
	count := sec.TaskCount()
	for _, n := range ref.Numbers {
		if n < 1 || n > count {
			return nil, nil, TaskNotFound(n, ref.Section, count)
		}
	}
	return sec, ref.Numbers, nil
}

func located(sec *Section, nums []int) []Located {
	out := make([]Located, len(nums))
	for i, n := range nums {
		t, _ := sec.Task(n)
		out[i] = Located{Number: n, Task: t}
	}
	return out
}

func removed(nums []int, tasks []*task.Task) []Located {
	out := make([]Located, len(nums))
	for i, n := range nums {
		out[i] = Located{Number: n, Task: tasks[i]}
	}
	return out
}

// Resolve returns the tasks ref points at without changing the document.
// "all" is rejected as it is for every operation except Archive.
func (d *Document) Resolve(ref Ref) ([]Located, error) {
	sec, nums, err := d.locate(ref, false)
	if err != nil {
		return nil, err
	}
	return located(sec, nums), nil
}

// Add appends an open task to the named section, creating the section when
// it does not exist.
func (d *Document) Add(section, text string) (Located, error) {
	text = strings.TrimSpace(text)
	if err := task.ValidateText(text); err != nil {
		return Located{}, err
	}
	section = strings.TrimSpace(section)
	if err := task.ValidateSection(section); err != nil {
		return Located{}, err
	}

	sec := d.Sections[d.GetOrCreateSection(section)]
	t := task.New(text)
	sec.AppendTask(t)
	return Located{Number: sec.TaskCount(), Task: t}, nil
}

// MarkDone completes the referenced tasks on day.
func (d *Document) MarkDone(ref Ref, day string) ([]Located, error) {
	sec, nums, err := d.locate(ref, false)
	if err != nil {
		return nil, err
	}
	out := located(sec, nums)
	for _, l := range out {
		l.Task.Complete(day)
	}
	return out, nil
}

// MarkUndone reopens the referenced tasks.
func (d *Document) MarkUndone(ref Ref) ([]Located, error) {
	sec, nums, err := d.locate(ref, false)
	if err != nil {
		return nil, err
	}
	out := located(sec, nums)
	for _, l := range out {
		l.Task.Reopen()
	}
	return out, nil
}

// Edit replaces the text of a single referenced task and returns the task
// along with its previous text.
func (d *Document) Edit(ref Ref, text string) (Located, string, error) {
	text = strings.TrimSpace(text)
	if err := task.ValidateText(text); err != nil {
		return Located{}, "", err
	}
	if _, err := ref.Single(); err != nil {
		return Located{}, "", err
	}
	sec, nums, err := d.locate(ref, false)
	if err != nil {
		return Located{}, "", err
	}

	l := located(sec, nums)[0]
	before := l.Task.Text
	l.Task.Text = text
	return l, before, nil
}

// Move removes the referenced tasks and appends them in ascending order to
// dest, which is created when missing. Moving within one section sends the
// tasks to its end.
func (d *Document) Move(ref Ref, dest string) ([]Located, error) {
	dest = strings.TrimSpace(dest)
	if err := task.ValidateSection(dest); err != nil {
		return nil, err
	}
	sec, nums, err := d.locate(ref, false)
	if err != nil {
		return nil, err
	}

	tasks := sec.removeTasks(nums)
	target := d.Sections[d.GetOrCreateSection(dest)]
	for _, t := range tasks {
		target.AppendTask(t)
	}
	return removed(nums, tasks), nil
}

// Delete removes the referenced tasks.
func (d *Document) Delete(ref Ref) ([]Located, error) {
	sec, nums, err := d.locate(ref, false)
	if err != nil {
		return nil, err
	}
	return removed(nums, sec.removeTasks(nums)), nil
}

// Archive removes completed tasks for the done log. With "all" it takes
// every completed task and returns nothing when there are none; with
// explicit numbers every task must be completed or nothing is removed.
func (d *Document) Archive(ref Ref) ([]Located, error) {
	sec, nums, err := d.locate(ref, true)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, nil
	}

	if !ref.All {
		for _, n := range nums {
			if t, _ := sec.Task(n); !t.Done {
				return nil, NotCompleted(n, ref.Section)
			}
		}
	}
	return removed(nums, sec.removeTasks(nums)), nil
}
