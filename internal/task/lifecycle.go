package task

// Complete marks the task done on the given YYYY-MM-DD date, replacing any
// previous completion date.
func (t *Task) Complete(day string) {
	t.Done = true
	t.DoneDate = day
}

// Reopen marks the task as not done and clears its completion date.
func (t *Task) Reopen() {
	t.Done = false
	t.DoneDate = ""
}

// ArchiveDate returns the date under which the task is filed in the done
// log. Tasks completed without a recorded date go under "unknown".
func (t *Task) ArchiveDate() string {
	if t.DoneDate == "" {
		return UnknownDate
	}
	return t.DoneDate
}

// UnknownDate groups archived tasks that carry no completion date.
const UnknownDate = "unknown"
