package board

import (
	"strings"
)

// FilterOptions defines which sections and tasks a listing includes.
type FilterOptions struct {
	Sections []string // case-insensitive section names; empty means all
	Done     *bool    // nil=no filter, true=only done, false=only open
	Search   string   // case-insensitive substring match on task text
}

func (o FilterOptions) matchesSection(name string) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func (o FilterOptions) matchesTask(t TaskView) bool {
	if o.Done != nil && t.Done != *o.Done {
		return false
	}
	if o.Search != "" && !strings.Contains(strings.ToLower(t.Text), strings.ToLower(o.Search)) {
		return false
	}
	return true
}
