// Package board builds read-only views of a TODO document: numbered
// listings and per-section counts.
package board

import (
	"github.com/twiced-technology-gmbh/mdtodo/internal/document"
)

// TaskView is a task with the number references use for it.
type TaskView struct {
	Number   int    `json:"number"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	DoneDate string `json:"done_date,omitempty"`
}

// SectionView is one section of a listing.
type SectionView struct {
	Name  string     `json:"name"`
	Tasks []TaskView `json:"tasks"`
}

// List returns the document's sections with numbered tasks. Numbers are
// assigned before filtering, so they stay valid as references.
func List(doc *document.Document, opts FilterOptions) ([]SectionView, error) {
	for _, name := range opts.Sections {
		if doc.Section(name) == nil {
			return nil, document.SectionNotFound(name)
		}
	}

	views := make([]SectionView, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		if !opts.matchesSection(s.Name) {
			continue
		}
		v := SectionView{Name: s.Name, Tasks: []TaskView{}}
		for i, t := range s.Tasks() {
			tv := TaskView{Number: i + 1, Text: t.Text, Done: t.Done, DoneDate: t.DoneDate}
			if opts.matchesTask(tv) {
				v.Tasks = append(v.Tasks, tv)
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// SectionSummary holds counts for a single section.
type SectionSummary struct {
	Section string `json:"section"`
	Total   int    `json:"total"`
	Done    int    `json:"done"`
	Open    int    `json:"open"`
}

// Overview is the aggregate document overview.
type Overview struct {
	File       string           `json:"file"`
	TotalTasks int              `json:"total_tasks"`
	Done       int              `json:"done"`
	Open       int              `json:"open"`
	Sections   []SectionSummary `json:"sections"`
}

// Summary counts tasks per section.
func Summary(doc *document.Document, file string) Overview {
	o := Overview{File: file, Sections: make([]SectionSummary, 0, len(doc.Sections))}
	for _, s := range doc.Sections {
		ss := SectionSummary{Section: s.Name}
		for _, t := range s.Tasks() {
			ss.Total++
			if t.Done {
				ss.Done++
			} else {
				ss.Open++
			}
		}
		o.TotalTasks += ss.Total
		o.Done += ss.Done
		o.Open += ss.Open
		o.Sections = append(o.Sections, ss)
	}
	return o
}
