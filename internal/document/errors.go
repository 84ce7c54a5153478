package document

import "github.com/twiced-technology-gmbh/mdtodo/internal/clierr"

// SectionNotFound returns a CLIError for a reference to a missing section.
func SectionNotFound(name string) *clierr.Error {
	return clierr.Newf(clierr.SectionNotFound, "Section '%s' not found", name).
		WithDetails(map[string]any{"section": name})
}

// TaskNotFound returns a CLIError for a task number outside the section.
func TaskNotFound(n int, section string, count int) *clierr.Error {
	return clierr.Newf(clierr.TaskNotFound, "Task %d not found in section '%s'", n, section).
		WithDetails(map[string]any{
			"section": section,
			"number":  n,
			"count":   count,
		})
}

// NotCompleted returns a CLIError for archiving an open task.
func NotCompleted(n int, section string) *clierr.Error {
	return clierr.Newf(clierr.TaskNotCompleted,
		"Task %d in section '%s' is not completed. Cannot archive incomplete tasks.", n, section).
		WithDetails(map[string]any{
			"section": section,
			"number":  n,
		})
}

func invalidRef(input string) *clierr.Error {
	return clierr.New(clierr.InvalidReference, "Invalid task reference format. Use Section:number").
		WithDetails(map[string]any{"input": input})
}

func invalidNumber(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidReference, "Invalid task number '%s'", input).
		WithDetails(map[string]any{"input": input})
}
