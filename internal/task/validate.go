package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
)

// ValidateText checks that text can be stored on a single task line.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return clierr.New(clierr.InvalidInput, "task text cannot be empty")
	}
	if strings.ContainsAny(text, "\r\n") {
		return clierr.New(clierr.InvalidInput, "task text cannot contain line breaks").
			WithDetails(map[string]any{"text": text})
	}
	return nil
}

// ValidateSection checks that name can be written as a single "## Name"
// heading.
func ValidateSection(name string) error {
	if strings.TrimSpace(name) == "" {
		return clierr.New(clierr.InvalidInput, "section name cannot be empty")
	}
	if strings.ContainsAny(name, "\r\n") {
		return clierr.New(clierr.InvalidInput, "section name cannot contain line breaks").
			WithDetails(map[string]any{"section": name})
	}
	return nil
}

// ValidateDate returns a CLIError for invalid date input.
func ValidateDate(field, input string, err error) *clierr.Error {
	return clierr.Newf(clierr.InvalidDate, "invalid %s date: %v", field, err).
		WithDetails(map[string]any{
			"field": field,
			"input": input,
		})
}
