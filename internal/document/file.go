package document

import (
	"github.com/twiced-technology-gmbh/mdtodo/internal/fsutil"
)

// DefaultSections are the sections of a freshly initialized document.
var DefaultSections = []string{"Today", "Next", "Backlogs", "Someday", "Waiting", "Inbox"}

// Template is the content written by init.
const Template = "# TODO\n\n## Today\n\n## Next\n\n## Backlogs\n\n## Someday\n\n## Waiting\n\n## Inbox\n"

// Load reads and parses the document at path. A missing file yields an
// empty document.
func Load(path string) (*Document, error) {
	content, _, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content), nil
}

// Save replaces the file at path with the serialized document.
func (d *Document) Save(path string) error {
	return fsutil.WriteFile(path, d.String())
}
