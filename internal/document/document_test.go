package document

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/twiced-technology-gmbh/mdtodo/internal/fsutil"
)

const sample = "# TODO\n\n## Today\n- [ ] A\n- [x] B ✅ 2026-02-13\n\n## Next\n- [ ] C\n"

func labels(s *Section) []string {
	var out []string
	for _, t := range s.Tasks() {
		out = append(out, t.Label())
	}
	return out
}

func TestParseSample(t *testing.T) {
	doc := Parse(sample)

	if got := doc.SectionNames(); !slices.Equal(got, []string{"Today", "Next"}) {
		t.Fatalf("sections = %v", got)
	}
	if !slices.Equal(doc.Header, []string{"# TODO", ""}) {
		t.Errorf("header = %q", doc.Header)
	}

	want := []string{"[ ] A", "[x] B ✅ 2026-02-13"}
	if got := labels(doc.Sections[0]); !slices.Equal(got, want) {
		t.Errorf("Today = %v, want %v", got, want)
	}
	if got := labels(doc.Sections[1]); !slices.Equal(got, []string{"[ ] C"}) {
		t.Errorf("Next = %v", got)
	}
}

func TestSerializeNormalizesBlankLines(t *testing.T) {
	in := "# TODO\n\n## Today\n\n\n- [ ] A\n\nnote here\n- [ ] B\n## Next"
	want := "# TODO\n\n## Today\n- [ ] A\nnote here\n- [ ] B\n\n## Next\n\n"
	if got := Parse(in).String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestOpaqueLinesKeepPosition(t *testing.T) {
	in := "## Work\nintro text\n- [ ] one\n> quote\n- [x] two\n### sub heading\n- [ ] three\n"
	doc := Parse(in)
	if got := doc.String(); got != in+"\n" {
		t.Errorf("String() = %q", got)
	}

	sec := doc.Sections[0]
	if sec.TaskCount() != 3 {
		t.Fatalf("TaskCount = %d", sec.TaskCount())
	}
	if tk, _ := sec.Task(2); tk.Text != "two" {
		t.Errorf("Task(2) = %q", tk.Text)
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"header only", "# Title\nsome text", "# Title\nsome text\n"},
		{"crlf", "## Today\r\n- [ ] A\r\n", "## Today\n- [ ] A\n\n"},
		{"heading name trimmed", "##   Today  \n", "## Today\n\n"},
		{"tab heading", "##\tInbox\n", "## Inbox\n\n"},
		{"bare hashes are header", "##\n## A\n", "##\n## A\n\n"},
		{"level three is opaque", "## A\n### B\n", "## A\n### B\n\n"},
		{"indented task normalized", "## A\n  - [ ] x\n", "## A\n- [ ] x\n\n"},
		{"whitespace-only line dropped", "## A\n   \n- [ ] x\n", "## A\n- [ ] x\n\n"},
		{"duplicate sections kept", "## A\n- [ ] 1\n## a\n- [ ] 2\n", "## A\n- [ ] 1\n\n## a\n- [ ] 2\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in).String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		sample,
		"",
		"\n",
		"no sections at all\n\n\n",
		"## A\n\n\n\n- [ ] x\n\n\n## B\ntext\n\n",
		"pre\n## A  \n   - [x] done ✅ 2026-01-01   \n  opaque with spaces  \r\n## B",
		"## A\n- [x] no date\n- [ ] open ✅ 2026-01-01\n",
		"## A\n##\u00a0\n- [ ] b\n",
		"##\u00a0\u2003\n## B\n",
	}
	for _, in := range inputs {
		once := Parse(in).String()
		twice := Parse(once).String()
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce  %q\ntwice %q", in, once, twice)
		}
	}
}

func TestBlankHeadingIsNotASection(t *testing.T) {
	doc := Parse("## A\n##\u00a0\n- [ ] b\n")

	if !slices.Equal(doc.SectionNames(), []string{"A"}) {
		t.Fatalf("sections = %q", doc.SectionNames())
	}
	a := doc.Sections[0]
	if len(a.Entries) != 2 || a.Entries[0].Line != "##\u00a0" || a.TaskCount() != 1 {
		t.Errorf("entries = %+v", a.Entries)
	}
}

func TestRoundTripPreservesTasks(t *testing.T) {
	doc := Parse(sample)
	again := Parse(doc.String())

	if !slices.Equal(doc.SectionNames(), again.SectionNames()) {
		t.Fatalf("sections changed: %v -> %v", doc.SectionNames(), again.SectionNames())
	}
	for i := range doc.Sections {
		if !slices.Equal(labels(doc.Sections[i]), labels(again.Sections[i])) {
			t.Errorf("section %s tasks changed", doc.Sections[i].Name)
		}
	}
}

func TestFindSection(t *testing.T) {
	doc := Parse(sample)

	for _, name := range []string{"today", "TODAY", "Today"} {
		if i, ok := doc.FindSection(name); !ok || i != 0 {
			t.Errorf("FindSection(%q) = %d, %v", name, i, ok)
		}
	}
	if _, ok := doc.FindSection("Tod"); ok {
		t.Error("FindSection matched a prefix")
	}

	if i := doc.GetOrCreateSection("next"); i != 1 {
		t.Errorf("GetOrCreateSection(next) = %d", i)
	}
	i := doc.GetOrCreateSection("Someday")
	if i != 2 || doc.Sections[2].Name != "Someday" {
		t.Errorf("GetOrCreateSection(Someday) = %d, sections %v", i, doc.SectionNames())
	}
}

func TestLoadMissingAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "TODO.md")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Sections) != 0 || len(doc.Header) != 0 {
		t.Fatalf("missing file should load empty, got %+v", doc)
	}

	if _, err := doc.Add("Inbox", "first"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	content, _, err := fsutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if content != "## Inbox\n- [ ] first\n\n" {
		t.Errorf("saved %q", content)
	}
}

func TestTemplate(t *testing.T) {
	doc := Parse(Template)
	if !slices.Equal(doc.SectionNames(), DefaultSections) {
		t.Errorf("template sections = %v", doc.SectionNames())
	}
	if doc.String() != Template+"\n" {
		t.Errorf("template reserialized as %q", doc.String())
	}
}
