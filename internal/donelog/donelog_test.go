package donelog

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/twiced-technology-gmbh/mdtodo/internal/fsutil"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

func done(text, date string) *task.Task {
	return &task.Task{Text: text, Done: true, DoneDate: date}
}

func TestAddToEmpty(t *testing.T) {
	l := Parse("")
	l.Add("Today", []*task.Task{done("A", "2026-02-13"), done("B", ""), done("C", "2026-02-14")})

	want := "# Done Log\n\n" +
		"## unknown\n\n### Today\n- [x] B\n\n" +
		"## 2026-02-14\n\n### Today\n- [x] C ✅ 2026-02-14\n\n" +
		"## 2026-02-13\n\n### Today\n- [x] A ✅ 2026-02-13\n\n"
	if got := l.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestMergeKeepsExisting(t *testing.T) {
	existing := "# Done Log\n\n" +
		"## 2026-02-10\n\n### Next\n- [x] old ✅ 2026-02-10\n\n" +
		"## 2026-02-12\n\n### Today\n- [x] mid ✅ 2026-02-12\n\n"

	l := Parse(existing)
	l.Add("Today", []*task.Task{done("new", "2026-02-12"), done("newest", "2026-02-15")})
	l.Add("Next", []*task.Task{done("other", "2026-02-12")})

	want := "# Done Log\n\n" +
		"## 2026-02-15\n\n### Today\n- [x] newest ✅ 2026-02-15\n\n" +
		"## 2026-02-12\n\n### Today\n- [x] mid ✅ 2026-02-12\n- [x] new ✅ 2026-02-12\n\n### Next\n- [x] other ✅ 2026-02-12\n\n" +
		"## 2026-02-10\n\n### Next\n- [x] old ✅ 2026-02-10\n\n"
	if got := l.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestParseSynthesizesTitle(t *testing.T) {
	l := Parse("## 2026-01-01\n### Inbox\n- [x] a ✅ 2026-01-01\n")
	want := "# Done Log\n\n## 2026-01-01\n\n### Inbox\n- [x] a ✅ 2026-01-01\n\n"
	if got := l.String(); got != want {
		t.Errorf("got %q", got)
	}
}

func TestParseTitleAfterBlankLines(t *testing.T) {
	l := Parse("\n\n# Done Log\n\n## 2026-01-01\n### A\n- [x] a\n")
	want := "# Done Log\n\n## 2026-01-01\n\n### A\n- [x] a\n\n"
	if got := l.String(); got != want {
		t.Errorf("got %q", got)
	}
}

func TestParseKeepsPreamble(t *testing.T) {
	l := Parse("# Done Log\nkept note\n\n\n## 2026-01-01\nstray\n### A\n- [x] a\n")
	want := "# Done Log\nkept note\n\n## 2026-01-01\n\n### A\n- [x] a\n\n"
	if got := l.String(); got != want {
		t.Errorf("got %q", got)
	}
}

func TestParseMergesDuplicateHeadings(t *testing.T) {
	l := Parse("# Done Log\n\n## d1\n### A\n- [x] 1\n## d1\n### a\n- [x] 2\n")
	if len(l.Days) != 1 || len(l.Days[0].Groups) != 1 {
		t.Fatalf("days = %+v", l.Days)
	}
	if got := l.Day("d1").Groups[0].Tasks(); len(got) != 2 || got[1].Text != "2" {
		t.Errorf("tasks = %+v", got)
	}
}

func TestStableRewrite(t *testing.T) {
	l := Parse("")
	l.Add("Today", []*task.Task{done("A", "2026-02-13")})
	once := l.String()
	if again := Parse(once).String(); again != once {
		t.Errorf("rewrite changed log:\n%q\n%q", once, again)
	}
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "done_list.md")

	if err := Append(path, "Today", []*task.Task{done("A", "2026-02-13")}); err != nil {
		t.Fatal(err)
	}
	if err := Append(path, "Today", []*task.Task{done("B", "2026-02-14")}); err != nil {
		t.Fatal(err)
	}

	content, _, err := fsutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "# Done Log\n\n" +
		"## 2026-02-14\n\n### Today\n- [x] B ✅ 2026-02-14\n\n" +
		"## 2026-02-13\n\n### Today\n- [x] A ✅ 2026-02-13\n\n"
	if content != want {
		t.Errorf("got\n%s\nwant\n%s", content, want)
	}
}

func TestDatesNewestFirst(t *testing.T) {
	l := Parse("# Done Log\n\n## 2026-01-05\n\n### Today\n- [x] A\n\n## 2026-03-01\n\n### Next\n- [x] B\n")
	l.Add("Inbox", []*task.Task{{Text: "C", Done: true}})

	var got []string
	for _, d := range l.Dates() {
		got = append(got, d.Date)
	}
	want := []string{"unknown", "2026-03-01", "2026-01-05"}
	if !slices.Equal(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
}
