package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twiced-technology-gmbh/mdtodo/internal/config"
)

const sample = "# TODO\n\n## Today\n- [ ] A\n- [x] B ✅ 2026-03-01\n\n## Next\n- [ ] C\n\n"

func newTestBoard(t *testing.T) (*Board, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.NewDefault()
	cfg.SetPath(filepath.Join(dir, "config.yml"))
	cfg.TodoPath = filepath.Join(dir, "TODO.md")
	cfg.DonePath = filepath.Join(dir, "done_list.md")
	cfg.Timezone = "UTC"
	cfg.ActivityLog = false

	if err := os.WriteFile(cfg.TodoPath, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := NewBoard(cfg)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return b, cfg
}

func press(b *Board, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		b.Update(msg)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLoadBuildsColumns(t *testing.T) {
	b, _ := newTestBoard(t)

	if len(b.columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(b.columns))
	}
	if b.columns[0].name != "Today" || len(b.columns[0].tasks) != 2 {
		t.Errorf("first column = %s with %d tasks", b.columns[0].name, len(b.columns[0].tasks))
	}
	if !strings.Contains(b.View(), "Today (1/2)") {
		t.Errorf("view missing column header:\n%s", b.View())
	}
}

func TestToggleDone(t *testing.T) {
	b, cfg := newTestBoard(t)

	press(b, "space")
	if got := readFile(t, cfg.TodoPath); !strings.Contains(got, "- [x] A ✅ ") {
		t.Errorf("A not completed:\n%s", got)
	}

	press(b, "j", "x")
	if got := readFile(t, cfg.TodoPath); !strings.Contains(got, "- [ ] B\n") {
		t.Errorf("B not reopened:\n%s", got)
	}
}

func TestAddTask(t *testing.T) {
	b, cfg := newTestBoard(t)

	press(b, "l", "a", "Book", " ", "flights", "enter")

	got := readFile(t, cfg.TodoPath)
	if !strings.Contains(got, "## Next\n- [ ] C\n- [ ] Book flights\n") {
		t.Errorf("task not added to Next:\n%s", got)
	}
	if b.view != viewBoard {
		t.Errorf("view = %v, want board", b.view)
	}
}

func TestEditCancel(t *testing.T) {
	b, cfg := newTestBoard(t)

	press(b, "e", "zzz")
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := readFile(t, cfg.TodoPath); got != sample {
		t.Errorf("file changed after cancel:\n%s", got)
	}
}

func TestDeleteConfirm(t *testing.T) {
	b, cfg := newTestBoard(t)

	press(b, "d", "n")
	if got := readFile(t, cfg.TodoPath); got != sample {
		t.Fatalf("file changed after declining:\n%s", got)
	}

	press(b, "d", "y")
	if got := readFile(t, cfg.TodoPath); strings.Contains(got, "- [ ] A") {
		t.Errorf("A not deleted:\n%s", got)
	}
}

func TestMoveToNextSection(t *testing.T) {
	b, cfg := newTestBoard(t)

	press(b, "m")

	got := readFile(t, cfg.TodoPath)
	if !strings.Contains(got, "## Next\n- [ ] C\n- [ ] A\n") {
		t.Errorf("A not moved:\n%s", got)
	}
}

func TestArchiveDone(t *testing.T) {
	b, cfg := newTestBoard(t)

	press(b, "A")

	if got := readFile(t, cfg.TodoPath); strings.Contains(got, "B") {
		t.Errorf("B still in document:\n%s", got)
	}
	log := readFile(t, cfg.DonePath)
	if !strings.Contains(log, "## 2026-03-01\n\n### Today\n- [x] B ✅ 2026-03-01\n") {
		t.Errorf("done log missing B:\n%s", log)
	}
	if b.notice == "" {
		t.Error("expected a notice after archiving")
	}
}

func TestArchiveNothingLeavesFile(t *testing.T) {
	b, cfg := newTestBoard(t)
	const untidy = "# TODO\n## Today\n\n\n- [ ] A\n## Next\n- [x] C ✅ 2026-03-01"
	if err := os.WriteFile(cfg.TodoPath, []byte(untidy), 0o600); err != nil {
		t.Fatal(err)
	}
	b.load()

	press(b, "A")

	if got := readFile(t, cfg.TodoPath); got != untidy {
		t.Errorf("document rewritten: %q", got)
	}
	if _, err := os.Stat(cfg.DonePath); !os.IsNotExist(err) {
		t.Errorf("done log created, stat err = %v", err)
	}
	if b.err != nil || !strings.HasPrefix(b.notice, "No completed tasks") {
		t.Errorf("err = %v, notice = %q", b.err, b.notice)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "one two" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
}
