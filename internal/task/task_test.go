package task

import (
	"testing"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Task
	}{
		{"open", "- [ ] Buy milk", &Task{Text: "Buy milk"}},
		{"done with date", "- [x] Ship it ✅ 2026-02-13", &Task{Text: "Ship it", Done: true, DoneDate: "2026-02-13"}},
		{"done without date", "- [x] Legacy", &Task{Text: "Legacy", Done: true}},
		{"open with date", "- [ ] Odd ✅ 2026-01-01", &Task{Text: "Odd", DoneDate: "2026-01-01"}},
		{"indented", "   - [ ] Nested  ", &Task{Text: "Nested"}},
		{"date not validated", "- [x] X ✅ 9999-99-99", &Task{Text: "X", Done: true, DoneDate: "9999-99-99"}},
		{"marker mid text", "- [ ] a ✅ 2026-01-01 b", &Task{Text: "a ✅ 2026-01-01 b"}},
		{"marker without leading text", "- [ ] ✅ 2026-01-01", &Task{Text: "✅ 2026-01-01"}},
		{"last marker wins", "- [x] a ✅ 2026-01-01 ✅ 2026-01-02", &Task{Text: "a ✅ 2026-01-01", Done: true, DoneDate: "2026-01-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decode(tt.line)
			if !ok {
				t.Fatalf("Decode(%q) not recognized", tt.line)
			}
			if *got != *tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.line, *got, *tt.want)
			}
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"plain text",
		"- [X] capital x",
		"- [] empty box",
		"- [ ]",
		"- [ ] ",
		"* [ ] star bullet",
		"-[ ] no space",
		"## Today",
	} {
		if got, ok := Decode(line); ok {
			t.Errorf("Decode(%q) = %+v, want not a task", line, got)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		task Task
		want string
	}{
		{Task{Text: "A"}, "- [ ] A"},
		{Task{Text: "B", Done: true, DoneDate: "2026-02-13"}, "- [x] B ✅ 2026-02-13"},
		{Task{Text: "C", Done: true}, "- [x] C"},
		{Task{Text: "D", DoneDate: "2026-02-13"}, "- [ ] D ✅ 2026-02-13"},
	}
	for _, tt := range tests {
		if got := Encode(&tt.task); got != tt.want {
			t.Errorf("Encode(%+v) = %q, want %q", tt.task, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, want := range []Task{
		{Text: "write report"},
		{Text: "call Bob: re invoice #42", Done: true, DoneDate: "2025-12-31"},
		{Text: "legacy", Done: true},
		{Text: "[brackets] and - dashes"},
	} {
		got, ok := Decode(Encode(&want))
		if !ok {
			t.Fatalf("round trip of %+v not recognized", want)
		}
		if *got != want {
			t.Errorf("round trip = %+v, want %+v", *got, want)
		}
	}
}

func TestCompleteReopen(t *testing.T) {
	tk := New("water plants")
	tk.Complete("2026-03-01")
	if !tk.Done || tk.DoneDate != "2026-03-01" {
		t.Fatalf("after Complete: %+v", *tk)
	}
	if got := tk.ArchiveDate(); got != "2026-03-01" {
		t.Errorf("ArchiveDate() = %q", got)
	}

	tk.Reopen()
	if tk.Done || tk.DoneDate != "" || tk.Text != "water plants" {
		t.Errorf("after Reopen: %+v", *tk)
	}
	if got := tk.ArchiveDate(); got != UnknownDate {
		t.Errorf("ArchiveDate() = %q, want %q", got, UnknownDate)
	}
}

func TestLabel(t *testing.T) {
	tk := &Task{Text: "B", Done: true, DoneDate: "2026-02-13"}
	if got := tk.Label(); got != "[x] B ✅ 2026-02-13" {
		t.Errorf("Label() = %q", got)
	}
	if got := New("A").Label(); got != "[ ] A" {
		t.Errorf("Label() = %q", got)
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText("ok"); err != nil {
		t.Fatalf("ValidateText(ok) = %v", err)
	}
	for _, bad := range []string{"", "   ", "two\nlines", "cr\rhere"} {
		err := ValidateText(bad)
		if clierr.CodeOf(err) != clierr.InvalidInput {
			t.Errorf("ValidateText(%q) = %v, want %s", bad, err, clierr.InvalidInput)
		}
	}
}

func TestValidateSection(t *testing.T) {
	if err := ValidateSection("Work: Q1"); err != nil {
		t.Fatalf("ValidateSection = %v", err)
	}
	for _, bad := range []string{"", "  ", "Later\n- [x] injected", "A\rB"} {
		if err := ValidateSection(bad); clierr.CodeOf(err) != clierr.InvalidInput {
			t.Errorf("ValidateSection(%q) = %v, want %s", bad, err, clierr.InvalidInput)
		}
	}
}
