package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMissing(t *testing.T) {
	content, exists, err := ReadFile(filepath.Join(t.TempDir(), "nope.md"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if exists || content != "" {
		t.Errorf("got (%q, %v), want empty and missing", content, exists)
	}
}

func TestWriteCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "TODO.md")

	if err := WriteFile(path, "# TODO\n"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !Exists(path) {
		t.Fatal("file not created")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != fileMode {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(fileMode))
	}

	if err := WriteFile(path, "# TODO\n\n## Today\n"); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	content, exists, err := ReadFile(path)
	if err != nil || !exists {
		t.Fatalf("ReadFile: %v (exists=%v)", err, exists)
	}
	if content != "# TODO\n\n## Today\n" {
		t.Errorf("content = %q", content)
	}
}
