package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdtodo", ConfigFileName)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TodoPath != DefaultTodoPath || cfg.DonePath != DefaultDonePath || cfg.Timezone != DefaultTimezone {
		t.Errorf("defaults = %+v", cfg)
	}
	if !cfg.ActivityLog {
		t.Error("activity log should default to on")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("loading defaults should not write a file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", ConfigFileName)

	cfg := NewDefault()
	cfg.SetPath(path)
	cfg.TodoPath = "/tmp/notes/TODO.md"
	cfg.Timezone = "Asia/Tokyo"
	cfg.ActivityLog = false
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.TodoPath != cfg.TodoPath || got.Timezone != "Asia/Tokyo" || got.ActivityLog {
		t.Errorf("loaded %+v", got)
	}
	if got.DonePath != DefaultDonePath {
		t.Errorf("DonePath = %q", got.DonePath)
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("todo_path: ~/TODO.md\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != CurrentVersion || cfg.DonePath != DefaultDonePath || !cfg.ActivityLog {
		t.Errorf("cfg = %+v", cfg)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	todo, err := cfg.TodoFile()
	if err != nil {
		t.Fatal(err)
	}
	if todo != filepath.Join(home, "TODO.md") {
		t.Errorf("TodoFile() = %q", todo)
	}
}

func TestLegacyTOMLImport(t *testing.T) {
	dir := t.TempDir()
	legacy := "todo_path = \"/data/TODO.md\"\ntimezone = \"Europe/Berlin\"\n"
	if err := os.WriteFile(filepath.Join(dir, LegacyFileName), []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, ConfigFileName)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d", cfg.Version)
	}
	if cfg.TodoPath != "/data/TODO.md" || cfg.Timezone != "Europe/Berlin" || cfg.DonePath != DefaultDonePath {
		t.Errorf("imported %+v", cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("migrated config not written: %v", err)
	}
	if !strings.Contains(string(data), "todo_path: /data/TODO.md") {
		t.Errorf("yaml = %s", data)
	}
}

func TestLegacyTOMLInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LegacyFileName), []byte("todo_path = \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(filepath.Join(dir, ConfigFileName))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"future version", func(c *Config) { c.Version = 99 }},
		{"empty todo path", func(c *Config) { c.TodoPath = " " }},
		{"empty done path", func(c *Config) { c.DonePath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestLoadNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("version: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/xdg", AppDir, ConfigFileName) {
		t.Errorf("DefaultPath() = %q", got)
	}

	t.Setenv(EnvConfig, "/elsewhere/mdtodo.yml")
	if got, _ := DefaultPath(); got != "/elsewhere/mdtodo.yml" {
		t.Errorf("DefaultPath() with env = %q", got)
	}
}

func TestClock(t *testing.T) {
	cfg := NewDefault()
	cfg.Timezone = "Not/AZone"
	if _, err := cfg.Clock(); err == nil {
		t.Error("expected invalid timezone error")
	}
}
