package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/mdtodo/internal/date"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the mdtodo configuration file.
type Config struct {
	Version     int    `yaml:"version"`
	TodoPath    string `yaml:"todo_path"`
	DonePath    string `yaml:"done_path"`
	Timezone    string `yaml:"timezone"`
	ActivityLog bool   `yaml:"activity_log"`

	// path is the config file location (not serialized).
	path string `yaml:"-"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:     CurrentVersion,
		TodoPath:    DefaultTodoPath,
		DonePath:    DefaultDonePath,
		Timezone:    DefaultTimezone,
		ActivityLog: true,
	}
}

// Path returns the config file location.
func (c *Config) Path() string {
	return c.path
}

// SetPath sets the config file location.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Dir returns the directory holding the config file.
func (c *Config) Dir() string {
	return filepath.Dir(c.path)
}

// TodoFile returns the TODO document path with "~" expanded.
func (c *Config) TodoFile() (string, error) {
	return Expand(c.TodoPath)
}

// DoneFile returns the done log path with "~" expanded.
func (c *Config) DoneFile() (string, error) {
	return Expand(c.DonePath)
}

// Clock returns a clock for the configured timezone.
func (c *Config) Clock() (*date.Clock, error) {
	return date.NewClock(c.Timezone)
}

// Validate checks the config for errors. The timezone is checked only when
// a date is needed, so listing still works with a bad timezone.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if strings.TrimSpace(c.TodoPath) == "" {
		return fmt.Errorf("%w: todo_path is required", ErrInvalid)
	}
	if strings.TrimSpace(c.DonePath) == "" {
		return fmt.Errorf("%w: done_path is required", ErrInvalid)
	}
	return nil
}

// Save writes the config to its file, creating the directory if needed.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("%w: no config path set", ErrInvalid)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(c.Dir(), dirMode); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(c.path, data, fileMode)
}

// DefaultPath returns the config file location: $MDTODO_CONFIG, else
// $XDG_CONFIG_HOME/mdtodo/config.yml, else ~/.config/mdtodo/config.yml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return Expand(p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDir, ConfigFileName), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppDir, ConfigFileName), nil
}

// Load reads the config at path. A missing file yields the defaults; a
// legacy config.toml beside it is imported and saved as YAML.
func Load(path string) (*Config, error) {
	path, err := Expand(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		return loadWithoutFile(path)
	}

	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalid, path, err)
	}
	cfg.path = path

	oldVersion := cfg.Version
	if err := migrate(cfg); err != nil {
		return nil, err
	}
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadWithoutFile(path string) (*Config, error) {
	legacy := filepath.Join(filepath.Dir(path), LegacyFileName)
	cfg, err := loadLegacy(legacy)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = NewDefault()
			cfg.path = path
			return cfg, nil
		}
		return nil, err
	}

	cfg.path = path
	if err := migrate(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("saving imported config: %w", err)
	}
	return cfg, nil
}

// Expand replaces a leading "~" with the user's home directory.
func Expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	return expanded, nil
}
