package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// migrate upgrades a config from its current version to CurrentVersion.
// Version 0 is the TOML layout of earlier releases.
func migrate(cfg *Config) error {
	if cfg.Version == CurrentVersion {
		return nil
	}
	if cfg.Version > CurrentVersion {
		return fmt.Errorf(
			"%w: config version %d is newer than supported version %d (upgrade mdtodo)",
			ErrInvalid, cfg.Version, CurrentVersion,
		)
	}
	if cfg.Version < 0 {
		return fmt.Errorf("%w: config version %d is invalid", ErrInvalid, cfg.Version)
	}

	for cfg.Version < CurrentVersion {
		fn, ok := migrations[cfg.Version]
		if !ok {
			return fmt.Errorf("%w: no migration path from version %d", ErrInvalid, cfg.Version)
		}
		if err := fn(cfg); err != nil {
			return fmt.Errorf("migrating config from v%d: %w", cfg.Version, err)
		}
	}
	return nil
}

// migrations maps each version to the function that migrates it to the next version.
// The migration function must increment cfg.Version after a successful migration.
var migrations = map[int]func(*Config) error{
	0: migrateV0ToV1,
}

// migrateV0ToV1 fills fields the TOML config did not have.
func migrateV0ToV1(cfg *Config) error { //nolint:unparam // signature must match migrations map type
	if cfg.TodoPath == "" {
		cfg.TodoPath = DefaultTodoPath
	}
	if cfg.DonePath == "" {
		cfg.DonePath = DefaultDonePath
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	cfg.ActivityLog = true
	cfg.Version = 1
	return nil
}

// legacyConfig is the config.toml layout.
type legacyConfig struct {
	TodoPath string `toml:"todo_path"`
	DonePath string `toml:"done_path"`
	Timezone string `toml:"timezone"`
}

// loadLegacy reads a config.toml as a version 0 Config. A missing file is
// reported with an error satisfying os.IsNotExist.
func loadLegacy(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		return nil, err
	}

	var lc legacyConfig
	if err := toml.Unmarshal(data, &lc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: parsing %s at %d:%d: %w", ErrInvalid, path, row, col, err)
		}
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalid, path, err)
	}

	return &Config{
		Version:  0,
		TodoPath: lc.TodoPath,
		DonePath: lc.DonePath,
		Timezone: lc.Timezone,
	}, nil
}
