// Package config handles mdtodo configuration: where the TODO document and
// the done log live and which timezone stamps completion dates.
package config

const (
	// DefaultTodoPath is the TODO document used when none is configured.
	DefaultTodoPath = "./TODO.md"
	// DefaultDonePath is the done log used when none is configured.
	DefaultDonePath = "./done_list.md"
	// DefaultTimezone selects the system timezone.
	DefaultTimezone = "Local"

	// AppDir is the directory name under the user config directory.
	AppDir = "mdtodo"
	// ConfigFileName is the name of the config file within AppDir.
	ConfigFileName = "config.yml"
	// LegacyFileName is the TOML config written by earlier releases.
	LegacyFileName = "config.toml"

	// EnvConfig overrides the config file location.
	EnvConfig = "MDTODO_CONFIG"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)
