package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
	"github.com/twiced-technology-gmbh/mdtodo/internal/config"
	"github.com/twiced-technology-gmbh/mdtodo/internal/date"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	Long:  `View the full configuration, get a specific key, or set a writable value.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configAccessor describes how to get and set a config key.
type configAccessor struct {
	get func(*config.Config) any
	set func(*config.Config, string) error
}

func configAccessors() map[string]configAccessor {
	return map[string]configAccessor{
		"version": {
			get: func(c *config.Config) any { return c.Version },
		},
		"todo_path": {
			get: func(c *config.Config) any { return c.TodoPath },
			set: func(c *config.Config, v string) error { c.TodoPath = v; return nil },
		},
		"done_path": {
			get: func(c *config.Config) any { return c.DonePath },
			set: func(c *config.Config, v string) error { c.DonePath = v; return nil },
		},
		"timezone": {
			get: func(c *config.Config) any { return c.Timezone },
			set: func(c *config.Config, v string) error {
				if _, err := date.LoadLocation(v); err != nil {
					return err
				}
				c.Timezone = v
				return nil
			},
		},
		"activity_log": {
			get: func(c *config.Config) any { return c.ActivityLog },
			set: func(c *config.Config, v string) error {
				b, err := strconv.ParseBool(v)
				if err != nil {
					return clierr.Newf(clierr.InvalidInput,
						"invalid activity_log %q: must be true or false", v)
				}
				c.ActivityLog = b
				return nil
			},
		},
	}
}

// allConfigKeys returns config keys in display order.
func allConfigKeys() []string {
	return []string{"version", "todo_path", "done_path", "timezone", "activity_log"}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	accessors := configAccessors()

	switch outputFormat() {
	case output.FormatJSON:
		m := make(map[string]any, len(accessors))
		for _, key := range allConfigKeys() {
			m[key] = accessors[key].get(cfg)
		}
		return output.JSON(w, m)
	case output.FormatCompact:
		for _, key := range allConfigKeys() {
			fmt.Fprintf(w, "%s=%v\n", key, accessors[key].get(cfg))
		}
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprintf(w, "# %s\n%s", cfg.Path(), data)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}

	key := args[0]
	acc, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key)
	}

	val := acc.get(cfg)
	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, val)
	}
	fmt.Fprintln(w, val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	acc, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key)
	}
	if acc.set == nil {
		return clierr.Newf(clierr.InvalidInput, "config key %q is read-only", key)
	}

	if err := acc.set(cfg, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return clierr.New(clierr.InvalidConfig, err.Error())
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, map[string]any{"key": key, "value": acc.get(cfg)})
	}
	output.Messagef(w, "Set %s = %v", key, acc.get(cfg))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cfg.Path())
	return nil
}
