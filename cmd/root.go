// Package cmd implements the mdtodo CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/mdtodo/internal/activity"
	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
	"github.com/twiced-technology-gmbh/mdtodo/internal/config"
	"github.com/twiced-technology-gmbh/mdtodo/internal/document"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON     bool
	flagTable    bool
	flagCompact  bool
	flagNoColor  bool
	flagDebug    bool
	flagConfig   string
	flagFile     string
	flagDoneFile string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mdtodo",
	Level:  log.WarnLevel,
})

var rootCmd = &cobra.Command{
	Use:   "mdtodo",
	Short: "Manage a markdown TODO list from the terminal",
	Long: `mdtodo keeps a personal task list in a plain markdown file organized into
"## Section" headings. Tasks are checkbox lines ("- [ ] text") and are addressed
as Section:number, numbered from 1 within each section as shown by "mdtodo list".

Completed tasks can be archived to a done log grouped by completion date.
Run mdtodo without a command to list all tasks.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runList(listCmd, nil)
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
		logger.SetOutput(cmd.ErrOrStderr())
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.config/mdtodo/config.yml)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "TODO document to use instead of the configured one")
	rootCmd.PersistentFlags().StringVar(&flagDoneFile, "done-file", "", "done log to use instead of the configured one")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
}

// normalizeFlagName maps flag spellings accepted for compatibility onto
// their canonical names.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "oneline":
		name = "compact"
	case "todo", "todo-file":
		name = "file"
	case "done-list", "done-log":
		name = "done-file"
	case "pending":
		name = "open"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stdout, os.Stderr, err))
	}
}

// reportError writes err in the active output format and returns the
// process exit code.
func reportError(stdout, stderr io.Writer, err error) int {
	var cliErr *clierr.Error
	isCLI := errors.As(err, &cliErr)

	if outputFormat() == output.FormatJSON {
		if isCLI {
			output.JSONError(stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			return cliErr.ExitCode()
		}
		output.JSONError(stdout, clierr.InternalError, err.Error(), nil)
		return 2 //nolint:mnd // exit code 2 for internal errors
	}

	fmt.Fprintln(stderr, "Error: "+err.Error())
	if isCLI {
		return cliErr.ExitCode()
	}
	return 1
}

// loadConfigFile loads the config file without applying flag overrides.
func loadConfigFile() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return nil, clierr.New(clierr.InvalidConfig, err.Error()).
				WithDetails(map[string]any{"path": path})
		}
		return nil, err
	}
	logger.Debug("loaded config", "path", cfg.Path())
	return cfg, nil
}

// loadConfig loads the config and applies --file and --done-file.
func loadConfig() (*config.Config, error) {
	cfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}
	if flagFile != "" {
		cfg.TodoPath = flagFile
	}
	if flagDoneFile != "" {
		cfg.DonePath = flagDoneFile
	}
	return cfg, nil
}

// loadDocument loads the config and the TODO document it points at.
func loadDocument() (*config.Config, string, *document.Document, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", nil, err
	}
	path, err := cfg.TodoFile()
	if err != nil {
		return nil, "", nil, err
	}

	logger.Debug("loading document", "path", path)
	doc, err := document.Load(path)
	if err != nil {
		return nil, "", nil, err
	}
	return cfg, path, doc, nil
}

// saveDocument writes doc back to path.
func saveDocument(path string, doc *document.Document) error {
	logger.Debug("saving document", "path", path, "sections", len(doc.Sections))
	if err := doc.Save(path); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// parseRef parses a task reference argument.
func parseRef(arg string) (document.Ref, error) {
	ref, err := document.ParseRef(arg)
	if err != nil {
		return document.Ref{}, err
	}
	logger.Debug("parsed reference", "section", ref.Section, "numbers", ref.Numbers, "all", ref.All)
	return ref, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// logActivity appends an entry to the activity log unless it is disabled.
// Errors are silently discarded because logging should never fail a command.
func logActivity(cfg *config.Config, action, ref, detail string) {
	if !cfg.ActivityLog {
		return
	}
	activity.Record(cfg.Dir(), action, ref, detail)
}
