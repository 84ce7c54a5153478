package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/mdtodo/internal/date"
	"github.com/twiced-technology-gmbh/mdtodo/internal/donelog"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
	"github.com/twiced-technology-gmbh/mdtodo/internal/task"
)

var logCmd = &cobra.Command{
	Use:   "log [DATE]",
	Short: "List archived tasks",
	Long: `Lists the tasks recorded in the done log, newest date first. Pass a date
(YYYY-MM-DD, or "unknown" for tasks archived without one) to show a single day.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().Bool("today", false, "show only tasks completed today")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	filter := ""
	if len(args) == 1 {
		filter = args[0]
		if filter != task.UnknownDate {
			d, err := date.Parse(filter)
			if err != nil {
				return task.ValidateDate("log", filter, err)
			}
			filter = d.String()
		}
	}
	if today, _ := cmd.Flags().GetBool("today"); today {
		clock, err := cfg.Clock()
		if err != nil {
			return err
		}
		filter = clock.Today().String()
	}

	path, err := cfg.DoneFile()
	if err != nil {
		return err
	}
	logger.Debug("loading done log", "path", path)
	l, err := donelog.Load(path)
	if err != nil {
		return err
	}

	days := l.Dates()
	if filter != "" {
		days = days[:0]
		if d := l.Day(filter); d != nil {
			days = append(days, d)
		}
	}

	w := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		if days == nil {
			days = []*donelog.Day{}
		}
		return output.JSON(w, days)
	case output.FormatCompact:
		output.DoneLogCompact(w, days)
	default:
		output.DoneLogTable(w, days)
	}
	return nil
}
