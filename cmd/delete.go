package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
	"github.com/twiced-technology-gmbh/mdtodo/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:     "delete SECTION:N[,N...]",
	Aliases: []string{"rm"},
	Short:   "Delete tasks",
	Long: `Removes the referenced tasks from the document permanently. Prompts for
confirmation when run interactively unless --yes is given. With --json and no
terminal, --yes is required.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}

	cfg, path, doc, err := loadDocument()
	if err != nil {
		return err
	}

	targets, err := doc.Resolve(ref)
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		if !isTerminal(cmd.InOrStdin()) {
			if outputFormat() == output.FormatJSON {
				return clierr.New(clierr.ConfirmationReq,
					"cannot prompt for confirmation (not a terminal); use --yes").
					WithDetails(map[string]any{"ref": ref.String()})
			}
		} else {
			errW := cmd.ErrOrStderr()
			for _, l := range targets {
				fmt.Fprintf(errW, "  %s %s\n", locRef(ref.Section, l.Number), l.Task.Label())
			}
			if !confirm(cmd.InOrStdin(), errW, fmt.Sprintf("Delete %d task(s)?", len(targets))) {
				fmt.Fprintln(errW, "Canceled.")
				return nil
			}
		}
	}

	deleted, err := doc.Delete(ref)
	if err != nil {
		return err
	}
	if err := saveDocument(path, doc); err != nil {
		return err
	}

	return reportLocated(cmd, cfg, "delete", ref, deleted, "Deleted")
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks a yes/no question, defaulting to no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
