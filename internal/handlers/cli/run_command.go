package cli

import (
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/AntonioJCosta/folderator/internal/handlers/ui"
	"github.com/AntonioJCosta/folderator/internal/repositories/shellconfig"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(getService serviceGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "run <folder-list-file> -- <command...>",
		Short: "Run a command in every folder of a list.",
		Long: `Runs the command in each folder, in list order, like iterate does inside
the workspace shell. Put the command after "--" so its flags are not read
by folderator. A failing folder does not stop the others.`,
		Example: `  folderator run work.txt -- git status --short`,
		Args:    usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := getService()
			if err != nil {
				return err
			}
			return runRunCmd(cmd, args, svc)
		},
	}
}

func runRunCmd(cmd *cobra.Command, args []string, svc ports.WorkspaceService) error {
	ws, err := svc.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	results, err := svc.RunEach(cmd.Context(), ws, commandLine(args[1:]))
	for _, result := range results {
		ui.PrintRunResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)
	}
	return err
}

// commandLine turns the words after "--" back into one shell command line.
// A single word is taken as a full command line, so pipes and globs can be
// passed quoted; several words are quoted one by one.
func commandLine(words []string) string {
	if len(words) == 1 {
		return words[0]
	}
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, shellconfig.Quote(w))
	}
	return strings.Join(quoted, " ")
}
