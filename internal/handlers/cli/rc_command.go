package cli

import (
	"fmt"

	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewRCCommand creates the 'rc' subcommand.
func NewRCCommand(getService serviceGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "rc <folder-list-file>",
		Short: "Print the shell config a folder list generates.",
		Long: `Prints the startup file folderator would load into the workspace shell.
The output can be inspected or loaded into the current shell, e.g.

  eval "$(folderator rc work.txt --no-user-rc)"`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := getService()
			if err != nil {
				return err
			}
			return runRCCmd(cmd, args, svc)
		},
	}
}

func runRCCmd(cmd *cobra.Command, args []string, svc ports.WorkspaceService) error {
	ws, err := svc.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	content, err := svc.RenderConfig(ws)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), content)
	return err
}
