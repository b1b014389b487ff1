package cli

import (
	"fmt"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/AntonioJCosta/folderator/internal/handlers/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(getService serviceGetter) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list <folder-list-file>",
		Short: "List the aliases a folder list defines.",
		Long: `Resolves every folder in the list and shows the alias it gets,
without starting a shell.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputYAML {
				return fmt.Errorf("%w: unknown output format %q (use %s or %s)", ErrUsage, output, outputTable, outputYAML)
			}
			svc, err := getService()
			if err != nil {
				return err
			}
			return runListCmd(cmd, args, svc, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or yaml")
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, args []string, svc ports.WorkspaceService, output string) error {
	ws, err := svc.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if output == outputYAML {
		return writeBindingsYAML(cmd, ws)
	}
	ui.PrintBindingsTable(cmd.OutOrStdout(), ws)
	return nil
}

func writeBindingsYAML(cmd *cobra.Command, ws workspace.Workspace) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(ws.Bindings); err != nil {
		return fmt.Errorf("failed to encode bindings: %w", err)
	}
	return encoder.Close()
}
