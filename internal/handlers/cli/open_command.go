package cli

import (
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/AntonioJCosta/folderator/internal/handlers/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runOpenCmd builds the workspace for listPath and opens the interactive shell on it.
func runOpenCmd(cmd *cobra.Command, listPath string, svc ports.WorkspaceService, logger *zap.Logger) error {
	ctx := cmd.Context()

	ws, err := svc.Build(ctx, listPath)
	if err != nil {
		return err
	}

	warnShadowedAliases(cmd, svc, ws, logger)
	ui.PrintAvailableCommands(cmd.OutOrStdout(), ws)

	return svc.Open(ctx, ws)
}

// warnShadowedAliases tells the user which workspace aliases their own
// startup file redefines. Failing to check is not worth stopping for.
func warnShadowedAliases(cmd *cobra.Command, svc ports.WorkspaceService, ws workspace.Workspace, logger *zap.Logger) {
	shadowed, err := svc.ShadowedAliases(ws)
	if err != nil {
		logger.Debug("could not check for shadowed aliases", zap.Error(err))
		return
	}
	if len(shadowed) == 0 {
		return
	}
	ui.PrintWarning(cmd.ErrOrStderr(), "your shell config redefines:", strings.Join(shadowed, ", "))
}
