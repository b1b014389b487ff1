package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/AntonioJCosta/folderator/internal/adapters/aliasgeneration"
	"github.com/AntonioJCosta/folderator/internal/adapters/oscommand"
	"github.com/AntonioJCosta/folderator/internal/adapters/pathresolution"
	"github.com/AntonioJCosta/folderator/internal/config"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/AntonioJCosta/folderator/internal/core/services/session"
	"github.com/AntonioJCosta/folderator/internal/handlers/cli"
	"github.com/AntonioJCosta/folderator/internal/repositories/folderlist"
	"github.com/AntonioJCosta/folderator/internal/repositories/shellconfig"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

// newWorkspaceService wires the adapters behind the workspace service.
func newWorkspaceService(cfg *config.Config, logger *zap.Logger) (ports.WorkspaceService, error) {
	shellConf, err := shellconfig.NewShellConfigWriter(shellconfig.Options{
		TempDir:    cfg.TempDir,
		SkipUserRC: cfg.NoUserRC,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	aliasGen := aliasgeneration.NewAliasGenerator(pathresolution.NewResolver())

	return session.NewService(
		folderlist.NewReader(),
		aliasGen,
		shellConf,
		oscommand.NewShellLauncher(logger),
		oscommand.NewOSCommandExecutor(),
		session.Options{Shell: cfg.Shell, Logger: logger},
	), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := cli.NewRootCommand(Version, newWorkspaceService)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
