package cli

import (
	"fmt"

	"github.com/AntonioJCosta/folderator/internal/config"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/AntonioJCosta/folderator/internal/handlers/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ServiceFactory builds the workspace service once the configuration is known.
type ServiceFactory func(cfg *config.Config, logger *zap.Logger) (ports.WorkspaceService, error)

// serviceGetter returns the workspace service for the running command.
type serviceGetter func() (ports.WorkspaceService, error)

// app carries the state shared by the commands of one invocation.
type app struct {
	factory ServiceFactory
	cfgFile string

	cfg     *config.Config
	logger  *zap.Logger
	service ports.WorkspaceService
}

// NewRootCommand creates the folderator command tree.
// It panics if factory is nil.
func NewRootCommand(version string, factory ServiceFactory) *cobra.Command {
	if factory == nil {
		panic("factory cannot be nil")
	}
	a := &app{factory: factory, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "folderator <folder-list-file>",
		Short: "folderator: quickly work in a subset of folders",
		Long: `folderator reads a list of folders, one per line, and opens an interactive
shell with a go-<name> alias for each of them and an iterate helper that runs
a command (or a nested shell) in every folder.

Use "name: /path/to/folder" for custom alias names.

A list file named like a subcommand (list, rc, run) runs that subcommand;
open it as ./list instead.`,
		Version:           version,
		Args:              usageArgs(cobra.MaximumNArgs(1)),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
		PersistentPostRun: a.postRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				ui.PrintUsage(cmd.OutOrStdout())
				return ErrUsage
			}
			svc, err := a.workspaceService()
			if err != nil {
				return err
			}
			return runOpenCmd(cmd, args[0], svc, a.logger)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/folderator/config.yaml)")
	pf.String("shell", config.DefaultShell, "shell dialect to generate and launch (zsh or bash)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colored output")
	pf.Bool("no-user-rc", false, "do not source your own shell startup file")
	pf.String("temp-dir", "", "parent directory for the generated shell config")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(NewListCommand(a.workspaceService))
	rootCmd.AddCommand(NewRCCommand(a.workspaceService))
	rootCmd.AddCommand(NewRunCommand(a.workspaceService))

	return rootCmd
}

// preRun resolves the configuration and sets up output for every command.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.NoColor {
		ui.SetEnabled(false)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("shell", cfg.Shell), zap.String("file", cfg.FileUsed), zap.Bool("no_user_rc", cfg.NoUserRC))
	return nil
}

func (a *app) postRun(_ *cobra.Command, _ []string) {
	_ = a.logger.Sync()
}

// workspaceService builds the service on first use.
func (a *app) workspaceService() (ports.WorkspaceService, error) {
	if a.service != nil {
		return a.service, nil
	}
	if a.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	svc, err := a.factory(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize workspace service: %w", err)
	}
	a.service = svc
	return svc, nil
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
