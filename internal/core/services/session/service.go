package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"go.uber.org/zap"
)

const defaultShell = "zsh"

var (
	// ErrCommandFailed is returned by RunEach when the command failed in at least one folder.
	ErrCommandFailed = errors.New("command failed")
	// ErrEmptyCommand is returned by RunEach for a blank command.
	ErrEmptyCommand = errors.New("command is empty")
)

// Options tunes a session service. Zero values pick the defaults.
type Options struct {
	Shell  string // "zsh" (default) or "bash"
	Logger *zap.Logger

	Getwd     func() (string, error)
	RemoveAll func(path string) error
}

type service struct {
	folderList  ports.FolderListProvider
	aliasGen    ports.AliasGenerator
	shellConfig ports.ShellConfigWriter
	launcher    ports.ShellLauncher
	executor    ports.CommandExecutor

	shell     string
	logger    *zap.Logger
	getwd     func() (string, error)
	removeAll func(path string) error
}

// NewService creates a new workspace session service.
// It panics if any of the provided dependencies are nil.
func NewService(
	folderList ports.FolderListProvider,
	aliasGen ports.AliasGenerator,
	shellConfig ports.ShellConfigWriter,
	launcher ports.ShellLauncher,
	executor ports.CommandExecutor,
	opts Options,
) ports.WorkspaceService {
	if folderList == nil {
		panic("folderList cannot be nil")
	}
	if aliasGen == nil {
		panic("aliasGen cannot be nil")
	}
	if shellConfig == nil {
		panic("shellConfig cannot be nil")
	}
	if launcher == nil {
		panic("launcher cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}

	s := &service{
		folderList:  folderList,
		aliasGen:    aliasGen,
		shellConfig: shellConfig,
		launcher:    launcher,
		executor:    executor,
		shell:       opts.Shell,
		logger:      opts.Logger,
		getwd:       opts.Getwd,
		removeAll:   opts.RemoveAll,
	}
	if s.shell == "" {
		s.shell = defaultShell
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.getwd == nil {
		s.getwd = os.Getwd
	}
	if s.removeAll == nil {
		s.removeAll = os.RemoveAll
	}
	return s
}

// Build loads the list at listPath and binds an alias to every entry.
// Relative paths in the list are resolved against the working directory.
func (s *service) Build(ctx context.Context, listPath string) (workspace.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return workspace.Workspace{}, err
	}

	cwd, err := s.getwd()
	if err != nil {
		return workspace.Workspace{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	entries, err := s.folderList.Load(listPath)
	if err != nil {
		return workspace.Workspace{}, fmt.Errorf("failed to load folder list: %w", err)
	}

	bindings := s.aliasGen.GenerateBindings(entries, cwd)
	ws := workspace.New(listPath, bindings)
	s.logger.Debug("built workspace",
		zap.String("name", ws.Name), zap.String("cwd", cwd), zap.Int("folders", len(bindings)))
	return ws, nil
}

/*
Open writes the workspace startup file to a temporary directory, runs the
interactive shell on it and waits for the shell to exit. The temporary
directory is removed afterwards in every case; failing to remove it is only
logged.
*/
func (s *service) Open(ctx context.Context, ws workspace.Workspace) error {
	dir, rcPath, err := s.shellConfig.WriteTemp(ws, s.shell)
	if err != nil {
		return fmt.Errorf("failed to prepare shell config: %w", err)
	}
	defer func() {
		if err := s.removeAll(dir); err != nil {
			s.logger.Warn("failed to remove temporary directory", zap.String("dir", dir), zap.Error(err))
		}
	}()

	spec := ports.LaunchSpec{
		Shell:  s.shell,
		RCDir:  dir,
		RCPath: rcPath,
		Env:    map[string]string{"PROMPT_CHAR": ws.PromptMarker()},
	}
	if err := s.launcher.Launch(ctx, spec); err != nil {
		return fmt.Errorf("failed to launch %s: %w", s.shell, err)
	}
	return nil
}

// RenderConfig returns the startup file Open would write for ws.
func (s *service) RenderConfig(ws workspace.Workspace) (string, error) {
	content, err := s.shellConfig.Render(ws, s.shell)
	if err != nil {
		return "", fmt.Errorf("failed to render shell config: %w", err)
	}
	return content, nil
}

/*
RunEach runs command in every folder of ws in list order. A failing folder
does not stop the run; the returned error wraps ErrCommandFailed and counts
the failures. Cancelling ctx stops before the next folder and returns the
results collected so far.
*/
func (s *service) RunEach(ctx context.Context, ws workspace.Workspace, command string) ([]ports.RunResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, ErrEmptyCommand
	}

	results := make([]ports.RunResult, 0, len(ws.Bindings))
	failed := 0
	for _, b := range ws.Bindings {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		stdout, stderr, err := s.executor.Execute(ctx, b.Path, s.shell, command)
		if err != nil {
			failed++
			s.logger.Debug("command failed", zap.String("dir", b.Path), zap.Error(err))
		}
		results = append(results, ports.RunResult{Binding: b, Stdout: stdout, Stderr: stderr, Err: err})
	}

	if failed > 0 {
		return results, fmt.Errorf("%w in %d of %d folders", ErrCommandFailed, failed, len(ws.Bindings))
	}
	return results, nil
}

// ShadowedAliases returns, in binding order, the workspace aliases that the
// user's own startup files also define.
func (s *service) ShadowedAliases(ws workspace.Workspace) ([]string, error) {
	existing, err := s.shellConfig.ExistingAliases(s.shell)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing aliases: %w", err)
	}

	var shadowed []string
	for _, b := range ws.Bindings {
		if _, ok := existing[b.Alias]; ok {
			shadowed = append(shadowed, b.Alias)
		}
	}
	return shadowed, nil
}
