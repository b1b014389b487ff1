package oscommand

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"os/signal"
	"slices"

	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"go.uber.org/zap"
)

// runner starts a prepared command and waits for it.
type runner func(cmd *exec.Cmd) error

// ShellLauncher implements ports.ShellLauncher by spawning an interactive shell
// wired to the terminal of the current process.
type ShellLauncher struct {
	logger   *zap.Logger
	lookPath func(string) (string, error)
	run      runner
}

// NewShellLauncher creates a new ShellLauncher. A nil logger disables logging.
func NewShellLauncher(logger *zap.Logger) ports.ShellLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShellLauncher{
		logger:   logger,
		lookPath: exec.LookPath,
		run:      func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

/*
Launch starts spec.Shell interactively and blocks until the user leaves it.
zsh finds its startup file through ZDOTDIR; bash is pointed at it with
--rcfile. The shell's own exit status is not reported as an error.
ctx only gates the start: once running, the shell belongs to the user and
is never killed from here. Interrupts reach the shell through the terminal
and are swallowed by this process until the shell exits.
*/
func (l *ShellLauncher) Launch(ctx context.Context, spec ports.LaunchSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd, err := l.command(spec)
	if err != nil {
		return err
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	l.logger.Debug("launching shell", zap.String("path", cmd.Path), zap.Strings("args", cmd.Args))
	err = l.run(cmd)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		l.logger.Debug("shell exited", zap.Int("code", exitErr.ExitCode()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", spec.Shell, err)
	}
	return nil
}

func (l *ShellLauncher) command(spec ports.LaunchSpec) (*exec.Cmd, error) {
	shellPath, err := l.lookPath(spec.Shell)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", spec.Shell, err)
	}

	var args []string
	env := os.Environ()
	switch spec.Shell {
	case "zsh":
		args = []string{"-i"}
		env = append(env, "ZDOTDIR="+spec.RCDir)
	case "bash":
		args = []string{"--rcfile", spec.RCPath, "-i"}
	default:
		return nil, fmt.Errorf("cannot launch shell %q", spec.Shell)
	}
	for _, k := range slices.Sorted(maps.Keys(spec.Env)) {
		env = append(env, k+"="+spec.Env[k])
	}

	cmd := exec.Command(shellPath, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}
