package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	lookPath func(string) (string, error)
}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{lookPath: exec.LookPath}
}

// Execute runs pipeline with `<shell> -c` inside dir and returns its stdout, stderr, and any error.
// The shell is looked up on PATH, falling back to its usual location and then to /bin/sh.
func (e *OSCommandExecutor) Execute(ctx context.Context, dir, shellName, pipeline string) (string, string, error) {
	shellExecPath := e.shellPath(shellName)

	cmd := exec.CommandContext(ctx, shellExecPath, "-c", pipeline)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s' in %s: %w. Stderr: %s", shellExecPath, dir, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

func (e *OSCommandExecutor) shellPath(shellName string) string {
	if shellName != "" {
		if p, err := e.lookPath(shellName); err == nil {
			return p
		}
	}
	switch shellName {
	case "bash":
		return "/bin/bash"
	case "zsh":
		return "/bin/zsh"
	default:
		return "/bin/sh"
	}
}
