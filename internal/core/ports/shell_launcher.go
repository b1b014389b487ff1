package ports

import "context"

// LaunchSpec describes the interactive shell to start for a workspace.
type LaunchSpec struct {
	Shell  string            // Shell dialect, "zsh" or "bash"
	RCDir  string            // Directory holding the generated startup file
	RCPath string            // Full path of the generated startup file
	Env    map[string]string // Added on top of the invoking environment
}

// ShellLauncher starts an interactive shell and waits for it to exit.
type ShellLauncher interface {
	Launch(ctx context.Context, spec LaunchSpec) error
}
