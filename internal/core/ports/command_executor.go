package ports

import "context"

// CommandExecutor defines an interface for executing shell commands.
type CommandExecutor interface {
	// Execute runs pipeline through shellName with dir as the working directory.
	Execute(ctx context.Context, dir, shellName, pipeline string) (stdout string, stderr string, err error)
}
