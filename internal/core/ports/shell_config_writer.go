package ports

import "github.com/AntonioJCosta/folderator/internal/core/domain/workspace"

/*
ShellConfigWriter defines the interface for producing the shell startup file
that defines a workspace's aliases and the iterate helper. This is a driven
port, implemented by a repository adapter that knows each shell's dialect.
*/
type ShellConfigWriter interface {
	// Render returns the startup script for ws in the given shell dialect.
	Render(ws workspace.Workspace, shell string) (string, error)

	/*
	   WriteTemp renders ws into a fresh temporary directory.
	   It returns the directory (which the caller must remove) and the path
	   of the written startup file.
	*/
	WriteTemp(ws workspace.Workspace, shell string) (dir string, rcPath string, err error)

	// ExistingAliases returns aliases defined in the user's own startup file
	// for shell, keyed by alias name.
	ExistingAliases(shell string) (map[string]string, error)
}
