package ports

import (
	"context"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
)

// RunResult holds the outcome of running one command in one folder.
type RunResult struct {
	Binding folder.Binding
	Stdout  string
	Stderr  string
	Err     error
}

// WorkspaceService defines the contract for building and using a folder workspace.
type WorkspaceService interface {
	// Build loads the folder list at listPath and assigns aliases to every entry.
	Build(ctx context.Context, listPath string) (workspace.Workspace, error)

	// Open launches an interactive shell preloaded with the workspace aliases
	// and blocks until it exits.
	Open(ctx context.Context, ws workspace.Workspace) error

	// RenderConfig returns the startup script Open would load.
	RenderConfig(ws workspace.Workspace) (string, error)

	// RunEach runs command in every folder of ws, in order, and keeps going
	// when a folder fails.
	RunEach(ctx context.Context, ws workspace.Workspace, command string) ([]RunResult, error)

	// ShadowedAliases lists workspace aliases that the user's own startup
	// file also defines and will therefore override.
	ShadowedAliases(ws workspace.Workspace) ([]string, error)
}
