package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// MockWorkspaceService is a mock implementation of ports.WorkspaceService.
type MockWorkspaceService struct {
	BuildFunc           func(ctx context.Context, listPath string) (workspace.Workspace, error)
	OpenFunc            func(ctx context.Context, ws workspace.Workspace) error
	RenderConfigFunc    func(ws workspace.Workspace) (string, error)
	RunEachFunc         func(ctx context.Context, ws workspace.Workspace, command string) ([]ports.RunResult, error)
	ShadowedAliasesFunc func(ws workspace.Workspace) ([]string, error)

	// OpenCalls counts calls to Open.
	OpenCalls int
}

func (m *MockWorkspaceService) Build(ctx context.Context, listPath string) (workspace.Workspace, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(ctx, listPath)
	}
	return workspace.Workspace{}, errors.New("MockWorkspaceService: BuildFunc not implemented")
}

func (m *MockWorkspaceService) Open(ctx context.Context, ws workspace.Workspace) error {
	m.OpenCalls++
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, ws)
	}
	return nil
}

func (m *MockWorkspaceService) RenderConfig(ws workspace.Workspace) (string, error) {
	if m.RenderConfigFunc != nil {
		return m.RenderConfigFunc(ws)
	}
	return "", errors.New("MockWorkspaceService: RenderConfigFunc not implemented")
}

func (m *MockWorkspaceService) RunEach(ctx context.Context, ws workspace.Workspace, command string) ([]ports.RunResult, error) {
	if m.RunEachFunc != nil {
		return m.RunEachFunc(ctx, ws, command)
	}
	return nil, nil
}

func (m *MockWorkspaceService) ShadowedAliases(ws workspace.Workspace) ([]string, error) {
	if m.ShadowedAliasesFunc != nil {
		return m.ShadowedAliasesFunc(ws)
	}
	return nil, nil
}

var _ ports.WorkspaceService = (*MockWorkspaceService)(nil)
