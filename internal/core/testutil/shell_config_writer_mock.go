package testutil

import (
	"errors"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// MockShellConfigWriter is a mock implementation of ports.ShellConfigWriter for testing.
type MockShellConfigWriter struct {
	RenderFunc          func(ws workspace.Workspace, shell string) (string, error)
	WriteTempFunc       func(ws workspace.Workspace, shell string) (string, string, error)
	ExistingAliasesFunc func(shell string) (map[string]string, error)
}

func (m *MockShellConfigWriter) Render(ws workspace.Workspace, shell string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ws, shell)
	}
	return "", errors.New("MockShellConfigWriter: RenderFunc not implemented")
}

func (m *MockShellConfigWriter) WriteTemp(ws workspace.Workspace, shell string) (string, string, error) {
	if m.WriteTempFunc != nil {
		return m.WriteTempFunc(ws, shell)
	}
	return "", "", errors.New("MockShellConfigWriter: WriteTempFunc not implemented")
}

func (m *MockShellConfigWriter) ExistingAliases(shell string) (map[string]string, error) {
	if m.ExistingAliasesFunc != nil {
		return m.ExistingAliasesFunc(shell)
	}
	return nil, errors.New("MockShellConfigWriter: ExistingAliasesFunc not implemented")
}

var _ ports.ShellConfigWriter = (*MockShellConfigWriter)(nil)
