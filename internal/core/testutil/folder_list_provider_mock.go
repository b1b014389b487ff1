package testutil

import (
	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// MockFolderListProvider is a mock implementation of ports.FolderListProvider.
type MockFolderListProvider struct {
	LoadFunc func(path string) ([]folder.Entry, error)
}

func (m *MockFolderListProvider) Load(path string) ([]folder.Entry, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return nil, nil // Default behavior
}

var _ ports.FolderListProvider = (*MockFolderListProvider)(nil)
