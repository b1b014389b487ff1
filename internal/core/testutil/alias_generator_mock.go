package testutil

import (
	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// MockAliasGenerator is a mock implementation of ports.AliasGenerator.
type MockAliasGenerator struct {
	MakeAliasNameFunc    func(resolvedPath, customName string, registry *folder.Registry) string
	GenerateBindingsFunc func(entries []folder.Entry, cwd string) []folder.Binding
}

func (m *MockAliasGenerator) MakeAliasName(resolvedPath, customName string, registry *folder.Registry) string {
	if m.MakeAliasNameFunc != nil {
		return m.MakeAliasNameFunc(resolvedPath, customName, registry)
	}
	return ""
}

func (m *MockAliasGenerator) GenerateBindings(entries []folder.Entry, cwd string) []folder.Binding {
	if m.GenerateBindingsFunc != nil {
		return m.GenerateBindingsFunc(entries, cwd)
	}
	return []folder.Binding{}
}

var _ ports.AliasGenerator = (*MockAliasGenerator)(nil)

// MockPathResolver is a mock implementation of ports.PathResolver.
type MockPathResolver struct {
	ResolveFunc func(raw, cwd string) string
	// ResolveCalls keeps track of the raw paths passed to Resolve.
	ResolveCalls []string
}

// Resolve records raw and calls ResolveFunc, returning raw unchanged when it is unset.
func (m *MockPathResolver) Resolve(raw, cwd string) string {
	m.ResolveCalls = append(m.ResolveCalls, raw)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(raw, cwd)
	}
	return raw
}

var _ ports.PathResolver = (*MockPathResolver)(nil)
