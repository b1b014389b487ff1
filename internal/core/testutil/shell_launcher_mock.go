package testutil

import (
	"context"

	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// MockShellLauncher is a mock implementation of ports.ShellLauncher.
type MockShellLauncher struct {
	LaunchFunc func(ctx context.Context, spec ports.LaunchSpec) error
	// Launches records every spec passed to Launch.
	Launches []ports.LaunchSpec
}

func (m *MockShellLauncher) Launch(ctx context.Context, spec ports.LaunchSpec) error {
	m.Launches = append(m.Launches, spec)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(ctx, spec)
	}
	return nil
}

var _ ports.ShellLauncher = (*MockShellLauncher)(nil)
