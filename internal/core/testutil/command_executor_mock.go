package testutil

import (
	"context"
	"errors"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(ctx context.Context, dir, shellName, pipeline string) (stdout string, stderr string, err error)
	// Dirs records the working directory of every Execute call, in order.
	Dirs []string
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(ctx context.Context, dir, shellName, pipeline string) (string, string, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, dir, shellName, pipeline)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
