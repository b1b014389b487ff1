package oscommand

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

func TestOSCommandExecutor_Execute(t *testing.T) {
	requireSh(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	e := NewOSCommandExecutor()

	t.Run("runs in the given directory", func(t *testing.T) {
		stdout, stderr, err := e.Execute(context.Background(), dir, "sh", "pwd -P")
		require.NoError(t, err)
		assert.Equal(t, dir, strings.TrimSpace(stdout))
		assert.Empty(t, stderr)
	})

	t.Run("failure carries stderr", func(t *testing.T) {
		stdout, stderr, err := e.Execute(context.Background(), dir, "sh", "echo out; echo boom >&2; exit 3")
		require.Error(t, err)
		assert.Equal(t, "out\n", stdout)
		assert.Equal(t, "boom\n", stderr)
		assert.Contains(t, err.Error(), "Stderr: boom")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := e.Execute(ctx, dir, "sh", "true")
		assert.Error(t, err)
	})
}

func TestOSCommandExecutor_shellPath(t *testing.T) {
	notFound := func(string) (string, error) { return "", errors.New("not found") }

	tests := []struct {
		name      string
		shellName string
		lookPath  func(string) (string, error)
		want      string
	}{
		{
			name:      "found on PATH",
			shellName: "zsh",
			lookPath:  func(name string) (string, error) { return "/opt/bin/" + name, nil },
			want:      "/opt/bin/zsh",
		},
		{name: "bash fallback", shellName: "bash", lookPath: notFound, want: "/bin/bash"},
		{name: "zsh fallback", shellName: "zsh", lookPath: notFound, want: "/bin/zsh"},
		{name: "unknown shell falls back to sh", shellName: "fish", lookPath: notFound, want: "/bin/sh"},
		{name: "empty shell name", shellName: "", lookPath: notFound, want: "/bin/sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &OSCommandExecutor{lookPath: tt.lookPath}
			assert.Equal(t, tt.want, e.shellPath(tt.shellName))
		})
	}
}
