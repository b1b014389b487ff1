package shellconfig

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"go.uber.org/zap"
)

const tempDirPattern = "folderator-*"

// Options configures a ShellConfigWriter. Zero values pick sensible defaults.
type Options struct {
	// HomeDir is where the user's own startup files live. Defaults to the current user's home.
	HomeDir string
	// TempDir is the parent of the per-session directories. Defaults to os.TempDir().
	TempDir string
	// SkipUserRC leaves the user's own startup file out of the generated one.
	SkipUserRC bool
	// Now stamps the generated header. Defaults to time.Now.
	Now    func() time.Time
	Logger *zap.Logger
}

// ShellConfigWriter renders workspace startup files and reads the user's existing aliases.
type ShellConfigWriter struct {
	homeDir    string
	tempDir    string
	skipUserRC bool
	now        func() time.Time
	logger     *zap.Logger
}

// NewShellConfigWriter creates a new ShellConfigWriter.
func NewShellConfigWriter(opts Options) (ports.ShellConfigWriter, error) {
	homeDir := opts.HomeDir
	if homeDir == "" {
		usr, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("failed to get current user: %w", err)
		}
		homeDir = usr.HomeDir
	}
	tempDir := opts.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ShellConfigWriter{
		homeDir:    homeDir,
		tempDir:    tempDir,
		skipUserRC: opts.SkipUserRC,
		now:        now,
		logger:     logger,
	}, nil
}

/*
Render builds the startup file for ws in the given shell dialect. The file
defines the folder array, one alias per binding, the iterate function, and
finally sources the user's own startup file so their setup stays intact.
*/
func (w *ShellConfigWriter) Render(ws workspace.Workspace, shell string) (string, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# --- folderator generated %s ---\n", d.rcFileName)
	fmt.Fprintf(&b, "# Generated: %s\n", w.now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Workspace: %s (%s)\n\n", ws.Name, ws.SourceFile)
	b.WriteString(d.preamble)

	b.WriteString("__FOLDERATOR_DIRS=(\n")
	for _, p := range ws.Paths() {
		fmt.Fprintf(&b, "  %s\n", Quote(p))
	}
	b.WriteString(")\n\n")

	for _, binding := range ws.Bindings {
		b.WriteString(aliasLine(binding.Alias, binding.Path))
	}
	b.WriteString("\n")

	b.WriteString(iterateFunction(d, ws.IteratePromptMarker()))

	if !w.skipUserRC {
		userRC := filepath.Join(w.homeDir, d.userRCFiles[0])
		fmt.Fprintf(&b, "\nif [ -f %[1]s ]; then\n  source %[1]s\nfi\n", Quote(userRC))
	}
	return b.String(), nil
}

// WriteTemp renders ws into a new folderator-* directory under the configured temp dir.
func (w *ShellConfigWriter) WriteTemp(ws workspace.Workspace, shell string) (string, string, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return "", "", err
	}
	content, err := w.Render(ws, shell)
	if err != nil {
		return "", "", err
	}

	dir, err := os.MkdirTemp(w.tempDir, tempDirPattern)
	if err != nil {
		return "", "", fmt.Errorf("failed to create temporary directory in %s: %w", w.tempDir, err)
	}
	rcPath := filepath.Join(dir, d.rcFileName)
	if err := os.WriteFile(rcPath, []byte(content), 0600); err != nil {
		_ = os.RemoveAll(dir)
		return "", "", fmt.Errorf("failed to write shell config %s: %w", rcPath, err)
	}

	w.logger.Debug("wrote shell config", zap.String("shell", d.name), zap.String("path", rcPath))
	return dir, rcPath, nil
}

/*
ExistingAliases reads the aliases the user's own startup files define for
shell. Missing files contribute nothing. An unreadable file is logged and
skipped. When a name appears in several files the last one wins.
*/
func (w *ShellConfigWriter) ExistingAliases(shell string) (map[string]string, error) {
	d, err := dialectFor(shell)
	if err != nil {
		return nil, err
	}

	aliases := make(map[string]string)
	for _, name := range d.userRCFiles {
		filePath := filepath.Join(w.homeDir, name)
		fileAliases, err := getAliasesFromFile(filePath)
		if err != nil {
			w.logger.Warn("could not read aliases",
				zap.String("file", toUserFriendlyPath(filePath, w.homeDir)), zap.Error(err))
			continue
		}
		for aliasName, command := range fileAliases {
			if _, exists := aliases[aliasName]; exists {
				w.logger.Debug("alias defined in multiple files",
					zap.String("alias", aliasName), zap.String("file", toUserFriendlyPath(filePath, w.homeDir)))
			}
			aliases[aliasName] = command
		}
	}
	return aliases, nil
}
