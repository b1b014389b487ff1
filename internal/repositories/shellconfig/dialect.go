package shellconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedShell is returned for shells other than zsh and bash.
var ErrUnsupportedShell = errors.New("unsupported shell")

// dialect holds what differs between the supported shells.
type dialect struct {
	name string
	// rcFileName is the name of the generated startup file inside the temp dir.
	rcFileName string
	// userRCFiles are the user's own startup files, relative to the home directory.
	// The first one is sourced at the end of the generated file.
	userRCFiles []string
	// preamble is emitted right after the header.
	preamble string
	// nestedShell starts an interactive shell that loads the generated file again.
	nestedShell string
}

var dialects = map[string]dialect{
	"zsh": {
		name:        "zsh",
		rcFileName:  ".zshrc",
		userRCFiles: []string{".zshrc"},
		// ZDOTDIR points at the generated file's directory, so a plain zsh -i reloads it.
		nestedShell: "zsh -i",
	},
	"bash": {
		name:        "bash",
		rcFileName:  "bashrc",
		userRCFiles: []string{".bashrc", ".bash_aliases"},
		preamble:    `__FOLDERATOR_RC="${BASH_SOURCE[0]}"` + "\n",
		nestedShell: `bash --rcfile "$__FOLDERATOR_RC" -i`,
	},
}

// SupportedShells lists the shell names accepted by the writer.
func SupportedShells() []string {
	return []string{"zsh", "bash"}
}

// dialectFor accepts a bare shell name or a path to the shell binary.
func dialectFor(shell string) (dialect, error) {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(shell)))
	d, ok := dialects[name]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(SupportedShells(), ", "))
	}
	return d, nil
}
