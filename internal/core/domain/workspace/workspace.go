/*
Package workspace defines the set of folder bindings built from one folder
list file.
*/
package workspace

import (
	"path/filepath"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
)

// Workspace is the result of loading one folder list: its display name,
// where it came from, and the alias bindings in list order.
type Workspace struct {
	Name       string
	SourceFile string
	Bindings   []folder.Binding
}

// New builds a Workspace named after the base name of sourceFile.
func New(sourceFile string, bindings []folder.Binding) Workspace {
	return Workspace{
		Name:       filepath.Base(sourceFile),
		SourceFile: sourceFile,
		Bindings:   bindings,
	}
}

// Paths returns the resolved folder paths in list order.
func (w Workspace) Paths() []string {
	paths := make([]string, 0, len(w.Bindings))
	for _, b := range w.Bindings {
		paths = append(paths, b.Path)
	}
	return paths
}

// PromptMarker is the PROMPT_CHAR value exported to the workspace shell.
func (w Workspace) PromptMarker() string {
	return "$" + w.Name + ">"
}

// IteratePromptMarker is the PROMPT_CHAR value used inside iterate subshells.
func (w Workspace) IteratePromptMarker() string {
	return "$" + w.Name + "-(itr)>"
}
