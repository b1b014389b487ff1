package pathresolution

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// Resolver implements ports.PathResolver on top of the local filesystem.
type Resolver struct {
	homeDir      func() (string, error)
	evalSymlinks func(string) (string, error)
}

// NewResolver creates a Resolver that expands "~" against the user's home
// directory and canonicalizes symlinks.
func NewResolver() ports.PathResolver {
	return &Resolver{
		homeDir:      os.UserHomeDir,
		evalSymlinks: filepath.EvalSymlinks,
	}
}

// ResolvePath resolves raw against cwd with the default Resolver.
func ResolvePath(raw, cwd string) string {
	return NewResolver().Resolve(raw, cwd)
}

/*
Resolve returns the absolute, symlink-free form of raw.
Relative paths are joined to cwd. A leading "~" or "~/" is replaced by the
home directory. When the path does not exist or cannot be canonicalized,
the cleaned absolute path is returned instead.
*/
func (r *Resolver) Resolve(raw, cwd string) string {
	p := r.expandHome(raw)
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	abs := filepath.Clean(p)

	canonical, err := r.evalSymlinks(abs)
	if err != nil {
		return abs
	}
	return canonical
}

func (r *Resolver) expandHome(raw string) string {
	if raw != "~" && !strings.HasPrefix(raw, "~/") {
		return raw
	}
	home, err := r.homeDir()
	if err != nil || home == "" {
		return raw
	}
	if raw == "~" {
		return home
	}
	return filepath.Join(home, raw[2:])
}
