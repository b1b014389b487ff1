package ports

import "github.com/AntonioJCosta/folderator/internal/core/domain/folder"

/*
AliasGenerator defines the contract for turning folder entries into
unique, shell-safe alias bindings.
This is a driven port, representing a domain capability.
*/
type AliasGenerator interface {
	// MakeAliasName picks an alias for resolvedPath (or customName when set)
	// that is not yet in registry, and records it there before returning.
	MakeAliasName(resolvedPath, customName string, registry *folder.Registry) string

	// GenerateBindings resolves every entry against cwd and assigns aliases
	// in input order using a fresh registry.
	GenerateBindings(entries []folder.Entry, cwd string) []folder.Binding
}
