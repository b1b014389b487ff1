package aliasgeneration

import (
	"strconv"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

// aliasPrefix starts every generated alias.
const aliasPrefix = "go-"

// firstCollisionSuffix is the first counter tried when an alias is taken.
const firstCollisionSuffix = 2

// AliasGenerator assigns unique navigation aliases to folder entries.
type AliasGenerator struct {
	resolver ports.PathResolver
}

// NewAliasGenerator creates a new AliasGenerator.
func NewAliasGenerator(resolver ports.PathResolver) ports.AliasGenerator {
	return &AliasGenerator{resolver: resolver}
}

/*
MakeAliasName derives "go-<slug>" from customName, the base name of
resolvedPath, or the whole path with separators replaced, in that order of
preference. When the alias is already in registry, "-2", "-3", ... is
appended to the slug until a free one is found. The chosen alias is added
to registry before it is returned.

Example:

	reg := folder.NewRegistry()
	g.MakeAliasName("/x/app", "", reg) // "go-app"
	g.MakeAliasName("/y/app", "", reg) // "go-app-2"
*/
func (g *AliasGenerator) MakeAliasName(resolvedPath, customName string, registry *folder.Registry) string {
	slug := Slugify(aliasBasis(resolvedPath, customName))
	alias := aliasPrefix + slug

	for i := firstCollisionSuffix; registry.Has(alias); i++ {
		alias = aliasPrefix + slug + "-" + strconv.Itoa(i)
	}

	registry.Add(alias)
	return alias
}

// GenerateBindings resolves and aliases entries in input order.
// Every call starts from an empty registry, so the output depends only on entries and cwd.
func (g *AliasGenerator) GenerateBindings(entries []folder.Entry, cwd string) []folder.Binding {
	registry := folder.NewRegistry()
	bindings := make([]folder.Binding, 0, len(entries))

	for _, entry := range entries {
		resolved := g.resolver.Resolve(entry.RawPath, cwd)
		bindings = append(bindings, folder.Binding{
			Alias: g.MakeAliasName(resolved, entry.CustomName, registry),
			Path:  resolved,
			Name:  entry.CustomName,
		})
	}
	return bindings
}
