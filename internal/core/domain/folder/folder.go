/*
Package folder defines the core domain entities for folder aliasing: the
parsed list entry, the alias binding produced for it, and the registry of
aliases already taken within one run.
*/
package folder

/*
Entry is one parsed line of a folder list. CustomName is empty when the
line carried no "name:" prefix. Entries are treated as immutable once built.
*/
type Entry struct {
	RawPath    string `yaml:"path" toml:"path"`
	CustomName string `yaml:"name,omitempty" toml:"name"`
}

/*
Binding ties a unique alias to a resolved folder path. Name echoes the
entry's custom name for display and is empty when none was given.
*/
type Binding struct {
	Alias string `yaml:"alias"`
	Path  string `yaml:"path"`
	Name  string `yaml:"name,omitempty"`
}

// Registry is the set of alias names already assigned during a single run.
type Registry struct {
	used map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{used: make(map[string]struct{})}
}

// Has reports whether alias was already assigned.
func (r *Registry) Has(alias string) bool {
	_, ok := r.used[alias]
	return ok
}

// Add marks alias as assigned.
func (r *Registry) Add(alias string) {
	if r.used == nil {
		r.used = make(map[string]struct{})
	}
	r.used[alias] = struct{}{}
}

// Len returns the number of assigned aliases.
func (r *Registry) Len() int {
	return len(r.used)
}
