package ports

// PathResolver turns a raw folder path into an absolute one.
type PathResolver interface {
	// Resolve never fails; when canonicalization is impossible it returns
	// the plain absolute path.
	Resolve(raw, cwd string) string
}
