package ports

import "github.com/AntonioJCosta/folderator/internal/core/domain/folder"

// FolderListProvider defines the contract for loading folder entries from a list file.
type FolderListProvider interface {
	// Load reads and parses the list at path. It fails on the first malformed
	// entry and never returns a partial list.
	Load(path string) ([]folder.Entry, error)
}
