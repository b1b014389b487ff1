package folderlist

import (
	"fmt"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/BurntSushi/toml"
)

// tomlList is the layout of a TOML folder list:
//
//	[[folder]]
//	name = "api"
//	path = "./services/api"
type tomlList struct {
	Folders []folder.Entry `toml:"folder"`
}

func decodeTOML(data []byte, path string) ([]folder.Entry, error) {
	var list tomlList
	md, err := toml.Decode(string(data), &list)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML folder list %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to decode TOML folder list %s: unknown keys %v", path, undecoded)
	}

	entries := make([]folder.Entry, 0, len(list.Folders))
	for _, f := range list.Folders {
		entry, err := structuredEntry(f.CustomName, f.RawPath)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyList, path)
	}
	return entries, nil
}
