package folderlist

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
)

var lineBreakRegex = regexp.MustCompile(`\r?\n`)

// Reader implements ports.FolderListProvider for plain text, YAML and TOML lists.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() ports.FolderListProvider {
	return &Reader{}
}

/*
Load reads the folder list at path and returns its entries in file order.
The format is picked by extension: .yaml/.yml and .toml are structured,
anything else is one entry per line. Parsing stops at the first bad entry.
*/
func (r *Reader) Load(path string) ([]folder.Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := readListFile(path)
		if err != nil {
			return nil, err
		}
		return decodeYAML(data, path)
	case ".toml":
		data, err := readListFile(path)
		if err != nil {
			return nil, err
		}
		return decodeTOML(data, path)
	}

	lines, err := r.ReadLines(path)
	if err != nil {
		return nil, err
	}
	entries := make([]folder.Entry, 0, len(lines))
	for _, line := range lines {
		entry, err := ParseFolderLine(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadLines returns the trimmed, non-blank lines of a plain text list.
// Every other line is kept, including ones starting with "#", which are paths.
func (r *Reader) ReadLines(path string) ([]string, error) {
	data, err := readListFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, raw := range lineBreakRegex.Split(string(data), -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyList, path)
	}
	return lines, nil
}

func readListFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrListNotFound, path)
		}
		return nil, fmt.Errorf("failed to read folder list %s: %w", path, err)
	}
	return data, nil
}

// structuredEntry validates an entry from a YAML or TOML list.
func structuredEntry(name, path string) (folder.Entry, error) {
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if path == "" {
		line := name + ":"
		return folder.Entry{}, &ParseError{Line: line, Reason: reasonEmptyPath}
	}
	return folder.Entry{RawPath: path, CustomName: name}, nil
}
