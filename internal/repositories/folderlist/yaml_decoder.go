package folderlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"gopkg.in/yaml.v3"
)

/*
yamlItem is one element of a YAML folder list. It accepts three shapes:

	- ./services/api              # bare line, parsed like a text list line
	- api: ./services/api         # single key shorthand, key is the name
	- {name: api, path: ./api}    # explicit fields

A single key named "name" or "path" is read as a field, not as shorthand,
so an alias called "name" must be written as a quoted line: - "name: ./x".
*/
type yamlItem struct {
	entry folder.Entry
	skip  bool
}

func (i *yamlItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		line := strings.TrimSpace(node.Value)
		if line == "" {
			i.skip = true
			return nil
		}
		entry, err := ParseFolderLine(line)
		if err != nil {
			return err
		}
		i.entry = entry
		return nil

	case yaml.MappingNode:
		if len(node.Content) == 2 && node.Content[0].Value == "name" {
			line := "name: " + strings.TrimSpace(node.Content[1].Value)
			return &ParseError{Line: line, Reason: reasonNameWithoutPath}
		}
		if len(node.Content) == 2 && !isEntryField(node.Content[0].Value) {
			entry, err := structuredEntry(node.Content[0].Value, node.Content[1].Value)
			if err != nil {
				return err
			}
			i.entry = entry
			return nil
		}
		for k := 0; k < len(node.Content); k += 2 {
			if key := node.Content[k]; !isEntryField(key.Value) {
				return fmt.Errorf("line %d: field %s not found in folder entry", key.Line, key.Value)
			}
		}
		var fields struct {
			Name string `yaml:"name"`
			Path string `yaml:"path"`
		}
		if err := node.Decode(&fields); err != nil {
			return err
		}
		entry, err := structuredEntry(fields.Name, fields.Path)
		if err != nil {
			return err
		}
		i.entry = entry
		return nil
	}
	return fmt.Errorf("line %d: folder entry must be a path or a name/path mapping", node.Line)
}

const reasonNameWithoutPath = `mapping has "name" but no "path"; quote it as "name: <path>" to alias a folder as name`

func isEntryField(key string) bool {
	return key == "name" || key == "path"
}

func decodeYAML(data []byte, path string) ([]folder.Entry, error) {
	var items []yamlItem

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&items); err != nil {
		// A file holding only comments or "---" has no document at all.
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyList, path)
		}
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, parseErr
		}
		return nil, fmt.Errorf("failed to decode YAML folder list %s: %w", path, err)
	}

	entries := make([]folder.Entry, 0, len(items))
	for _, item := range items {
		if item.skip {
			continue
		}
		entries = append(entries, item.entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyList, path)
	}
	return entries, nil
}
