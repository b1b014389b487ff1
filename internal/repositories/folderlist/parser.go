package folderlist

import (
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
)

const (
	reasonEmptyName = `name is empty before ":"`
	reasonEmptyPath = `path is empty after ":"`
)

/*
ParseFolderLine turns one trimmed, non-empty list line into an Entry.
"name: path" carries a custom alias name. A line without ":" or with ":"
as its first character is a bare path and is kept verbatim.
*/
func ParseFolderLine(line string) (folder.Entry, error) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return folder.Entry{RawPath: line}, nil
	}

	name := strings.TrimSpace(line[:idx])
	path := strings.TrimSpace(line[idx+1:])
	if name == "" {
		return folder.Entry{}, &ParseError{Line: line, Reason: reasonEmptyName}
	}
	if path == "" {
		return folder.Entry{}, &ParseError{Line: line, Reason: reasonEmptyPath}
	}
	return folder.Entry{RawPath: path, CustomName: name}, nil
}
