package folderlist

import (
	"errors"
	"fmt"
)

var (
	// ErrListNotFound is returned when the folder list file does not exist.
	ErrListNotFound = errors.New("folder list file not found")
	// ErrEmptyList is returned when the folder list has no entries.
	ErrEmptyList = errors.New("folder list is empty")
	// ErrInvalidLine matches every *ParseError.
	ErrInvalidLine = errors.New("invalid folder line")
)

// ParseError reports a malformed folder list entry.
type ParseError struct {
	Line   string // The offending line, trimmed
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid named line format: %q - %s", e.Line, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidLine) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidLine
}
