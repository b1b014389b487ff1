package cli

import (
	"errors"

	"github.com/AntonioJCosta/folderator/internal/config"
	"github.com/AntonioJCosta/folderator/internal/repositories/folderlist"
)

// ExitCode is the process exit status of folderator.
type ExitCode int

const (
	// ExitSuccess is a normal exit.
	ExitSuccess ExitCode = 0
	// ExitGeneral is any failure without a more specific code.
	ExitGeneral ExitCode = 1
	// ExitUsage covers bad invocations and unusable folder lists.
	ExitUsage ExitCode = 2
	// ExitConfigError is an invalid configuration file, variable or flag value.
	ExitConfigError ExitCode = 3
)

// ErrUsage marks an invalid command line. Returned bare, it means the usage
// text was already printed.
var ErrUsage = errors.New("invalid usage")

// MapExitCode returns the exit code for err based on its sentinel.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrUsage),
		errors.Is(err, folderlist.ErrListNotFound),
		errors.Is(err, folderlist.ErrEmptyList),
		errors.Is(err, folderlist.ErrInvalidLine):
		return ExitUsage
	case errors.Is(err, config.ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
