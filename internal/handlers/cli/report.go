package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/folderator/internal/config"
	"github.com/AntonioJCosta/folderator/internal/handlers/ui"
	"github.com/AntonioJCosta/folderator/internal/repositories/folderlist"
)

// ReportError prints err for the user. A bare ErrUsage prints nothing since
// the usage text has already been shown.
func ReportError(w io.Writer, err error) {
	if err == nil || err == ErrUsage {
		return
	}

	var parseErr *folderlist.ParseError
	switch {
	case errors.As(err, &parseErr):
		ui.PrintError(w, "Error parsing line:", fmt.Sprintf("%q %s", parseErr.Line, parseErr.Error()))
	case errors.Is(err, folderlist.ErrListNotFound):
		ui.PrintError(w, "Folders list file not found:", err.Error())
	case errors.Is(err, folderlist.ErrEmptyList):
		ui.PrintError(w, "No folders found:", err.Error())
	case errors.Is(err, config.ErrConfig):
		ui.PrintError(w, "Configuration error:", err.Error())
	default:
		ui.PrintError(w, "Error:", err.Error())
	}
}
