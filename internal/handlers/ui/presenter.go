package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/core/domain/workspace"
	"github.com/AntonioJCosta/folderator/internal/core/ports"
	"github.com/olekukonko/tablewriter"
)

const indent = "    "

// PrintUsage writes the short usage shown when no folder list is given.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, UsageTitleColor("folderator: quickly work in a subset of folders"))
	fmt.Fprintln(w, UsageSyntaxColor("Usage: folderator <folder-list-file>"))
	fmt.Fprintln(w, DetailColor(indent+"where folder-list-file : file containing list of folders (one per line)"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, DetailColor(indent+`Use "name: /path/to/folder" for custom alias names`))
	fmt.Fprintln(w)
}

// PrintAvailableCommands writes the summary shown before the workspace shell starts.
func PrintAvailableCommands(w io.Writer, ws workspace.Workspace) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, WorkspaceColor("📁"), WorkspaceColor(ws.Name))
	fmt.Fprintln(w, HeaderColor("✨ Commands available:"))
	for _, b := range ws.Bindings {
		parts := []string{DetailColor(indent), AliasNameColor(b.Alias)}
		if b.Name != "" {
			parts = append(parts, CustomNameColor("("+b.Name+")"))
		}
		parts = append(parts, DetailColor("→"), PathColor(b.Path))
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
	fmt.Fprintln(w, DetailColor(indent), IterateColor("iterate"), DetailColor("→ run commands across all folders"))
	fmt.Fprintln(w)
}

// PrintBindingsTable writes the workspace bindings as a table.
func PrintBindingsTable(w io.Writer, ws workspace.Workspace) {
	fmt.Fprintln(w, HeaderColor(fmt.Sprintf("Folders in %s (%d):", ws.Name, len(ws.Bindings))))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Name", "Path"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, b := range ws.Bindings {
		table.Append([]string{b.Alias, b.Name, b.Path})
	}
	table.Render()
}

// PrintRunResult writes the output of one folder of a `run`, under a header naming the folder.
func PrintRunResult(stdout, stderr io.Writer, result ports.RunResult) {
	fmt.Fprintln(stdout, InfoColor("=== "+result.Binding.Path+" ==="))
	fmt.Fprint(stdout, result.Stdout)
	fmt.Fprint(stderr, result.Stderr)
	if result.Err != nil {
		fmt.Fprintln(stderr, ErrorColor(fmt.Sprintf("✗ %s failed", result.Binding.Alias)))
	}
}

// PrintError writes a red error line: a bold title followed by the detail.
func PrintError(w io.Writer, title string, detail string) {
	fmt.Fprintln(w, ErrorTitleColor("❌ "+title), ErrorColor(detail))
}

// PrintWarning writes a yellow warning line.
func PrintWarning(w io.Writer, title string, detail string) {
	fmt.Fprintln(w, WarnTitleColor("⚠️  Warning: "+title), WarningColor(detail))
}
