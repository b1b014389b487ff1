package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // Indentation and arrows
	PathColor    = color.New(color.Faint).SprintFunc()
)

// Workspace Colors
var (
	WorkspaceColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasNameColor  = color.New(color.FgBlue).SprintFunc()
	CustomNameColor = color.New(color.FgCyan).SprintFunc()
	IterateColor    = color.New(color.FgMagenta).SprintFunc()
)

// Header Colors
var (
	HeaderColor      = color.New(color.FgGreen, color.Bold).SprintFunc()
	UsageTitleColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	ErrorTitleColor  = color.New(color.FgRed, color.Bold).SprintFunc()
	WarnTitleColor   = color.New(color.FgYellow, color.Bold).SprintFunc()
	UsageSyntaxColor = color.New(color.FgYellow).SprintFunc()
)

// SetEnabled turns colored output on or off for the whole process.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
