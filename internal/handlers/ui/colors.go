package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like durations
)

// Run report colors
var (
	CommandColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	SectionColor = color.New(color.FgMagenta).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// ExitCodeColor colors an exit code green for success and red otherwise.
func ExitCodeColor(code int) string {
	if code == 0 {
		return SuccessColor(code)
	}
	return ErrorColor(code)
}
