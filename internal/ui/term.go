package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Section headers: bold cyan, the sticky element
	colorSection = color.New(color.FgCyan, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Faded: headers partway off-screen
	colorFaded = color.New(color.FgCyan, color.Faint)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Warnings
	colorWarn = color.New(color.FgYellow)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// formatSection formats a section header at full opacity.
func formatSection(s string) string {
	return colorSection.Sprint(s)
}

// formatFaded formats a section header that is fading out.
func formatFaded(s string) string {
	return colorFaded.Sprint(s)
}

// formatHeader formats a table header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats secondary information.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatWarn formats warnings.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}
