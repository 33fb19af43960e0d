// Package ui renders the human-facing progress lines printed while a
// project is being created.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// Step prints a top-level progress line, e.g. "Installing dependencies...".
func Step(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StepStyle.Render(fmt.Sprintf(format, args...)))
}

// Item prints an indented line for a single created folder or file.
func Item(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ItemStyle.Render("  "+fmt.Sprintf(format, args...)))
}

// Success prints a completion line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a non-fatal finding.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarningStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Error prints a fatal error line.
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: "+err.Error()))
}
