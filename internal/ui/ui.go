package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tsnip/internal/model"
)

// --- Styles ---
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // Green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Orange
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197")) // Red
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderSummary renders a finished run for the TUI's final frame.
func RenderSummary(summary model.Summary, quiet bool) string {
	var b strings.Builder

	switch summary.Status {
	case model.StatusDeleted:
		b.WriteString(successStyle.Render(summary.Status.Message()))
	default:
		b.WriteString(warningStyle.Render(summary.Status.Message()))
	}
	b.WriteString("\n")

	if !quiet {
		b.WriteString(faintStyle.Render(detailLine(summary)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders a failed run for the TUI's final frame.
func RenderError(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n"
}

// PrintPlain reports a finished run without any styling. The status line
// goes to stdout; the detail goes to stderr.
func PrintPlain(summary model.Summary, quiet bool) {
	fmt.Println(summary.Status.Message())
	if !quiet {
		fmt.Fprintln(os.Stderr, detailLine(summary))
	}
}

func detailLine(summary model.Summary) string {
	if summary.Status == model.StatusDeleted {
		return fmt.Sprintf("  %s (%d bytes removed)", summary.Path, summary.Removed)
	}
	return fmt.Sprintf("  %s (unchanged)", summary.Path)
}
