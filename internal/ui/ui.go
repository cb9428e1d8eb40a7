// Package ui renders styled console output: titled panels for results and
// colored status lines on stderr.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))  // Cyan
	subtitleStyle = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("51")) //
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("78")). // Green
			Padding(0, 1)
)

var (
	InfoColor    = color.New(color.FgCyan, color.Bold)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow, color.Bold)
	ErrorColor   = color.New(color.FgRed)
)

// Panel renders a bordered panel with a bold title above it and a faint
// subtitle below.
func Panel(title, subtitle, body string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(strings.TrimRight(body, "\n")))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(subtitle))
	}
	b.WriteString("\n")
	return b.String()
}

// Bullets joins items into a bulleted list body for a panel.
func Bullets(items []string) string {
	if len(items) == 0 {
		return "(none reported)"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// SavedTo prints the resolved output location.
func SavedTo(path string) {
	fmt.Fprintln(os.Stderr)
	Info("Output saved to: %s", path)
}
