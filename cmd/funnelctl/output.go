package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(22)
)

func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("✓ ") + fmt.Sprintf(format, args...))
}

func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("⚠ ") + fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("✗ ") + fmt.Sprintf(format, args...))
}

func Info(format string, args ...interface{}) {
	fmt.Println(infoStyle.Render("ℹ ") + fmt.Sprintf(format, args...))
}

func Muted(format string, args ...interface{}) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func Section(title string) {
	fmt.Println()
	fmt.Println(titleStyle.Render(title))
	fmt.Println(mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
}

// Field prints one aligned "label  value" line.
func Field(label string, value interface{}) {
	fmt.Println(labelStyle.Render(label) + fmt.Sprint(value))
}
